package school

import (
	"encoding/json"
	"time"

	"sahabat3t-backend/config"
	"sahabat3t-backend/internal/global/cache"
	"sahabat3t-backend/internal/global/httpclient"
	"sahabat3t-backend/internal/global/response"
	"sahabat3t-backend/tools"

	"github.com/gin-gonic/gin"
)

const cacheKeyPrefix = "sekolah:npsn:"

// Lookup proxies an NPSN query to the national school registry. Results are
// cached so repeated verifications of the same school skip the upstream.
func Lookup(c *gin.Context) {
	npsn := c.Query("npsn")
	if !tools.ValidNPSN(npsn) {
		response.Fail(c, response.ErrInvalidRequest.WithTips("NPSN harus 8 digit angka"))
		return
	}

	if cached, ok := cache.GetString(c.Request.Context(), cacheKeyPrefix+npsn); ok {
		var body any
		if err := json.Unmarshal([]byte(cached), &body); err == nil {
			response.Success(c, body)
			return
		}
	}

	cfg := config.Get().Registry

	resp, err := httpclient.Client.R().
		SetContext(c.Request.Context()).
		SetQueryParam("npsn", npsn).
		Get(cfg.BaseURL + "/sekolah")
	if err != nil {
		log.Error("registry request failed", "error", err, "npsn", npsn)
		response.Fail(c, response.ErrUpstream.WithOrigin(err))
		return
	}
	if resp.IsError() {
		log.Warn("registry returned error status",
			"status", resp.StatusCode(),
			"npsn", npsn)
		response.Fail(c, response.ErrUpstream.WithTips("layanan registri sekolah bermasalah"))
		return
	}

	var body any
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		log.Error("registry response is not JSON", "error", err, "npsn", npsn)
		response.Fail(c, response.ErrUpstream.WithOrigin(err))
		return
	}

	cache.SetString(c.Request.Context(), cacheKeyPrefix+npsn, string(resp.Body()),
		time.Duration(cfg.CacheTTL)*time.Second)

	log.Info("registry lookup", "npsn", npsn, "status", resp.StatusCode())

	response.Success(c, body)
}
