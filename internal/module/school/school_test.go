package school

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sahabat3t-backend/config"
	"sahabat3t-backend/internal/global/httpclient"
	"sahabat3t-backend/internal/global/response"
	"sahabat3t-backend/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func doLookup(t *testing.T, npsn string) response.ResponseBody {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/proxy/sekolah?npsn="+npsn, nil)

	Lookup(c)

	var resp response.ResponseBody
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestLookupRejectsMalformedNPSN(t *testing.T) {
	gin.SetMode(gin.TestMode)
	(&ModuleSchool{}).Init()

	for _, npsn := range []string{"", "123", "abcdefgh", "123456789"} {
		resp := doLookup(t, npsn)
		test.ErrorEqual(t, response.ErrInvalidRequest, resp)
	}
}

func TestLookupProxiesUpstream(t *testing.T) {
	gin.SetMode(gin.TestMode)
	(&ModuleSchool{}).Init()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "12345678", r.URL.Query().Get("npsn"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"sekolah":"SDN 1 Asmat","status":"ok"}`))
	}))
	defer upstream.Close()

	config.Get().Registry.BaseURL = upstream.URL
	httpclient.Init()

	resp := doLookup(t, "12345678")
	test.NoError(t, resp)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "SDN 1 Asmat", data["sekolah"])
}

func TestLookupUpstreamFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)
	(&ModuleSchool{}).Init()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	config.Get().Registry.BaseURL = upstream.URL
	httpclient.Init()

	resp := doLookup(t, "12345678")
	test.ErrorEqual(t, response.ErrUpstream, resp)
}
