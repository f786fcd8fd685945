package school

import (
	"github.com/gin-gonic/gin"
)

func (s *ModuleSchool) InitRouter(r *gin.RouterGroup) {
	// Two paths for the same lookup: the documented proxy route and the
	// legacy alias older frontend builds still call.
	r.GET("/proxy/sekolah", Lookup)
	r.GET("/verifikasi-sekolah", Lookup)
}
