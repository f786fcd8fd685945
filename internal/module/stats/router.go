package stats

import (
	"sahabat3t-backend/internal/global/middleware"
	"sahabat3t-backend/internal/model"

	"github.com/gin-gonic/gin"
)

func (s *ModuleStats) InitRouter(r *gin.RouterGroup) {
	statsGroup := r.Group("/stats")

	statsGroup.Use(middleware.Auth(model.RoleAdmin))
	{
		statsGroup.GET("/export/proposals", ExportProposals)
		statsGroup.GET("/export/reports", ExportReports)
	}
}
