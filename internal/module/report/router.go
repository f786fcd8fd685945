package report

import (
	"sahabat3t-backend/internal/global/middleware"
	"sahabat3t-backend/internal/model"

	"github.com/gin-gonic/gin"
)

func (r *ModuleReport) InitRouter(router *gin.RouterGroup) {
	reportGroup := router.Group("/reports")

	reportGroup.Use(middleware.Auth(model.RoleSchool))
	{
		reportGroup.GET("", List)
		reportGroup.POST("", Create)
		reportGroup.DELETE("/:id", Delete)
	}
}
