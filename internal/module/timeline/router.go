package timeline

import (
	"sahabat3t-backend/internal/global/middleware"
	"sahabat3t-backend/internal/model"

	"github.com/gin-gonic/gin"
)

func (t *ModuleTimeline) InitRouter(r *gin.RouterGroup) {
	timelineGroup := r.Group("/timeline")

	timelineGroup.Use(middleware.Auth(model.RoleSchool))
	{
		timelineGroup.POST("", Create)
		timelineGroup.GET("/:proposalId", ListByProposal)
	}

	adminGroup := r.Group("/timeline")
	adminGroup.Use(middleware.Auth(model.RoleAdmin))
	{
		adminGroup.POST("/:id/approve", MarkApproved)
	}
}
