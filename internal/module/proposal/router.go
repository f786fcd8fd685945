package proposal

import (
	"sahabat3t-backend/internal/global/middleware"
	"sahabat3t-backend/internal/model"

	"github.com/gin-gonic/gin"
)

func (p *ModuleProposal) InitRouter(r *gin.RouterGroup) {
	proposalGroup := r.Group("/proposals")

	proposalGroup.Use(middleware.Auth(model.RoleSchool))
	{
		proposalGroup.GET("", List)
		proposalGroup.POST("", CreateDraft)
		proposalGroup.GET("/:id", Get)
		proposalGroup.PUT("/:id", UpdateDraft)
		proposalGroup.DELETE("/:id", Delete)
		proposalGroup.POST("/:id/submit", Submit)
		proposalGroup.POST("/:id/revise", Revise)
	}

	adminGroup := r.Group("/proposals")
	adminGroup.Use(middleware.Auth(model.RoleAdmin))
	{
		adminGroup.GET("/pending", ListPending)
		adminGroup.POST("/:id/approve", Approve)
		adminGroup.POST("/:id/reject", Reject)
		adminGroup.GET("/:id/decisions", ListDecisions)
	}
}
