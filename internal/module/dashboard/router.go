package dashboard

import (
	"sahabat3t-backend/internal/global/middleware"
	"sahabat3t-backend/internal/model"

	"github.com/gin-gonic/gin"
)

func (d *ModuleDashboard) InitRouter(r *gin.RouterGroup) {
	r.GET("/dashboard", middleware.Auth(model.RoleSchool), Summary)
}
