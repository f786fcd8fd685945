package upload

import (
	"sahabat3t-backend/internal/global/middleware"
	"sahabat3t-backend/internal/model"

	"github.com/gin-gonic/gin"
)

func (u *ModuleUpload) InitRouter(r *gin.RouterGroup) {
	uploadGroup := r.Group("/upload")

	uploadGroup.Use(middleware.Auth(model.RoleSchool))
	{
		uploadGroup.POST("", Store)
		uploadGroup.POST("/presign", Presign)
	}
}
