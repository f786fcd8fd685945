package user

import (
	"sahabat3t-backend/internal/global/middleware"
	"sahabat3t-backend/internal/model"

	"github.com/gin-gonic/gin"
)

func (u *ModuleUser) InitRouter(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")

	authGroup.POST("/register", Register)
	authGroup.POST("/login", Login)

	authGroup.Use(middleware.Auth(model.RoleSchool))
	{
		authGroup.GET("/me", GetMe)
		authGroup.POST("/password", ChangePassword)
	}
}
