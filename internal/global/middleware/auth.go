package middleware

import (
	"strings"

	"sahabat3t-backend/internal/global/jwt"
	"sahabat3t-backend/internal/global/response"

	"github.com/gin-gonic/gin"
)

// Auth validates the session token and requires at least minRoleID.
// The token comes from the Authorization header, or from the "token" cookie
// when the frontend relies on cookie sessions.
func Auth(minRoleID int) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""

		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}
		if token == "" {
			if cookie, err := c.Cookie("token"); err == nil {
				token = cookie
			}
		}
		if token == "" {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		}

		if payload, valid := jwt.ParseToken(token); !valid {
			response.Fail(c, response.ErrTokenInvalid)
			c.Abort()
			return
		} else if payload.RoleID < minRoleID {
			response.Fail(c, response.ErrUnauthorized)
			c.Abort()
			return
		} else {
			c.Set("payload", payload)
		}
		c.Next()
	}
}
