package user

import (
	"strings"

	"sahabat3t-backend/internal/global/database"
	"sahabat3t-backend/internal/global/jwt"
	"sahabat3t-backend/internal/global/logger"
	"sahabat3t-backend/internal/global/response"
	"sahabat3t-backend/internal/model"
	"sahabat3t-backend/tools"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// RegisterReq carries a school account registration.
type RegisterReq struct {
	SchoolName string `json:"school_name" binding:"required"`
	NPSN       string `json:"npsn" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
}

type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// userSummary is what auth endpoints return about an account. Never the hash.
type userSummary struct {
	ID         uint   `json:"id"`
	SchoolName string `json:"school_name"`
	NPSN       string `json:"npsn"`
	Email      string `json:"email"`
	RoleID     int    `json:"role_id"`
}

func summarize(u *model.User) userSummary {
	return userSummary{
		ID:         u.ID,
		SchoolName: u.SchoolName,
		NPSN:       u.NPSN,
		Email:      u.Email,
		RoleID:     u.RoleID,
	}
}

// validatePasswordStrength enforces the minimum password policy.
func validatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password harus minimal 8 karakter")
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		switch {
		case strings.ContainsRune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ", char):
			hasLetter = true
		case strings.ContainsRune("0123456789", char):
			hasDigit = true
		}
	}

	if !hasLetter {
		return errors.New("password harus mengandung huruf")
	}
	if !hasDigit {
		return errors.New("password harus mengandung angka")
	}
	return nil
}

// Register creates a school account. Email duplication is checked before NPSN
// so DuplicateEmail wins when both collide.
func Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind register request", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if !tools.ValidNPSN(req.NPSN) {
		log.Warn("malformed npsn on register", "npsn", req.NPSN)
		response.Fail(c, response.ErrInvalidRequest.WithTips("NPSN harus 8 digit angka"))
		return
	}

	if err := validatePasswordStrength(req.Password); err != nil {
		log.Warn("weak password on register", "error", err, "email", req.Email)
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	}

	var existing model.User
	err := database.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		log.Warn("email already registered", "email", req.Email)
		response.Fail(c, response.ErrAlreadyExists.WithTips("email sudah terdaftar"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("database query failed", "error", err, "email", req.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	err = database.DB.Where("npsn = ?", req.NPSN).First(&existing).Error
	if err == nil {
		log.Warn("npsn already registered", "npsn", req.NPSN)
		response.Fail(c, response.ErrAlreadyExists.WithTips("NPSN sudah terdaftar"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("database query failed", "error", err, "npsn", req.NPSN)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	user := model.User{
		SchoolName: req.SchoolName,
		NPSN:       req.NPSN,
		Email:      strings.ToLower(req.Email),
		Password:   tools.PasswordEncrypt(req.Password),
		RoleID:     model.RoleSchool,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		log.Error("failed to create user", "error", err, "email", req.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("school account registered",
		"user_id", user.ID,
		"npsn", user.NPSN)

	response.Success(c, summarize(&user))
}

// Login verifies credentials and issues a session token.
func Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind login request", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	reqLog := logger.WithContext(log, c)

	var user model.User
	err := database.DB.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		reqLog.Warn("login with unknown email", "email", req.Email)
		response.Fail(c, response.ErrInvalidCredentials)
		return
	case err != nil:
		reqLog.Error("database query failed", "error", err, "email", req.Email)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !tools.PasswordCompare(req.Password, user.Password) {
		reqLog.Warn("wrong password", "user_id", user.ID)
		response.Fail(c, response.ErrInvalidCredentials)
		return
	}

	reqLog.Info("login succeeded",
		"user_id", user.ID,
		"role_id", user.RoleID)

	response.Success(c, map[string]interface{}{
		"token": jwt.CreateToken(jwt.Payload{
			UserID: user.ID,
			RoleID: user.RoleID,
		}),
		"user": summarize(&user),
	})
}

// GetMe returns the authenticated account's profile.
func GetMe(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var user model.User
	err := database.DB.First(&user, payload.UserID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Fail(c, response.ErrNotFound)
		return
	case err != nil:
		log.Error("failed to load user", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, summarize(&user))
}

type ChangePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ChangePassword verifies the old password before replacing it.
func ChangePassword(c *gin.Context) {
	payload, exists := jwt.GetUserPayload(c)
	if !exists {
		response.Fail(c, response.ErrUnauthorized)
		return
	}

	var req ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind change-password request", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if err := validatePasswordStrength(req.NewPassword); err != nil {
		log.Warn("weak new password", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	}

	var user model.User
	if err := database.DB.First(&user, payload.UserID).Error; err != nil {
		log.Error("failed to load user", "error", err, "user_id", payload.UserID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if !tools.PasswordCompare(req.OldPassword, user.Password) {
		log.Warn("wrong old password", "user_id", user.ID)
		response.Fail(c, response.ErrInvalidCredentials)
		return
	}

	if err := database.DB.Model(&user).Update("password", tools.PasswordEncrypt(req.NewPassword)).Error; err != nil {
		log.Error("failed to update password", "error", err, "user_id", user.ID)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("password changed", "user_id", user.ID)

	response.Success(c)
}
