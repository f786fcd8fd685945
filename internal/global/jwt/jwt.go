package jwt

import (
	"time"

	"sahabat3t-backend/config"

	"github.com/golang-jwt/jwt"
)

// Payload is what a token binds: the account id plus its role.
type Payload struct {
	UserID uint `json:"user_id"`
	RoleID int  `json:"role_id"`
}

type Claims struct {
	Payload
	jwt.StandardClaims
}

// CreateToken signs a token for payload, expiring after the configured window.
func CreateToken(payload Payload) string {
	cfg := config.Get()
	claims := Claims{
		Payload: payload,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(time.Duration(cfg.JWT.AccessExpire) * time.Second).Unix(),
			Issuer:    "sahabat3t",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWT.AccessSecret))
	if err != nil {
		return ""
	}
	return signed
}

// ParseToken validates signature and expiry, returning the claims on success.
func ParseToken(tokenString string) (*Claims, bool) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(config.Get().JWT.AccessSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	return claims, true
}
