package ds

import (
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/role"

	"github.com/golang-jwt/jwt"
)

type JWTClaims struct {
	jwt.StandardClaims
	UserID string    `json:"user_id"`
	Role   role.Role `json:"role"`
}
