package middleware

import (
	"net/http"
	"strings"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/config"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/ds"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/redis"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

type AuthMiddleware struct {
	RedisClient *redis.Client
	Config      *config.Config
}

func NewAuthMiddleware(redisClient *redis.Client, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		RedisClient: redisClient,
		Config:      cfg,
	}
}

// WithAuthCheck validates the bearer token and requires one of the given
// roles. 401 when the token is missing, revoked or invalid; 403 when the
// role does not match.
func (am *AuthMiddleware) WithAuthCheck(assignedRoles ...role.Role) gin.HandlerFunc {
	return func(gCtx *gin.Context) {
		jwtStr := gCtx.GetHeader("Authorization")
		if jwtStr == "" {
			gCtx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "unauthenticated"})
			return
		}
		jwtStr = strings.TrimPrefix(jwtStr, "Bearer ")

		// A blacklisted token is revoked even though it still parses.
		if err := am.RedisClient.CheckJWTInBlacklist(gCtx.Request.Context(), jwtStr); err == nil {
			gCtx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "unauthenticated"})
			return
		}

		token, err := am.parseJWTToken(jwtStr)
		if err != nil {
			gCtx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "unauthenticated"})
			return
		}

		claims, ok := token.Claims.(*ds.JWTClaims)
		if !ok || !token.Valid {
			gCtx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "fail", "message": "unauthenticated"})
			return
		}

		if len(assignedRoles) > 0 && !am.hasRequiredRole(claims.Role, assignedRoles) {
			gCtx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"status": "fail", "message": "forbidden"})
			return
		}

		gCtx.Set("userID", claims.UserID)
		gCtx.Set("userRole", claims.Role)

		gCtx.Next()
	}
}

func (am *AuthMiddleware) parseJWTToken(tokenString string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(am.Config.JWT.Secret), nil
	})
}

func (am *AuthMiddleware) hasRequiredRole(userRole role.Role, requiredRoles []role.Role) bool {
	for _, requiredRole := range requiredRoles {
		if userRole == requiredRole {
			return true
		}
	}
	return false
}
