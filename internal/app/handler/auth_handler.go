package handler

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/config"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/ds"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/redis"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/repository"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/role"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	Repository  *repository.Repository
	RedisClient *redis.Client
	Config      *config.Config
}

func NewAuthHandler(r *repository.Repository, redisClient *redis.Client, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		Repository:  r,
		RedisClient: redisClient,
		Config:      cfg,
	}
}

// GenerateHashString returns the SHA-1 hex digest used for stored passwords.
func GenerateHashString(s string) string {
	h := sha1.New()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

func (h *AuthHandler) issueToken(user *ds.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(h.Config.JWT.SigningMethod, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(h.Config.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    h.Config.JWT.Issuer,
		},
		UserID: user.ID,
		Role:   role.Role(user.Role),
	})
	return token.SignedString([]byte(h.Config.JWT.Secret))
}

func userToResponse(user *ds.User) dto.UserResponse {
	return dto.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
}

func (h *AuthHandler) errorHandler(ctx *gin.Context, statusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: err.Error(),
	})
}

// RegisterUser creates a console account. Only ADMIN and STAFF are accepted
// as requested roles; anything else defaults to STAFF.
// @Summary Register user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) RegisterUser(ctx *gin.Context) {
	var request dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))

	exists, err := h.Repository.UserExistsByEmail(email)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, errors.New("failed to register user"))
		return
	}
	if exists {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("user with this email already exists"))
		return
	}

	// Self-registration never grants CUSTOMER (guests are anonymous) and
	// unknown names default to the least privileged staff role.
	userRole := role.Role(strings.ToUpper(request.Role))
	if !role.Valid(userRole) || userRole == role.Customer {
		userRole = role.Staff
	}

	user, err := h.Repository.CreateUser(email, GenerateHashString(request.Password), request.Name, userRole)
	if err != nil {
		logrus.Error("create user failed: ", err)
		h.errorHandler(ctx, http.StatusInternalServerError, errors.New("failed to register user"))
		return
	}

	accessToken, err := h.issueToken(user)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "user registered",
		"user":    userToResponse(user),
		"token":   accessToken,
	})
}

// LoginUser authenticates a staff or admin account and returns a JWT.
// @Summary Login
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) LoginUser(ctx *gin.Context) {
	var request dto.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))

	user, err := h.Repository.GetUserByEmail(email)
	if err != nil || user.Password != GenerateHashString(request.Password) {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("invalid email or password"))
		return
	}

	accessToken, err := h.issueToken(user)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token: accessToken,
		User:  userToResponse(user),
	})
}

// LogoutUser invalidates the presented token by blacklisting it in Redis
// for its remaining lifetime.
// @Summary Logout
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) LogoutUser(ctx *gin.Context) {
	tokenString := ctx.GetHeader("Authorization")
	if tokenString == "" {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("authorization header missing"))
		return
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.Config.JWT.Secret), nil
	})
	if err != nil {
		h.errorHandler(ctx, http.StatusUnauthorized, err)
		return
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("invalid token claims"))
		return
	}

	// An expired token needs no blacklist entry.
	if ttl := time.Until(time.Unix(claims.ExpiresAt, 0)); ttl > 0 {
		if err := h.RedisClient.WriteJWTToBlacklist(ctx.Request.Context(), tokenString, ttl); err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{
		Status:  "success",
		Message: "logged out",
	})
}

// GetUserProfile returns the authenticated account.
// @Summary Current user profile
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/auth/profile [get]
func (h *AuthHandler) GetUserProfile(ctx *gin.Context) {
	userID := ctx.GetString("userID")
	if userID == "" {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("not authenticated"))
		return
	}

	user, err := h.Repository.GetUserByID(userID)
	if err != nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("user not found"))
		return
	}

	ctx.JSON(http.StatusOK, userToResponse(user))
}
