package handler

import (
	"errors"
	"net/http"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/config"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/dto"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/payment"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/repository"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ImageStore is the object-storage surface the menu handlers need;
// *storage.MinIOClient implements it.
type ImageStore interface {
	UploadFile(fileData []byte, originalFilename string) (string, error)
	DeleteFile(filename string) error
}

var _ ImageStore = (*storage.MinIOClient)(nil)

// APIHandler carries the REST handlers and their collaborators.
type APIHandler struct {
	Repository   *repository.Repository
	MinIOClient  ImageStore
	StripeClient *payment.StripeClient
	AuthHandler  *AuthHandler
	Config       *config.Config
}

func NewAPIHandler(r *repository.Repository, minioClient ImageStore, stripeClient *payment.StripeClient, authHandler *AuthHandler, cfg *config.Config) *APIHandler {
	return &APIHandler{
		Repository:   r,
		MinIOClient:  minioClient,
		StripeClient: stripeClient,
		AuthHandler:  authHandler,
		Config:       cfg,
	}
}

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// repositoryError maps repository sentinels onto HTTP codes; anything
// unexpected is logged and reported as an opaque 500.
func (h *APIHandler) repositoryError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, repository.ErrRestaurantNotFound),
		errors.Is(err, repository.ErrOrderNotFound),
		errors.Is(err, repository.ErrMenuItemNotFound),
		errors.Is(err, repository.ErrStaffCallNotFound),
		errors.Is(err, repository.ErrReservationNotFound):
		h.errorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrInvalidMenuItems),
		errors.Is(err, repository.ErrInvalidQuantity):
		h.errorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrAlreadyCompleted),
		errors.Is(err, repository.ErrCompletedCancel),
		errors.Is(err, repository.ErrStatusRaced):
		h.errorResponse(c, http.StatusBadRequest, err.Error())
	default:
		logrus.Error(fallback, ": ", err)
		h.errorResponse(c, http.StatusInternalServerError, fallback)
	}
}

// Ping responds to health checks.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
