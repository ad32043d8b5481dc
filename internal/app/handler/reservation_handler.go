package handler

import (
	"net/http"
	"regexp"
	"time"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/ds"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/dto"

	"github.com/gin-gonic/gin"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

func reservationToResponse(res *ds.Reservation) dto.ReservationResponse {
	return dto.ReservationResponse{
		ID:        res.ID,
		Name:      res.Name,
		Phone:     res.Phone,
		PartySize: res.PartySize,
		DateTime:  res.DateTime,
		Notes:     res.Notes,
		Status:    res.Status,
	}
}

func validReservationStatus(status string) bool {
	switch status {
	case ds.ReservationPending, ds.ReservationConfirmed, ds.ReservationCancelled, ds.ReservationSeated:
		return true
	}
	return false
}

// CreateReservation books a table for a future date.
// @Summary Create reservation
// @Tags Reservations
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Reservation"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /api/reservations [post]
func (h *APIHandler) CreateReservation(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "missing required fields")
		return
	}

	if !phonePattern.MatchString(req.Phone) {
		h.errorResponse(c, http.StatusBadRequest, "phone must be 10 digits")
		return
	}
	if req.PartySize < 1 || req.PartySize > 20 {
		h.errorResponse(c, http.StatusBadRequest, "party size must be between 1 and 20")
		return
	}

	dateTime, err := time.ParseInLocation("2006-01-02 15:04", req.Date+" "+req.Time, time.Local)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid date or time")
		return
	}

	now := time.Now()
	if dateTime.Before(now) {
		h.errorResponse(c, http.StatusBadRequest, "reservation must be in the future")
		return
	}
	if dateTime.After(now.AddDate(0, 3, 0)) {
		h.errorResponse(c, http.StatusBadRequest, "reservation must be within 3 months")
		return
	}

	res, err := h.Repository.CreateReservation(req.RestaurantID, req.Name, req.Phone, req.PartySize, dateTime, req.Notes)
	if err != nil {
		h.repositoryError(c, err, "failed to create reservation")
		return
	}

	resp := reservationToResponse(res)
	h.successResponse(c, http.StatusCreated, "reservation created", resp)
}

// GetReservations lists reservations, soonest first.
// @Summary List reservations
// @Tags Reservations
// @Produce json
// @Param status query string false "Reservation status"
// @Success 200 {array} dto.ReservationResponse
// @Router /api/reservations [get]
func (h *APIHandler) GetReservations(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !validReservationStatus(status) {
		h.errorResponse(c, http.StatusBadRequest, "unknown reservation status")
		return
	}

	reservations, err := h.Repository.ListReservations(c.Query("restaurantId"), status)
	if err != nil {
		h.repositoryError(c, err, "failed to fetch reservations")
		return
	}

	resp := make([]dto.ReservationResponse, len(reservations))
	for i := range reservations {
		resp[i] = reservationToResponse(&reservations[i])
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateReservation moves a reservation to a new status.
// @Summary Update reservation
// @Tags Reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.UpdateReservationRequest true "Target status"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/reservations/{id} [patch]
func (h *APIHandler) UpdateReservation(c *gin.Context) {
	var req dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "status is required")
		return
	}
	if !validReservationStatus(req.Status) {
		h.errorResponse(c, http.StatusBadRequest, "unknown reservation status")
		return
	}

	res, err := h.Repository.UpdateReservationStatus(c.Param("id"), req.Status)
	if err != nil {
		h.repositoryError(c, err, "failed to update reservation")
		return
	}

	resp := reservationToResponse(res)
	h.successResponse(c, http.StatusOK, "reservation updated", resp)
}
