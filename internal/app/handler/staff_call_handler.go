package handler

import (
	"net/http"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/ds"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/dto"

	"github.com/gin-gonic/gin"
)

func staffCallToResponse(call *ds.StaffCall) dto.StaffCallResponse {
	return dto.StaffCallResponse{
		ID:        call.ID,
		TableCode: call.Table.Code,
		Status:    call.Status,
		CreatedAt: call.CreatedAt,
		HandledAt: call.HandledAt,
	}
}

// CreateStaffCall lets a diner summon a waiter to their table.
// @Summary Call staff
// @Tags Staff calls
// @Accept json
// @Produce json
// @Param request body dto.CreateStaffCallRequest true "Staff call"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /api/staff-calls [post]
func (h *APIHandler) CreateStaffCall(c *gin.Context) {
	var req dto.CreateStaffCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "table code is required")
		return
	}

	tableCode := ds.NormalizeTableCode(req.TableCode)
	if tableCode == "" {
		h.errorResponse(c, http.StatusBadRequest, "table code is required")
		return
	}

	call, err := h.Repository.CreateStaffCall(req.RestaurantID, tableCode)
	if err != nil {
		h.repositoryError(c, err, "failed to create staff call")
		return
	}

	resp := staffCallToResponse(call)
	h.successResponse(c, http.StatusCreated, "staff call created", resp)
}

// GetStaffCalls lists calls for the staff console, oldest first. Open calls
// by default; pass ?status=HANDLED for history.
// @Summary List staff calls
// @Tags Staff calls
// @Produce json
// @Param status query string false "Call status" default(OPEN)
// @Success 200 {array} dto.StaffCallResponse
// @Router /api/staff-calls [get]
func (h *APIHandler) GetStaffCalls(c *gin.Context) {
	status := c.DefaultQuery("status", ds.StaffCallOpen)
	if status != ds.StaffCallOpen && status != ds.StaffCallHandled {
		h.errorResponse(c, http.StatusBadRequest, "unknown staff call status")
		return
	}

	calls, err := h.Repository.ListStaffCalls(c.Query("restaurantId"), status)
	if err != nil {
		h.repositoryError(c, err, "failed to fetch staff calls")
		return
	}

	resp := make([]dto.StaffCallResponse, len(calls))
	for i := range calls {
		resp[i] = staffCallToResponse(&calls[i])
	}
	c.JSON(http.StatusOK, resp)
}

// ResolveStaffCall marks a call handled (or reopens it).
// @Summary Resolve staff call
// @Tags Staff calls
// @Accept json
// @Produce json
// @Param id path string true "Staff call ID"
// @Param request body dto.ResolveStaffCallRequest false "Target status"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/staff-calls/{id} [patch]
func (h *APIHandler) ResolveStaffCall(c *gin.Context) {
	var req dto.ResolveStaffCallRequest
	_ = c.ShouldBindJSON(&req)

	status := req.Status
	if status == "" {
		status = ds.StaffCallHandled
	}
	if status != ds.StaffCallOpen && status != ds.StaffCallHandled {
		h.errorResponse(c, http.StatusBadRequest, "unknown staff call status")
		return
	}

	call, err := h.Repository.ResolveStaffCall(c.Param("id"), status)
	if err != nil {
		h.repositoryError(c, err, "failed to resolve staff call")
		return
	}

	resp := staffCallToResponse(call)
	h.successResponse(c, http.StatusOK, "staff call updated", resp)
}
