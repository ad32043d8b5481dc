package handler

import (
	"net/http"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/ds"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/dto"

	"github.com/gin-gonic/gin"
)

func tableToResponse(table *ds.Table) dto.TableResponse {
	return dto.TableResponse{
		ID:    table.ID,
		Code:  table.Code,
		Label: table.Label,
		Seats: table.Seats,
	}
}

// GetTables lists all known dining tables.
// @Summary List tables
// @Tags Tables
// @Produce json
// @Success 200 {array} dto.TableResponse
// @Router /api/tables [get]
func (h *APIHandler) GetTables(c *gin.Context) {
	tables, err := h.Repository.ListTables()
	if err != nil {
		h.repositoryError(c, err, "failed to fetch tables")
		return
	}

	resp := make([]dto.TableResponse, len(tables))
	for i := range tables {
		resp[i] = tableToResponse(&tables[i])
	}
	c.JSON(http.StatusOK, resp)
}

// CreateTable registers a dining table ahead of QR sticker printing.
// @Summary Create table
// @Tags Tables
// @Accept json
// @Produce json
// @Param request body dto.CreateTableRequest true "Table"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/tables [post]
func (h *APIHandler) CreateTable(c *gin.Context) {
	var req dto.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "table code is required")
		return
	}

	code := ds.NormalizeTableCode(req.Code)
	if code == "" {
		h.errorResponse(c, http.StatusBadRequest, "table code is required")
		return
	}

	restaurant, err := h.Repository.ResolveRestaurant(c.Query("restaurantId"))
	if err != nil {
		h.repositoryError(c, err, "failed to create table")
		return
	}

	table, err := h.Repository.CreateTable(restaurant.ID, code, req.Label, req.Seats)
	if err != nil {
		h.repositoryError(c, err, "failed to create table")
		return
	}

	resp := tableToResponse(table)
	h.successResponse(c, http.StatusCreated, "table created", resp)
}
