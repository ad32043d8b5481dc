package handler

import (
	"net/http"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/dto"

	"github.com/gin-gonic/gin"
)

// GetAnalytics returns the admin dashboard counters: order and revenue
// totals for today/month/year, reservation activity and the month-by-month
// revenue series for the current year.
// @Summary Dashboard analytics
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.AnalyticsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/analytics [get]
func (h *APIHandler) GetAnalytics(c *gin.Context) {
	restaurant, err := h.Repository.ResolveRestaurant(c.Query("restaurantId"))
	if err != nil {
		h.repositoryError(c, err, "failed to fetch analytics")
		return
	}

	a, err := h.Repository.GetAnalytics(restaurant.ID)
	if err != nil {
		h.repositoryError(c, err, "failed to fetch analytics")
		return
	}

	c.JSON(http.StatusOK, dto.AnalyticsResponse{
		Orders: dto.PeriodCounts{
			Today: a.OrdersToday,
			Month: a.OrdersMonth,
			Year:  a.OrdersYear,
		},
		Revenue: dto.PeriodSums{
			Today: a.RevenueToday,
			Month: a.RevenueMonth,
			Year:  a.RevenueYear,
		},
		Reservations: dto.PeriodCounts{
			Today: a.ReservationsToday,
			Month: a.ReservationsMonth,
			Year:  a.ReservationsYear,
		},
		CancelledReservations: dto.PeriodCounts{
			Today: a.CancelledToday,
			Month: a.CancelledMonth,
			Year:  a.CancelledYear,
		},
		TotalTables:    a.TotalTables,
		MonthlyRevenue: a.MonthlyRevenue,
	})
}
