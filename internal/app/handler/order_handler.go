package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/ds"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/dto"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func orderToResponse(order *ds.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = dto.OrderItemResponse{
			MenuItemID:   item.MenuItemID,
			MenuItemName: item.MenuItemName,
			Quantity:     item.Quantity,
			Price:        item.Price,
		}
	}
	return dto.OrderResponse{
		ID:            order.ID,
		TableNumber:   order.TableNumber,
		CustomerName:  order.CustomerName,
		CustomerNote:  order.CustomerNote,
		Status:        string(order.Status),
		TotalAmount:   order.TotalAmount,
		TaxAmount:     order.TaxAmount,
		TipAmount:     order.TipAmount,
		PaymentMethod: order.PaymentMethod,
		CreatedAt:     order.CreatedAt,
		Items:         items,
	}
}

// CreateOrder places a new order for a table.
// @Summary Create order
// @Description Creates an order in RECEIVED status; replays by idempotency key.
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Order payload"
// @Success 200 {object} dto.CreateOrderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /api/orders [post]
func (h *APIHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	rawCode := req.TableCode
	if rawCode == "" {
		rawCode = req.TableNumber
	}
	tableCode := ds.NormalizeTableCode(rawCode)
	if tableCode == "" {
		h.errorResponse(c, http.StatusBadRequest, "tableCode or tableNumber missing")
		return
	}

	if len(req.Items) == 0 {
		h.errorResponse(c, http.StatusBadRequest, "order items missing")
		return
	}

	paymentMethod := strings.ToUpper(strings.TrimSpace(req.PaymentMethod))
	if paymentMethod == "" {
		paymentMethod = ds.PaymentCounter
	}
	if !ds.ValidPaymentMethod(paymentMethod) {
		h.errorResponse(c, http.StatusBadRequest, "invalid payment method")
		return
	}

	// Tax and tip are coerced, never trusted to be sensible.
	tax := req.TaxAmount
	if tax < 0 {
		tax = 0
	}
	tip := req.TipAmount
	if tip < 0 {
		tip = 0
	}

	lines := make([]repository.OrderLineInput, len(req.Items))
	for i, item := range req.Items {
		lines[i] = repository.OrderLineInput{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		}
	}

	orderID, err := h.Repository.CreateOrder(repository.CreateOrderInput{
		RestaurantID:   req.RestaurantID,
		TableCode:      tableCode,
		Items:          lines,
		CustomerName:   req.CustomerName,
		CustomerNote:   req.CustomerNote,
		IdempotencyKey: req.IdempotencyKey,
		PaymentMethod:  paymentMethod,
		PaymentRef:     req.PaymentRef,
		TaxAmount:      tax,
		TipAmount:      tip,
	})
	if err != nil {
		h.repositoryError(c, err, "order failed")
		return
	}

	c.JSON(http.StatusOK, dto.CreateOrderResponse{Success: true, OrderID: orderID})
}

// UpdateOrderStatus applies a generic transition checked against the
// forward table.
// @Summary Update order status
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body dto.UpdateOrderStatusRequest true "Next status"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders/{id}/status [patch]
func (h *APIHandler) UpdateOrderStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "status required")
		return
	}

	next := ds.OrderStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	err := h.Repository.UpdateOrderStatus(c.Param("id"), next)
	if err != nil {
		var transitionErr *repository.TransitionError
		if errors.As(err, &transitionErr) {
			// Echo both sides so the caller can diagnose.
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Status:  "fail",
				Message: "invalid status transition",
				Current: string(transitionErr.Current),
				Next:    string(transitionErr.Next),
			})
			return
		}
		h.repositoryError(c, err, "failed to update status")
		return
	}

	h.successResponse(c, http.StatusOK, "status updated", nil)
}

// CancelOrder is the dedicated escape hatch: any non-completed order can be
// cancelled, wider than the generic transition table.
// @Summary Cancel order
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders/{id}/cancel [patch]
func (h *APIHandler) CancelOrder(c *gin.Context) {
	order, err := h.Repository.CancelOrder(c.Param("id"))
	if err != nil {
		h.repositoryError(c, err, "failed to cancel order")
		return
	}
	resp := orderToResponse(order)
	h.successResponse(c, http.StatusOK, "order cancelled", resp)
}

// CompleteOrder mirrors CancelOrder, rejecting only an already-completed
// order.
// @Summary Complete order
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders/{id}/complete [patch]
func (h *APIHandler) CompleteOrder(c *gin.Context) {
	order, err := h.Repository.CompleteOrder(c.Param("id"))
	if err != nil {
		h.repositoryError(c, err, "failed to complete order")
		return
	}
	resp := orderToResponse(order)
	h.successResponse(c, http.StatusOK, "order completed", resp)
}

// GetLiveOrders feeds the kitchen board and staff console pollers. By
// design it always answers 200 with an array; pollers never special-case
// errors.
// @Summary Live open orders
// @Tags Orders
// @Produce json
// @Param restaurantId query string false "Restaurant ID"
// @Success 200 {array} dto.OrderResponse
// @Router /api/orders/live [get]
func (h *APIHandler) GetLiveOrders(c *gin.Context) {
	orders, err := h.Repository.ListLiveOrders(c.Query("restaurantId"))
	if err != nil {
		logrus.Error("live orders failed: ", err)
		c.JSON(http.StatusOK, []dto.OrderResponse{})
		return
	}

	resp := make([]dto.OrderResponse, len(orders))
	for i := range orders {
		resp[i] = orderToResponse(&orders[i])
	}
	c.JSON(http.StatusOK, resp)
}

// GetAdminOrders lists all orders for the console, newest first. Always an
// array.
// @Summary Admin order list
// @Tags Orders
// @Produce json
// @Param status query string false "Status filter"
// @Success 200 {array} dto.AdminOrderResponse
// @Router /api/admin/orders [get]
func (h *APIHandler) GetAdminOrders(c *gin.Context) {
	orders, err := h.Repository.ListOrders(strings.ToUpper(c.Query("status")))
	if err != nil {
		logrus.Error("admin orders failed: ", err)
		c.JSON(http.StatusOK, []dto.AdminOrderResponse{})
		return
	}

	resp := make([]dto.AdminOrderResponse, len(orders))
	for i, order := range orders {
		resp[i] = dto.AdminOrderResponse{
			ID:          order.ID,
			TableNumber: order.TableNumber,
			Status:      string(order.Status),
			ItemsCount:  len(order.Items),
			TotalAmount: order.TotalAmount,
			CreatedAt:   order.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// CleanupOrders is a blunt maintenance tool: purges every order and line.
// @Summary Delete all orders
// @Tags Orders
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/admin/cleanup-orders [delete]
func (h *APIHandler) CleanupOrders(c *gin.Context) {
	if err := h.Repository.ClearOrders(); err != nil {
		logrus.Error("cleanup orders failed: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "failed to cleanup orders")
		return
	}
	h.successResponse(c, http.StatusOK, "all orders cleared", nil)
}
