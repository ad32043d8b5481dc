package handler

import (
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/middleware"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/ratelimit"
	"github.com/Purva137/Restaurant-Ordering-System/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes wires the REST surface. Diner endpoints are anonymous
// and rate limited per IP; console endpoints require a staff or admin token.
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware, limiter *ratelimit.Limiter) {
	api := router.Group("/api")
	rl := h.Config.RateLimit

	// ============ Orders ============
	orders := api.Group("/orders")
	{
		orders.POST("", middleware.WithRateLimit(limiter, "orders", rl.OrdersPerWindow, rl.Window), h.CreateOrder)
		orders.GET("/live", h.GetLiveOrders)

		// The kitchen board advances orders without logging in; the status
		// table itself is the guard here.
		orders.PATCH("/:id/status", h.UpdateOrderStatus)

		orders.PATCH("/:id/cancel", authMiddleware.WithAuthCheck(role.Staff, role.Admin), h.CancelOrder)
		orders.PATCH("/:id/complete", authMiddleware.WithAuthCheck(role.Staff, role.Admin), h.CompleteOrder)
	}

	// ============ Menu ============
	api.GET("/menu", h.GetMenu)
	api.GET("/restaurants/:id/menu", h.GetRestaurantMenu)
	api.POST("/restaurants", authMiddleware.WithAuthCheck(role.Admin), h.CreateRestaurant)

	menuItems := api.Group("/menu-items")
	menuItems.Use(authMiddleware.WithAuthCheck(role.Admin))
	{
		menuItems.POST("", h.CreateMenuItem)
		menuItems.PUT("/:id", h.UpdateMenuItem)
		menuItems.DELETE("/:id", h.DeleteMenuItem)
		menuItems.POST("/:id/image", h.UploadMenuItemImage)
	}

	// ============ Staff calls ============
	staffCalls := api.Group("/staff-calls")
	{
		staffCalls.POST("", middleware.WithRateLimit(limiter, "staff-calls", rl.CallsPerWindow, rl.Window), h.CreateStaffCall)
		staffCalls.GET("", authMiddleware.WithAuthCheck(role.Staff, role.Admin), h.GetStaffCalls)
		staffCalls.PATCH("/:id", authMiddleware.WithAuthCheck(role.Staff, role.Admin), h.ResolveStaffCall)
	}

	// ============ Reservations ============
	reservations := api.Group("/reservations")
	{
		reservations.POST("", middleware.WithRateLimit(limiter, "reservations", rl.ReservesPerWindow, rl.Window), h.CreateReservation)
		reservations.GET("", authMiddleware.WithAuthCheck(role.Staff, role.Admin), h.GetReservations)
		reservations.PATCH("/:id", authMiddleware.WithAuthCheck(role.Staff, role.Admin), h.UpdateReservation)
	}

	// ============ Payments ============
	payments := api.Group("/payments")
	{
		payments.POST("/razorpay/verify", h.VerifyRazorpayPayment)
		payments.GET("/stripe/verify", h.VerifyStripePayment)
	}

	// ============ Tables ============
	api.GET("/tables", authMiddleware.WithAuthCheck(role.Staff, role.Admin), h.GetTables)
	api.POST("/tables", authMiddleware.WithAuthCheck(role.Admin), h.CreateTable)

	// ============ Admin console ============
	admin := api.Group("/admin")
	{
		admin.GET("/orders", authMiddleware.WithAuthCheck(role.Staff, role.Admin), h.GetAdminOrders)
		admin.DELETE("/cleanup-orders", authMiddleware.WithAuthCheck(role.Admin), h.CleanupOrders)
		admin.GET("/analytics", authMiddleware.WithAuthCheck(role.Admin), h.GetAnalytics)
	}

	// ============ Authentication ============
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.AuthHandler.RegisterUser)
		auth.POST("/login", h.AuthHandler.LoginUser)

		auth.GET("/profile", authMiddleware.WithAuthCheck(role.Staff, role.Admin), h.AuthHandler.GetUserProfile)
		auth.POST("/logout", authMiddleware.WithAuthCheck(role.Staff, role.Admin), h.AuthHandler.LogoutUser)
	}

	router.GET("/ping", h.Ping)
}
