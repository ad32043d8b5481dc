package dto

import "time"

// ============ Common ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Current string `json:"current,omitempty"` // filled for transition conflicts
	Next    string `json:"next,omitempty"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Orders ============

type OrderItemRequest struct {
	MenuItemID string  `json:"menuItemId" binding:"required"`
	Quantity   float64 `json:"quantity"` // validated as finite > 0, not by binding
}

type CreateOrderRequest struct {
	RestaurantID   string             `json:"restaurantId"`
	TableCode      string             `json:"tableCode"`
	TableNumber    string             `json:"tableNumber"`
	Items          []OrderItemRequest `json:"items"`
	CustomerName   *string            `json:"customerName"`
	CustomerNote   string             `json:"customerNote"`
	IdempotencyKey *string            `json:"idempotencyKey"`
	PaymentMethod  string             `json:"paymentMethod"`
	PaymentRef     *string            `json:"paymentReference"`
	TaxAmount      float64            `json:"taxAmount"`
	TipAmount      float64            `json:"tipAmount"`
}

type CreateOrderResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type OrderItemResponse struct {
	MenuItemID   string  `json:"menuItemId"`
	MenuItemName string  `json:"menuItemName"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	TableNumber   string              `json:"tableNumber"`
	CustomerName  *string             `json:"customerName,omitempty"`
	CustomerNote  string              `json:"customerNote,omitempty"`
	Status        string              `json:"status"`
	TotalAmount   float64             `json:"totalAmount"`
	TaxAmount     float64             `json:"taxAmount"`
	TipAmount     float64             `json:"tipAmount"`
	PaymentMethod string              `json:"paymentMethod"`
	CreatedAt     time.Time           `json:"createdAt"`
	Items         []OrderItemResponse `json:"items,omitempty"`
}

type AdminOrderResponse struct {
	ID          string    `json:"id"`
	TableNumber string    `json:"tableNumber"`
	Status      string    `json:"status"`
	ItemsCount  int       `json:"itemsCount"`
	TotalAmount float64   `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ============ Menu ============

type MenuItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"imageUrl"`
	Category    *string `json:"category"`
	IsAvailable bool    `json:"isAvailable"`
}

type CreateMenuItemRequest struct {
	RestaurantID string  `json:"restaurantId" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	ImageURL     *string `json:"imageUrl"`
	Category     *string `json:"category"`
	IsAvailable  *bool   `json:"isAvailable"`
}

type UpdateMenuItemRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Category    *string  `json:"category"`
	IsAvailable *bool    `json:"isAvailable"`
}

// ============ Staff calls ============

type CreateStaffCallRequest struct {
	RestaurantID string `json:"restaurantId"`
	TableCode    string `json:"tableCode" binding:"required"`
}

type ResolveStaffCallRequest struct {
	Status string `json:"status"`
}

type StaffCallResponse struct {
	ID        string     `json:"id"`
	TableCode string     `json:"tableCode"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	HandledAt *time.Time `json:"handledAt,omitempty"`
}

// ============ Tables ============

type CreateTableRequest struct {
	Code  string `json:"code" binding:"required"`
	Label string `json:"label"`
	Seats int    `json:"seats" binding:"omitempty,gt=0"`
}

type TableResponse struct {
	ID    string `json:"id"`
	Code  string `json:"code"`
	Label string `json:"label"`
	Seats int    `json:"seats"`
}

// ============ Reservations ============

type CreateReservationRequest struct {
	RestaurantID string  `json:"restaurantId"`
	Name         string  `json:"name" binding:"required"`
	Phone        string  `json:"phone" binding:"required"`
	Date         string  `json:"date" binding:"required"` // 2006-01-02
	Time         string  `json:"time" binding:"required"` // 15:04
	PartySize    int     `json:"partySize" binding:"required"`
	Notes        *string `json:"notes"`
}

type UpdateReservationRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReservationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	PartySize int       `json:"partySize"`
	DateTime  time.Time `json:"dateTime"`
	Notes     *string   `json:"notes,omitempty"`
	Status    string    `json:"status"`
}

// ============ Auth ============

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ============ Payments ============

type RazorpayVerifyRequest struct {
	OrderID   string `json:"orderId" binding:"required"`
	PaymentID string `json:"paymentId" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// ============ Analytics ============

type PeriodCounts struct {
	Today int64 `json:"today"`
	Month int64 `json:"month"`
	Year  int64 `json:"year"`
}

type PeriodSums struct {
	Today float64 `json:"today"`
	Month float64 `json:"month"`
	Year  float64 `json:"year"`
}

type AnalyticsResponse struct {
	Orders                PeriodCounts `json:"orders"`
	Revenue               PeriodSums   `json:"revenue"`
	Reservations          PeriodCounts `json:"reservations"`
	CancelledReservations PeriodCounts `json:"cancelledReservations"`
	TotalTables           int64        `json:"totalTables"`
	MonthlyRevenue        []float64    `json:"monthlyRevenue"` // Jan..current month of this year
}
