package ds

import "time"

// OrderStatus is persisted as a string column.
type OrderStatus string

const (
	StatusReceived  OrderStatus = "RECEIVED"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// StatusTransitions is the generic forward-transition table for the kitchen
// flow. COMPLETED and CANCELLED are terminal. The dedicated cancel/complete
// operations deliberately do NOT consult this table; they only refuse to
// touch an already-completed order (see repository.CancelOrder /
// CompleteOrder).
var StatusTransitions = map[OrderStatus][]OrderStatus{
	StatusReceived:  {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady},
	StatusReady:     {StatusCompleted},
	StatusCompleted: {},
	StatusCancelled: {},
}

// IsValidStatusTransition reports whether current -> next appears in the
// transition table. Pure; no side effects.
func IsValidStatusTransition(current, next OrderStatus) bool {
	for _, allowed := range StatusTransitions[current] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OpenStatuses are the statuses shown on the kitchen board and returned by
// the live orders endpoint.
var OpenStatuses = []OrderStatus{StatusReceived, StatusPreparing, StatusReady}

// Payment methods accepted at order creation.
const (
	PaymentCard    = "CARD"
	PaymentWallet  = "WALLET"
	PaymentCounter = "COUNTER"
)

// ValidPaymentMethod reports whether m is one of the accepted methods.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCard, PaymentWallet, PaymentCounter:
		return true
	}
	return false
}

// Order is the central entity. Monetary fields are computed once at creation
// time; item lines snapshot the menu name and price so later menu edits never
// change a placed order.
type Order struct {
	ID             string      `gorm:"primaryKey;size:36"`
	RestaurantID   string      `gorm:"size:36;index;not null"`
	TableID        string      `gorm:"size:36;index;not null"`
	TableNumber    string      `gorm:"type:varchar(50)"`
	CustomerName   *string     `gorm:"type:varchar(100)"`
	CustomerNote   string      `gorm:"type:text"`
	Status         OrderStatus `gorm:"type:varchar(20);index;not null;default:'RECEIVED'"`
	TotalAmount    float64     `gorm:"type:decimal(10,2);not null"`
	TaxAmount      float64     `gorm:"type:decimal(10,2);not null;default:0"`
	TipAmount      float64     `gorm:"type:decimal(10,2);not null;default:0"`
	PaymentMethod  string      `gorm:"type:varchar(20);not null;default:'COUNTER'"`
	PaymentRef     *string     `gorm:"type:varchar(255)"`
	IdempotencyKey *string     `gorm:"type:varchar(100);uniqueIndex"`
	CreatedAt      time.Time   `gorm:"index;not null"`
	UpdatedAt      time.Time

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem is an immutable order line. MenuItemName and Price are snapshots
// taken at creation time, not live joins.
type OrderItem struct {
	ID           string  `gorm:"primaryKey;size:36"`
	OrderID      string  `gorm:"size:36;index;not null"`
	MenuItemID   string  `gorm:"size:36;index;not null"`
	MenuItemName string  `gorm:"type:varchar(100);not null"`
	Quantity     int     `gorm:"not null"`
	Price        float64 `gorm:"type:decimal(10,2);not null"`
}
