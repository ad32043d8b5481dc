package repository

import (
	"errors"
	"math"
	"time"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/ds"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderLineInput is one requested line before price snapshotting.
type OrderLineInput struct {
	MenuItemID string
	Quantity   float64
}

// CreateOrderInput carries sanitized order-creation parameters. Payment
// method and tax/tip normalization happen in the handler; everything data
// dependent happens here.
type CreateOrderInput struct {
	RestaurantID   string
	TableCode      string // already normalized
	Items          []OrderLineInput
	CustomerName   *string
	CustomerNote   string
	IdempotencyKey *string
	PaymentMethod  string
	PaymentRef     *string
	TaxAmount      float64
	TipAmount      float64
}

// buildOrderLines validates quantities and turns requested lines into
// snapshot records. Name and price become immutable here; later menu edits
// never touch a placed order. Returns the lines and their subtotal.
func buildOrderLines(orderID string, items []OrderLineInput, byID map[string]ds.MenuItem) ([]ds.OrderItem, float64, error) {
	var subtotal float64
	lines := make([]ds.OrderItem, 0, len(items))
	for _, line := range items {
		q := line.Quantity
		if math.IsNaN(q) || math.IsInf(q, 0) || q <= 0 || q != math.Trunc(q) {
			return nil, 0, ErrInvalidQuantity
		}
		menuItem := byID[line.MenuItemID]
		quantity := int(q)
		lines = append(lines, ds.OrderItem{
			ID:           uuid.NewString(),
			OrderID:      orderID,
			MenuItemID:   menuItem.ID,
			MenuItemName: menuItem.Name,
			Quantity:     quantity,
			Price:        menuItem.Price,
		})
		subtotal += menuItem.Price * float64(quantity)
	}
	return lines, subtotal, nil
}

// CreateOrder creates an order in RECEIVED status with all lines written
// atomically, after idempotency replay, table upsert and menu validation.
// Returns the order id (an existing one on idempotent replay).
func (r *Repository) CreateOrder(in CreateOrderInput) (string, error) {
	// Idempotent replay: a repeated key returns the original order without
	// creating anything, whatever the rest of the payload says.
	if in.IdempotencyKey != nil && *in.IdempotencyKey != "" {
		var existing ds.Order
		err := r.db.Where("idempotency_key = ?", *in.IdempotencyKey).First(&existing).Error
		if err == nil {
			return existing.ID, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", err
		}
	}

	restaurant, err := r.ResolveRestaurant(in.RestaurantID)
	if err != nil {
		return "", err
	}

	table, err := r.UpsertTableByCode(restaurant.ID, in.TableCode)
	if err != nil {
		return "", err
	}

	// Batch lookup scoped to the restaurant. A count mismatch means a
	// deleted or cross-restaurant item reference.
	distinct := make(map[string]struct{}, len(in.Items))
	ids := make([]string, 0, len(in.Items))
	for _, line := range in.Items {
		if _, seen := distinct[line.MenuItemID]; !seen {
			distinct[line.MenuItemID] = struct{}{}
			ids = append(ids, line.MenuItemID)
		}
	}
	menuItems, err := r.FindMenuItemsByIDs(restaurant.ID, ids)
	if err != nil {
		return "", err
	}
	if len(menuItems) != len(ids) {
		return "", ErrInvalidMenuItems
	}
	byID := make(map[string]ds.MenuItem, len(menuItems))
	for _, item := range menuItems {
		byID[item.ID] = item
	}

	orderID := uuid.NewString()
	lines, subtotal, err := buildOrderLines(orderID, in.Items, byID)
	if err != nil {
		return "", err
	}

	order := ds.Order{
		ID:             orderID,
		RestaurantID:   restaurant.ID,
		TableID:        table.ID,
		TableNumber:    in.TableCode,
		CustomerName:   in.CustomerName,
		CustomerNote:   in.CustomerNote,
		Status:         ds.StatusReceived,
		TotalAmount:    subtotal + in.TaxAmount + in.TipAmount,
		TaxAmount:      in.TaxAmount,
		TipAmount:      in.TipAmount,
		PaymentMethod:  in.PaymentMethod,
		PaymentRef:     in.PaymentRef,
		IdempotencyKey: in.IdempotencyKey,
		CreatedAt:      time.Now(),
		Items:          lines,
	}

	// Order and lines succeed or fail together.
	if err := r.db.Create(&order).Error; err != nil {
		return "", err
	}
	return order.ID, nil
}

func (r *Repository) GetOrderByID(id string) (*ds.Order, error) {
	var order ds.Order
	if err := r.db.Preload("Items").Where("id = ?", id).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus applies a generic transition validated against the
// forward table, then writes conditionally on the status we just read.
// Zero rows affected means another caller moved the order in between.
func (r *Repository) UpdateOrderStatus(id string, next ds.OrderStatus) error {
	order, err := r.GetOrderByID(id)
	if err != nil {
		return err
	}

	if !ds.IsValidStatusTransition(order.Status, next) {
		return &TransitionError{Current: order.Status, Next: next}
	}

	res := r.db.Model(&ds.Order{}).
		Where("id = ? AND status = ?", id, order.Status).
		Update("status", next)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusRaced
	}
	return nil
}

// CancelOrder is the dedicated escape hatch: it ignores the forward table
// and refuses only to cancel a completed order.
func (r *Repository) CancelOrder(id string) (*ds.Order, error) {
	order, err := r.GetOrderByID(id)
	if err != nil {
		return nil, err
	}
	if order.Status == ds.StatusCompleted {
		return nil, ErrCompletedCancel
	}

	res := r.db.Model(&ds.Order{}).
		Where("id = ? AND status <> ?", id, ds.StatusCompleted).
		Update("status", ds.StatusCancelled)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// The order completed between our read and the write.
		return nil, ErrCompletedCancel
	}

	order.Status = ds.StatusCancelled
	return order, nil
}

// CompleteOrder mirrors CancelOrder, rejecting only an already-completed
// order.
func (r *Repository) CompleteOrder(id string) (*ds.Order, error) {
	order, err := r.GetOrderByID(id)
	if err != nil {
		return nil, err
	}
	if order.Status == ds.StatusCompleted {
		return nil, ErrAlreadyCompleted
	}

	res := r.db.Model(&ds.Order{}).
		Where("id = ? AND status <> ?", id, ds.StatusCompleted).
		Update("status", ds.StatusCompleted)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrAlreadyCompleted
	}

	order.Status = ds.StatusCompleted
	return order, nil
}

// ListLiveOrders returns the open set for the kitchen board, oldest first.
func (r *Repository) ListLiveOrders(restaurantID string) ([]ds.Order, error) {
	restaurant, err := r.ResolveRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}

	var orders []ds.Order
	err = r.db.Preload("Items").
		Where("restaurant_id = ? AND status IN ?", restaurant.ID, ds.OpenStatuses).
		Order("created_at asc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ListOrders is the admin view: newest first, optionally filtered by status.
func (r *Repository) ListOrders(status string) ([]ds.Order, error) {
	query := r.db.Preload("Items").Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var orders []ds.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ClearOrders is the administrative bulk purge: all lines, then all orders.
func (r *Repository) ClearOrders() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&ds.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&ds.Order{}).Error
	})
}
