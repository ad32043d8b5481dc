package repository

import (
	"errors"
	"time"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/ds"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateStaffCall registers a "waiter please" request for a table, lazily
// creating the table row on first reference.
func (r *Repository) CreateStaffCall(restaurantID, tableCode string) (*ds.StaffCall, error) {
	restaurant, err := r.ResolveRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}

	table, err := r.UpsertTableByCode(restaurant.ID, tableCode)
	if err != nil {
		return nil, err
	}

	call := ds.StaffCall{
		ID:           uuid.NewString(),
		RestaurantID: restaurant.ID,
		TableID:      table.ID,
		Status:       ds.StaffCallOpen,
		CreatedAt:    time.Now(),
	}
	if err := r.db.Create(&call).Error; err != nil {
		return nil, err
	}
	call.Table = *table
	return &call, nil
}

// ListStaffCalls returns calls in the given status, oldest first.
func (r *Repository) ListStaffCalls(restaurantID, status string) ([]ds.StaffCall, error) {
	restaurant, err := r.ResolveRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}

	var calls []ds.StaffCall
	err = r.db.Preload("Table").
		Where("restaurant_id = ? AND status = ?", restaurant.ID, status).
		Order("created_at asc").
		Find(&calls).Error
	if err != nil {
		return nil, err
	}
	return calls, nil
}

// ResolveStaffCall sets the call status. HandledAt is stamped exactly when
// moving to HANDLED and cleared when reopening.
func (r *Repository) ResolveStaffCall(id, status string) (*ds.StaffCall, error) {
	var call ds.StaffCall
	if err := r.db.Preload("Table").Where("id = ?", id).First(&call).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffCallNotFound
		}
		return nil, err
	}

	var handledAt *time.Time
	if status == ds.StaffCallHandled {
		now := time.Now()
		handledAt = &now
	}

	err := r.db.Model(&ds.StaffCall{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "handled_at": handledAt}).Error
	if err != nil {
		return nil, err
	}

	call.Status = status
	call.HandledAt = handledAt
	return &call, nil
}
