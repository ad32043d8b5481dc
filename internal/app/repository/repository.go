package repository

import (
	"errors"
	"fmt"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrStaffCallNotFound   = errors.New("staff call not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrUserNotFound        = errors.New("user not found")

	ErrInvalidMenuItems = errors.New("one or more menu items are invalid")
	ErrInvalidQuantity  = errors.New("invalid order item quantity")

	ErrAlreadyCompleted = errors.New("order already completed")
	ErrCompletedCancel  = errors.New("completed order cannot be cancelled")

	// ErrStatusRaced means the status changed between our read and the
	// conditional write; the caller lost the race and must re-read.
	ErrStatusRaced = errors.New("order status changed concurrently")
)

// TransitionError is a rejected generic status change, carrying both sides
// so the caller can report them.
type TransitionError struct {
	Current ds.OrderStatus
	Next    ds.OrderStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.Current, e.Next)
}

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&ds.User{},
		&ds.Restaurant{},
		&ds.Table{},
		&ds.MenuItem{},
		&ds.Order{},
		&ds.OrderItem{},
		&ds.StaffCall{},
		&ds.Reservation{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{db: db}, nil
}

// NewWithDB wraps an existing gorm handle. Used by tests.
func NewWithDB(db *gorm.DB) *Repository {
	return &Repository{db: db}
}
