package repository

import (
	"errors"
	"time"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/ds"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (r *Repository) CreateReservation(restaurantID, name, phone string, partySize int, dateTime time.Time, notes *string) (*ds.Reservation, error) {
	restaurant, err := r.ResolveRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}

	reservation := ds.Reservation{
		ID:           uuid.NewString(),
		RestaurantID: restaurant.ID,
		Name:         name,
		Phone:        phone,
		PartySize:    partySize,
		DateTime:     dateTime,
		Notes:        notes,
		Status:       ds.ReservationPending,
		CreatedAt:    time.Now(),
	}
	if err := r.db.Create(&reservation).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

// ListReservations returns reservations by visit time, optionally filtered
// by status.
func (r *Repository) ListReservations(restaurantID, status string) ([]ds.Reservation, error) {
	restaurant, err := r.ResolveRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}

	query := r.db.Where("restaurant_id = ?", restaurant.ID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var reservations []ds.Reservation
	if err := query.Order("date_time asc").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *Repository) UpdateReservationStatus(id, status string) (*ds.Reservation, error) {
	var reservation ds.Reservation
	if err := r.db.Where("id = ?", id).First(&reservation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	if err := r.db.Model(&reservation).Update("status", status).Error; err != nil {
		return nil, err
	}
	reservation.Status = status
	return &reservation, nil
}
