package repository

import (
	"errors"
	"time"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/ds"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ResolveRestaurant returns the restaurant with the given id, or the first
// one for a single-tenant deployment when id is empty.
func (r *Repository) ResolveRestaurant(id string) (*ds.Restaurant, error) {
	var restaurant ds.Restaurant
	query := r.db
	if id != "" {
		query = query.Where("id = ?", id)
	}
	if err := query.First(&restaurant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantNotFound
		}
		return nil, err
	}
	return &restaurant, nil
}

func (r *Repository) CreateRestaurant(name, description, ownerID string, isActive bool) (*ds.Restaurant, error) {
	restaurant := ds.Restaurant{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
		IsActive:    isActive,
		CreatedAt:   time.Now(),
	}
	if err := r.db.Create(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// UpsertTableByCode creates the table on first reference and is a no-op when
// it already exists; whichever concurrent caller wins the insert, both end up
// observing the same row.
func (r *Repository) UpsertTableByCode(restaurantID, code string) (*ds.Table, error) {
	table := ds.Table{
		ID:           uuid.NewString(),
		Code:         code,
		Label:        code,
		Seats:        4,
		RestaurantID: restaurantID,
		CreatedAt:    time.Now(),
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoNothing: true,
	}).Create(&table).Error
	if err != nil {
		return nil, err
	}

	// Re-read: on conflict the insert was skipped and the generated id above
	// never hit the database.
	var existing ds.Table
	if err := r.db.Where("code = ?", code).First(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (r *Repository) CreateTable(restaurantID, code, label string, seats int) (*ds.Table, error) {
	if label == "" {
		label = code
	}
	if seats <= 0 {
		seats = 4
	}
	table := ds.Table{
		ID:           uuid.NewString(),
		Code:         code,
		Label:        label,
		Seats:        seats,
		RestaurantID: restaurantID,
		CreatedAt:    time.Now(),
	}
	if err := r.db.Create(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *Repository) ListTables() ([]ds.Table, error) {
	var tables []ds.Table
	if err := r.db.Order("code asc").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}
