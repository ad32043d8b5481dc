package repository

import (
	"errors"
	"time"

	"github.com/Purva137/Restaurant-Ordering-System/internal/app/ds"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListAvailableMenuItems returns the customer-visible menu of a restaurant,
// sorted by name.
func (r *Repository) ListAvailableMenuItems(restaurantID string) ([]ds.MenuItem, error) {
	var items []ds.MenuItem
	err := r.db.
		Where("restaurant_id = ? AND is_available = ?", restaurantID, true).
		Order("name asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// FindMenuItemsByIDs resolves menu items in one batch, restricted to the
// given restaurant. Deleted, foreign or renamed-away ids simply do not come
// back; the caller compares counts.
func (r *Repository) FindMenuItemsByIDs(restaurantID string, ids []string) ([]ds.MenuItem, error) {
	var items []ds.MenuItem
	err := r.db.
		Where("id IN ? AND restaurant_id = ?", ids, restaurantID).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *Repository) GetMenuItemByID(id string) (*ds.MenuItem, error) {
	var item ds.MenuItem
	if err := r.db.Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *Repository) CreateMenuItem(item *ds.MenuItem) error {
	item.ID = uuid.NewString()
	item.CreatedAt = time.Now()
	return r.db.Create(item).Error
}

// UpdateMenuItem applies the non-nil fields of updates to the item.
func (r *Repository) UpdateMenuItem(id string, updates map[string]interface{}) (*ds.MenuItem, error) {
	item, err := r.GetMenuItemByID(id)
	if err != nil {
		return nil, err
	}
	if len(updates) > 0 {
		if err := r.db.Model(item).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return item, nil
}

func (r *Repository) DeleteMenuItem(id string) error {
	res := r.db.Where("id = ?", id).Delete(&ds.MenuItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}

// SetMenuItemImage stores the uploaded object name on the item.
func (r *Repository) SetMenuItemImage(id string, imageURL string) error {
	res := r.db.Model(&ds.MenuItem{}).Where("id = ?", id).Update("image_url", imageURL)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}
