package ds

import "time"

type MenuItem struct {
	ID           string    `gorm:"primaryKey;size:36"`
	RestaurantID string    `gorm:"size:36;index;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Description  string    `gorm:"type:text"`
	Price        float64   `gorm:"type:decimal(10,2);not null"`
	ImageURL     *string   `gorm:"type:varchar(255)"`
	Category     *string   `gorm:"type:varchar(50)"`
	IsAvailable  bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time
}
