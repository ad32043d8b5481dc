package ds

import "time"

type Restaurant struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	OwnerID     string    `gorm:"size:36;index"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"not null"`
}
