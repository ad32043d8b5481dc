package ds

import "time"

const (
	ReservationPending   = "PENDING"
	ReservationConfirmed = "CONFIRMED"
	ReservationCancelled = "CANCELLED"
	ReservationSeated    = "SEATED"
)

type Reservation struct {
	ID           string    `gorm:"primaryKey;size:36"`
	RestaurantID string    `gorm:"size:36;index;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Phone        string    `gorm:"type:varchar(20);not null"`
	PartySize    int       `gorm:"not null"`
	DateTime     time.Time `gorm:"index;not null"`
	Notes        *string   `gorm:"type:text"`
	Status       string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	CreatedAt    time.Time `gorm:"not null"`
}
