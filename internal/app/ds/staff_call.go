package ds

import "time"

const (
	StaffCallOpen    = "OPEN"
	StaffCallHandled = "HANDLED"
)

// StaffCall is an ephemeral "waiter please" notification: created by a diner,
// resolved once by staff. HandledAt is set exactly when the call transitions
// to HANDLED and cleared otherwise.
type StaffCall struct {
	ID           string     `gorm:"primaryKey;size:36"`
	RestaurantID string     `gorm:"size:36;index;not null"`
	TableID      string     `gorm:"size:36;index;not null"`
	Status       string     `gorm:"type:varchar(20);index;not null;default:'OPEN'"`
	CreatedAt    time.Time  `gorm:"index;not null"`
	HandledAt    *time.Time `gorm:"default:null"`

	Table Table `gorm:"foreignKey:TableID"`
}
