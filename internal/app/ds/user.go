package ds

import "time"

// User is a console account. Customers order anonymously; only staff and
// admins authenticate.
type User struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Email     string    `gorm:"type:varchar(100);unique;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	Password  string    `gorm:"type:varchar(255);not null"` // sha1 hex
	Role      string    `gorm:"type:varchar(20);not null;default:'STAFF'"`
	CreatedAt time.Time `gorm:"not null"`
}
