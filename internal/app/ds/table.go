package ds

import (
	"strings"
	"time"
)

// Table is a physical dining table, identified by a normalized code printed
// on its QR sticker. Tables are upserted lazily on first reference by an
// order or staff call.
type Table struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Code         string    `gorm:"type:varchar(50);unique;not null"`
	Label        string    `gorm:"type:varchar(50)"`
	Seats        int       `gorm:"not null;default:4"`
	RestaurantID string    `gorm:"size:36;index;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// NormalizeTableCode canonicalizes a user-supplied table code: trimmed,
// uppercased, inner whitespace collapsed to underscores. "t 1" and "T 1"
// must resolve to the same table row.
func NormalizeTableCode(value string) string {
	code := strings.ToUpper(strings.TrimSpace(value))
	return strings.Join(strings.Fields(code), "_")
}
