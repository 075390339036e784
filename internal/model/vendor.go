package model

import (
	"time"
)

// Vendor represents a supplier master-data record.
// TaxID carries a unique index; deletion is physical (no soft delete),
// so the integration change feed cannot see removed vendors.
type Vendor struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null;index" json:"name"`
	TaxID        string    `gorm:"column:tax_id;type:varchar(100);not null;uniqueIndex" json:"tax_id"`
	Address      string    `gorm:"type:text;index" json:"address"`
	ContactEmail string    `gorm:"type:varchar(255);index" json:"contact_email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
