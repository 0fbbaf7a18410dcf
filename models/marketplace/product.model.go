package marketplace

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product statuses
const (
	ProductStatusActive   = "active"
	ProductStatusSold     = "sold"
	ProductStatusInactive = "inactive"
)

// Product is a marketplace listing owned by a user
type Product struct {
	gorm.Model
	UserID      uint           `json:"user_id" gorm:"index;not null"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	Price       float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	Images      datatypes.JSON `json:"images"`
	Category    string         `json:"category"`
	Status      string         `json:"status" gorm:"default:'active'"` // active, sold, inactive
}
