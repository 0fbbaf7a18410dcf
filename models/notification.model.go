package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Notification types
const (
	NotificationTypeCourse    = "course"
	NotificationTypeCommunity = "community"
	NotificationTypeOrder     = "order"
	NotificationTypeSystem    = "system"
)

// Notification is a per-user inbox entry. IsRead only ever moves false -> true.
type Notification struct {
	gorm.Model
	UserID  uint           `json:"user_id" gorm:"index;not null"`
	Type    string         `json:"type" gorm:"not null"`
	Title   string         `json:"title" gorm:"not null"`
	Message string         `json:"message" gorm:"type:text"`
	IsRead  bool           `json:"is_read" gorm:"default:false"`
	Data    datatypes.JSON `json:"data"`
}
