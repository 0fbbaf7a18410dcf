package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AnalyticsEvent is append-only: no exposed operation updates or deletes a
// row once written (the retention job prunes by age, nothing else touches it).
type AnalyticsEvent struct {
	gorm.Model
	Reference string         `json:"reference" gorm:"uniqueIndex;not null"`
	UserID    *uint          `json:"user_id" gorm:"index"`
	EventType string         `json:"event_type" gorm:"index;not null"`
	EventData datatypes.JSON `json:"event_data"`
}
