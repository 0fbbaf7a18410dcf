package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserPreference holds per-user playback and notification settings (1:1 with User)
type UserPreference struct {
	gorm.Model
	UserID           uint           `json:"user_id" gorm:"uniqueIndex;not null"`
	Notifications    bool           `json:"notifications" gorm:"default:true"`
	AutoPlay         bool           `json:"auto_play" gorm:"default:true"`
	DownloadOverWifi bool           `json:"download_over_wifi" gorm:"default:true"`
	Language         string         `json:"language" gorm:"default:'English'"`
	CaptionLanguages datatypes.JSON `json:"caption_languages"`
}
