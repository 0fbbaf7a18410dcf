package models

import (
	"time"

	"gorm.io/gorm"
)

// UserStats holds cumulative learning counters (1:1 with User)
type UserStats struct {
	gorm.Model
	UserID           uint       `json:"user_id" gorm:"uniqueIndex;not null"`
	TotalSessions    int        `json:"total_sessions" gorm:"default:0"`
	MinutesLearned   int        `json:"minutes_learned" gorm:"default:0"`
	LongestStreak    int        `json:"longest_streak" gorm:"default:0"`
	CurrentStreak    int        `json:"current_streak" gorm:"default:0"`
	LastActivityDate *time.Time `json:"last_activity_date"`
}
