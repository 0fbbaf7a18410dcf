package models

import (
	"gorm.io/gorm"
)

// UserProgress marks a reel as completed by a user. The composite unique
// index keeps at most one record per (user, course, reel) triple, which is
// what makes completion recording idempotent.
type UserProgress struct {
	gorm.Model
	UserID   uint `json:"user_id" gorm:"uniqueIndex:idx_user_course_reel;not null"`
	CourseID uint `json:"course_id" gorm:"uniqueIndex:idx_user_course_reel;not null"`
	ReelID   uint `json:"reel_id" gorm:"uniqueIndex:idx_user_course_reel;not null"`
}
