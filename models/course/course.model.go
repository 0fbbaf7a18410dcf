package course

import "gorm.io/gorm"

// Course is an ordered collection of reels under one skill topic
type Course struct {
	gorm.Model
	Title         string  `json:"title" gorm:"not null"`
	Description   string  `json:"description" gorm:"type:text"`
	Thumbnail     string  `json:"thumbnail"`
	Category      string  `json:"category"`
	Duration      int     `json:"duration" gorm:"default:0"` // total minutes
	Instructor    string  `json:"instructor"`
	Rating        float64 `json:"rating" gorm:"type:decimal(2,1);default:0"` // 0.0 - 5.0
	EnrolledCount int     `json:"enrolled_count" gorm:"default:0"`
}
