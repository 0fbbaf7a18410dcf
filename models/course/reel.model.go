package course

import "gorm.io/gorm"

// Reel is a single short instructional video unit within a course.
// ReelOrder is dense and starts at 1 per course.
type Reel struct {
	gorm.Model
	CourseID        uint   `json:"course_id" gorm:"index;not null"`
	Title           string `json:"title" gorm:"not null"`
	Description     string `json:"description" gorm:"type:text"`
	VideoURL        string `json:"video_url"`
	Thumbnail       string `json:"thumbnail"`
	Duration        int    `json:"duration" gorm:"default:60"` // seconds
	ReelOrder       int    `json:"reel_order" gorm:"default:0"`
	CaptionsHindi   string `json:"captions_hindi" gorm:"type:text"`
	CaptionsEnglish string `json:"captions_english" gorm:"type:text"`
	CaptionsTamil   string `json:"captions_tamil" gorm:"type:text"`
}
