package community

import "gorm.io/gorm"

// PostReply is a threaded reply on a community post
type PostReply struct {
	gorm.Model
	PostID    uint   `json:"post_id" gorm:"index;not null"`
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Content   string `json:"content" gorm:"type:text;not null"`
	Upvotes   int    `json:"upvotes" gorm:"default:0"`
	Downvotes int    `json:"downvotes" gorm:"default:0"`
}
