package community

import "gorm.io/gorm"

// Vote types
const (
	VoteTypeUp   = "up"
	VoteTypeDown = "down"
)

// PostVote holds at most one vote per (post, user) pair
type PostVote struct {
	gorm.Model
	PostID   uint   `json:"post_id" gorm:"uniqueIndex:idx_post_user;not null"`
	UserID   uint   `json:"user_id" gorm:"uniqueIndex:idx_post_user;not null"`
	VoteType string `json:"vote_type" gorm:"not null"` // up, down
}
