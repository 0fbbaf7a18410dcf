package community

import "gorm.io/gorm"

// CommunityPost carries denormalized vote tallies. The tallies are always
// reconcilable as the count of live PostVote rows per type for the post;
// every mutation of them happens inside the vote transaction.
type CommunityPost struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Title     string `json:"title" gorm:"not null"`
	Content   string `json:"content" gorm:"type:text;not null"`
	Category  string `json:"category" gorm:"default:'General'"`
	Upvotes   int    `json:"upvotes" gorm:"default:0"`
	Downvotes int    `json:"downvotes" gorm:"default:0"`
}
