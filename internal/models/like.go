package models

import "time"

// Like marks that a user liked a post. The (post, user) pair is unique:
// a second like by the same user is rejected, never toggled.
type Like struct {
	ID     int `gorm:"primaryKey" json:"id"`
	PostID int `gorm:"not null;uniqueIndex:idx_post_user" json:"post_id"`
	UserID int `gorm:"not null;uniqueIndex:idx_post_user" json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
}
