package models

import "time"

type Comment struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	PostID   int    `gorm:"not null;index" json:"post_id"`
	Text     string `gorm:"not null" json:"text"`
	AuthorID int    `gorm:"not null" json:"author_id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateCommentRequest struct {
	Text string `json:"text"`
}
