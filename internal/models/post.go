package models

import "time"

type Post struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Text     string `gorm:"not null" json:"text"`
	AuthorID int    `gorm:"not null;index" json:"author_id"`
	Name     string `json:"name"`   // author name snapshot taken at creation
	Avatar   string `json:"avatar"` // author avatar snapshot taken at creation

	Likes    []Like    `gorm:"constraint:OnDelete:CASCADE" json:"likes"`
	Comments []Comment `gorm:"constraint:OnDelete:CASCADE" json:"comments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreatePostRequest struct {
	Text string `json:"text"`
}
