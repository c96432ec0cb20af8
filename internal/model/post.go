package model

import (
	"time"
)

// PostStatus represents the visibility of a post. The field exists in the
// schema but no endpoint transitions it; posts stay visible until deleted.
type PostStatus string

const (
	PostStatusVisible PostStatus = "visible"
	PostStatusHidden  PostStatus = "hidden"
)

// Post is a community post.
type Post struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	UserID    uint       `json:"user_id" gorm:"not null;index"`
	Content   string     `json:"content" gorm:"type:text;not null"`
	ImageURL  string     `json:"image_url,omitempty" gorm:"size:255"`
	Status    PostStatus `json:"status" gorm:"type:varchar(20);not null;default:'visible'"`
	CreatedAt time.Time  `json:"created_at"`

	// Relations. Deleting a post cascades to its likes and comments.
	Likes    []Like    `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}
