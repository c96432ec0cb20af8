package model

import (
	"time"
)

// User represents a registered account. Admins are flagged, not a separate
// role table.
type User struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"size:120;not null"`
	Email           string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash    string    `json:"-" gorm:"size:255;not null"`
	IsAdmin         bool      `json:"is_admin" gorm:"default:false"`
	ProfileImageURL string    `json:"profile_image_url,omitempty" gorm:"size:255"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"-"`

	// Relations. Deleting a user cascades to everything it owns.
	Posts      []Post     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Properties []Property `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Likes      []Like     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Comments   []Comment  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
