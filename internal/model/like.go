package model

import (
	"time"
)

// Like marks that a user liked a post. The composite unique index is the
// invariant: at most one like per (user, post) pair, enforced by the store
// rather than application logic.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:uniq_user_post_like"`
	PostID    uint      `json:"post_id" gorm:"not null;uniqueIndex:uniq_user_post_like"`
	CreatedAt time.Time `json:"created_at"`
}
