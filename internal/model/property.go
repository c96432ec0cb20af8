package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PropertyStatus represents the moderation state of a listing.
type PropertyStatus string

const (
	PropertyStatusPending  PropertyStatus = "pending"
	PropertyStatusApproved PropertyStatus = "approved"
	PropertyStatusDeclined PropertyStatus = "declined"
)

// Property is a sale/rent listing. Every listing starts pending and only an
// admin moves it to approved or declined.
type Property struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	UserID      uint            `json:"user_id" gorm:"not null;index"`
	Title       string          `json:"title" gorm:"size:120;not null"`
	Description string          `json:"description,omitempty" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2)"`
	Status      PropertyStatus  `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	ListingType string          `json:"listing_type,omitempty" gorm:"size:10"`
	ImageURL    string          `json:"image_url,omitempty" gorm:"size:255"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"-"`
}
