package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "homehub/internal/errors"
	"homehub/internal/model"
	"homehub/internal/repository"
)

// AddPropertyInput carries the fields of a new listing.
type AddPropertyInput struct {
	Title       string
	Description string
	Price       decimal.Decimal
	ListingType string
	ImageURL    string
}

// PropertyService handles the user-facing side of listings. Moderation lives
// in AdminService.
type PropertyService interface {
	Add(ctx context.Context, userID uint, in AddPropertyInput) (*model.Property, error)
	ListApproved(ctx context.Context) ([]model.Property, error)
	MyProperties(ctx context.Context, userID uint) ([]model.Property, error)
}

type propertyService struct {
	properties repository.PropertyRepository
}

// NewPropertyService creates a new property service.
func NewPropertyService(properties repository.PropertyRepository) PropertyService {
	return &propertyService{properties: properties}
}

// Add creates a listing in the pending state. Only an admin can move it on
// from there.
func (s *propertyService) Add(ctx context.Context, userID uint, in AddPropertyInput) (*model.Property, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperrors.ErrTitleRequired
	}

	property := &model.Property{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Status:      model.PropertyStatusPending,
		ListingType: in.ListingType,
		ImageURL:    in.ImageURL,
	}
	if err := s.properties.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("create property: %w", err)
	}
	return property, nil
}

// ListApproved returns the public listing view: approved properties only,
// newest first.
func (s *propertyService) ListApproved(ctx context.Context) ([]model.Property, error) {
	return s.properties.ListByStatus(ctx, model.PropertyStatusApproved)
}

// MyProperties returns the owner's listings regardless of status.
func (s *propertyService) MyProperties(ctx context.Context, userID uint) ([]model.Property, error) {
	return s.properties.ListByUser(ctx, userID)
}
