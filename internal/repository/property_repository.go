package repository

import (
	"context"

	"gorm.io/gorm"

	"homehub/internal/model"
)

// PropertyRepository defines property persistence operations.
type PropertyRepository interface {
	Create(ctx context.Context, property *model.Property) error
	FindByID(ctx context.Context, id uint) (*model.Property, error)
	UpdateStatus(ctx context.Context, id uint, status model.PropertyStatus) error
	ListAll(ctx context.Context) ([]model.Property, error)
	ListByStatus(ctx context.Context, status model.PropertyStatus) ([]model.Property, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Property, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.PropertyStatus) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository builds a GORM-backed repository.
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(ctx context.Context, property *model.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

func (r *propertyRepository) FindByID(ctx context.Context, id uint) (*model.Property, error) {
	var property model.Property
	if err := r.db.WithContext(ctx).First(&property, id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// UpdateStatus overwrites the moderation status unconditionally; the caller
// decides whether the transition is allowed.
func (r *propertyRepository) UpdateStatus(ctx context.Context, id uint, status model.PropertyStatus) error {
	return r.db.WithContext(ctx).Model(&model.Property{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *propertyRepository) ListAll(ctx context.Context) ([]model.Property, error) {
	var properties []model.Property
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) ListByStatus(ctx context.Context, status model.PropertyStatus) ([]model.Property, error) {
	var properties []model.Property
	if err := r.db.WithContext(ctx).Where("status = ?", status).Order("created_at desc").Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) ListByUser(ctx context.Context, userID uint) ([]model.Property, error) {
	var properties []model.Property
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Property{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *propertyRepository) CountByStatus(ctx context.Context, status model.PropertyStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Property{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *propertyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Property{}, id).Error
}
