package repository

import (
	"context"

	"gorm.io/gorm"

	"homehub/internal/model"
)

// LikeRepository defines like persistence operations.
type LikeRepository interface {
	Create(ctx context.Context, like *model.Like) error
	Find(ctx context.Context, userID, postID uint) (*model.Like, error)
	Delete(ctx context.Context, userID, postID uint) error
	CountByPost(ctx context.Context, postID uint) (int64, error)
	ExistsForUser(ctx context.Context, postID, userID uint) (bool, error)
}

type likeRepository struct {
	db *gorm.DB
}

// NewLikeRepository builds a GORM-backed repository.
func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create inserts a like. A concurrent duplicate hits the unique index on
// (user_id, post_id) and surfaces as gorm.ErrDuplicatedKey.
func (r *likeRepository) Create(ctx context.Context, like *model.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *likeRepository) Find(ctx context.Context, userID, postID uint) (*model.Like, error) {
	var like model.Like
	if err := r.db.WithContext(ctx).Where("user_id = ? AND post_id = ?", userID, postID).First(&like).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) Delete(ctx context.Context, userID, postID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ? AND post_id = ?", userID, postID).Delete(&model.Like{}).Error
}

func (r *likeRepository) CountByPost(ctx context.Context, postID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *likeRepository) ExistsForUser(ctx context.Context, postID, userID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Like{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
