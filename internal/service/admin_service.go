package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"homehub/internal/cache"
	apperrors "homehub/internal/errors"
	"homehub/internal/model"
	"homehub/internal/repository"
)

const (
	statsCacheKey = "admin:dashboard_stats"
	statsCacheTTL = 30 * time.Second
)

// DashboardStats aggregates the admin dashboard counters.
type DashboardStats struct {
	TotalUsers         int64 `json:"total_users"`
	TotalPosts         int64 `json:"total_posts"`
	TotalProperties    int64 `json:"total_properties"`
	PendingProperties  int64 `json:"pending_properties"`
	ApprovedProperties int64 `json:"approved_properties"`
}

// AdminPropertyView is a listing joined with its owner's display name for the
// admin table.
type AdminPropertyView struct {
	ID          uint                 `json:"id"`
	UserID      uint                 `json:"user_id"`
	UserName    string               `json:"user_name"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	Price       decimal.Decimal      `json:"price"`
	Status      model.PropertyStatus `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
}

// AdminPostView is a post joined with its owner's display name.
type AdminPostView struct {
	ID        uint             `json:"id"`
	UserID    uint             `json:"user_id"`
	UserName  string           `json:"user_name"`
	Content   string           `json:"content"`
	ImageURL  string           `json:"image_url,omitempty"`
	Status    model.PostStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}

// AdminService is the moderation surface: user removal, property approval
// workflow, post removal and dashboard stats. Every caller has already passed
// the admin gate.
type AdminService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	DeleteUser(ctx context.Context, id uint) error

	ListProperties(ctx context.Context) ([]AdminPropertyView, error)
	ApproveProperty(ctx context.Context, id uint) error
	DeclineProperty(ctx context.Context, id uint) error
	DeleteProperty(ctx context.Context, id uint) error

	ListPosts(ctx context.Context) ([]AdminPostView, error)
	DeletePost(ctx context.Context, id uint) error

	Stats(ctx context.Context) (*DashboardStats, error)
}

type adminService struct {
	users      repository.UserRepository
	posts      repository.PostRepository
	properties repository.PropertyRepository
	cache      *cache.Client
	log        *zap.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(
	users repository.UserRepository,
	posts repository.PostRepository,
	properties repository.PropertyRepository,
	cache *cache.Client,
	log *zap.Logger,
) AdminService {
	return &adminService{
		users:      users,
		posts:      posts,
		properties: properties,
		cache:      cache,
		log:        log,
	}
}

func (s *adminService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// DeleteUser removes a user and cascades to everything the user owns.
func (s *adminService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("user deleted by admin", zap.Uint("user_id", id))
	return nil
}

// ListProperties returns every listing regardless of status.
func (s *adminService) ListProperties(ctx context.Context) ([]AdminPropertyView, error) {
	properties, err := s.properties.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	names := map[uint]string{}
	views := make([]AdminPropertyView, 0, len(properties))
	for _, p := range properties {
		views = append(views, AdminPropertyView{
			ID:          p.ID,
			UserID:      p.UserID,
			UserName:    s.ownerName(ctx, names, p.UserID),
			Title:       p.Title,
			Description: p.Description,
			Price:       p.Price,
			Status:      p.Status,
			CreatedAt:   p.CreatedAt,
		})
	}
	return views, nil
}

// ApproveProperty sets the listing approved. The transition is unconditional:
// approving an already-declined listing succeeds and overwrites it.
func (s *adminService) ApproveProperty(ctx context.Context, id uint) error {
	return s.setPropertyStatus(ctx, id, model.PropertyStatusApproved)
}

// DeclineProperty sets the listing declined, last writer wins.
func (s *adminService) DeclineProperty(ctx context.Context, id uint) error {
	return s.setPropertyStatus(ctx, id, model.PropertyStatusDeclined)
}

func (s *adminService) setPropertyStatus(ctx context.Context, id uint, status model.PropertyStatus) error {
	if _, err := s.properties.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPropertyNotFound
		}
		return err
	}

	if err := s.properties.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.log.Info("property status changed",
		zap.Uint("property_id", id), zap.String("status", string(status)))
	return nil
}

func (s *adminService) DeleteProperty(ctx context.Context, id uint) error {
	if _, err := s.properties.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPropertyNotFound
		}
		return err
	}
	return s.properties.Delete(ctx, id)
}

// ListPosts returns every post with owner name and visibility status.
func (s *adminService) ListPosts(ctx context.Context) ([]AdminPostView, error) {
	posts, err := s.posts.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	names := map[uint]string{}
	views := make([]AdminPostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, AdminPostView{
			ID:        p.ID,
			UserID:    p.UserID,
			UserName:  s.ownerName(ctx, names, p.UserID),
			Content:   p.Content,
			ImageURL:  p.ImageURL,
			Status:    p.Status,
			CreatedAt: p.CreatedAt,
		})
	}
	return views, nil
}

// DeletePost removes a post outright; there is no hide transition.
func (s *adminService) DeletePost(ctx context.Context, id uint) error {
	if _, err := s.posts.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPostNotFound
		}
		return err
	}
	return s.posts.Delete(ctx, id)
}

// Stats returns the dashboard counters, cached briefly to keep the dashboard
// cheap under polling.
func (s *adminService) Stats(ctx context.Context) (*DashboardStats, error) {
	if data, _ := s.cache.Get(ctx, statsCacheKey); data != nil {
		var cached DashboardStats
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	stats := &DashboardStats{}
	var err error
	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalPosts, err = s.posts.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalProperties, err = s.properties.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingProperties, err = s.properties.CountByStatus(ctx, model.PropertyStatusPending); err != nil {
		return nil, err
	}
	if stats.ApprovedProperties, err = s.properties.CountByStatus(ctx, model.PropertyStatusApproved); err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, statsCacheKey, payload, statsCacheTTL)
	}
	return stats, nil
}

// ownerName resolves an owner's name with "Unknown" fallback; lookup failures
// degrade to the fallback rather than failing the listing.
func (s *adminService) ownerName(ctx context.Context, memo map[uint]string, userID uint) string {
	if name, ok := memo[userID]; ok {
		return name
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		memo[userID] = unknownUserName
		return unknownUserName
	}
	memo[userID] = user.Name
	return user.Name
}
