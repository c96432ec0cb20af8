package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "homehub/internal/errors"
	"homehub/internal/model"
	"homehub/internal/repository"
)

// unknownUserName is shown when a post or comment outlives its author.
const unknownUserName = "Unknown"

// FeedItem is a post annotated for the community feed. Counts and the
// caller's like state are computed per read; nothing is denormalized.
type FeedItem struct {
	ID                 uint      `json:"id"`
	UserID             uint      `json:"user_id"`
	UserName           string    `json:"user_name"`
	Content            string    `json:"content"`
	ImageURL           string    `json:"image_url,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	Likes              int64     `json:"likes"`
	Comments           int64     `json:"comments"`
	LikedByCurrentUser bool      `json:"liked_by_current_user"`
}

// CommentView is a comment with the author's display name joined fresh at
// read time, so renames change historical comments too.
type CommentView struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	UserName  string    `json:"user_name"`
	PostID    uint      `json:"post_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// PostService handles community posts, likes and comments.
type PostService interface {
	Create(ctx context.Context, userID uint, content, imageURL string) (*model.Post, error)
	Delete(ctx context.Context, caller *model.User, postID uint) error
	MyPosts(ctx context.Context, userID uint) ([]model.Post, error)
	Feed(ctx context.Context, currentUserID uint) ([]FeedItem, error)
	ToggleLike(ctx context.Context, userID, postID uint) (liked bool, err error)
	AddComment(ctx context.Context, user *model.User, postID uint, content string) (*CommentView, error)
	Comments(ctx context.Context, postID uint) ([]CommentView, error)
}

type postService struct {
	posts    repository.PostRepository
	users    repository.UserRepository
	likes    repository.LikeRepository
	comments repository.CommentRepository
	log      *zap.Logger
}

// NewPostService creates a new post service.
func NewPostService(
	posts repository.PostRepository,
	users repository.UserRepository,
	likes repository.LikeRepository,
	comments repository.CommentRepository,
	log *zap.Logger,
) PostService {
	return &postService{
		posts:    posts,
		users:    users,
		likes:    likes,
		comments: comments,
		log:      log,
	}
}

// Create adds a community post. Content is required.
func (s *postService) Create(ctx context.Context, userID uint, content, imageURL string) (*model.Post, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.ErrContentRequired
	}

	post := &model.Post{
		UserID:   userID,
		Content:  content,
		ImageURL: imageURL,
		Status:   model.PostStatusVisible,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

// Delete removes a post for its owner or an admin. Anyone else gets the same
// answer as for a missing post.
func (s *postService) Delete(ctx context.Context, caller *model.User, postID uint) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPostUnauthorized
		}
		return err
	}

	if post.UserID != caller.ID && !caller.IsAdmin {
		return apperrors.ErrPostUnauthorized
	}

	return s.posts.Delete(ctx, postID)
}

func (s *postService) MyPosts(ctx context.Context, userID uint) ([]model.Post, error) {
	return s.posts.ListByUser(ctx, userID)
}

// Feed lists every post newest first, annotated with author name, like and
// comment counts and whether the caller liked it.
func (s *postService) Feed(ctx context.Context, currentUserID uint) ([]FeedItem, error) {
	posts, err := s.posts.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	names := map[uint]string{}
	items := make([]FeedItem, 0, len(posts))
	for _, p := range posts {
		name, err := s.userName(ctx, names, p.UserID)
		if err != nil {
			return nil, err
		}

		likeCount, err := s.likes.CountByPost(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		commentCount, err := s.comments.CountByPost(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		liked, err := s.likes.ExistsForUser(ctx, p.ID, currentUserID)
		if err != nil {
			return nil, err
		}

		items = append(items, FeedItem{
			ID:                 p.ID,
			UserID:             p.UserID,
			UserName:           name,
			Content:            p.Content,
			ImageURL:           p.ImageURL,
			CreatedAt:          p.CreatedAt,
			Likes:              likeCount,
			Comments:           commentCount,
			LikedByCurrentUser: liked,
		})
	}
	return items, nil
}

// ToggleLike flips the caller's like on a post. Deleting returns liked=false,
// inserting returns liked=true. A duplicate insert losing the race against
// the unique index is reported as liked, not as an error.
func (s *postService) ToggleLike(ctx context.Context, userID, postID uint) (bool, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperrors.ErrPostNotFound
		}
		return false, err
	}

	_, err := s.likes.Find(ctx, userID, postID)
	if err == nil {
		if err := s.likes.Delete(ctx, userID, postID); err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	like := &model.Like{UserID: userID, PostID: postID}
	if err := s.likes.Create(ctx, like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			s.log.Debug("duplicate like resolved by unique index",
				zap.Uint("user_id", userID), zap.Uint("post_id", postID))
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// AddComment appends a comment and returns it with the commenter's current
// display name.
func (s *postService) AddComment(ctx context.Context, user *model.User, postID uint, content string) (*CommentView, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.ErrContentRequired
	}

	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		UserID:  user.ID,
		PostID:  postID,
		Content: content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return &CommentView{
		ID:        comment.ID,
		UserID:    comment.UserID,
		UserName:  user.Name,
		PostID:    comment.PostID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}, nil
}

// Comments lists a post's comments oldest first with author names joined
// fresh from the user table.
func (s *postService) Comments(ctx context.Context, postID uint) ([]CommentView, error) {
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	names := map[uint]string{}
	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		name, err := s.userName(ctx, names, c.UserID)
		if err != nil {
			return nil, err
		}
		views = append(views, CommentView{
			ID:        c.ID,
			UserID:    c.UserID,
			UserName:  name,
			PostID:    c.PostID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		})
	}
	return views, nil
}

// userName resolves a display name with a per-call memo, falling back to
// "Unknown" for deleted users.
func (s *postService) userName(ctx context.Context, memo map[uint]string, userID uint) (string, error) {
	if name, ok := memo[userID]; ok {
		return name, nil
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			memo[userID] = unknownUserName
			return unknownUserName, nil
		}
		return "", err
	}
	memo[userID] = user.Name
	return user.Name, nil
}
