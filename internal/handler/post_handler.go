package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"homehub/internal/auth"
	apperrors "homehub/internal/errors"
	"homehub/internal/service"
)

// PostHandler handles community post endpoints.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// CreatePostRequest represents a new community post.
type CreatePostRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

// CommentRequest represents a new comment.
type CommentRequest struct {
	Content string `json:"content"`
}

// Create godoc
// @Summary Create a community post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePostRequest true "Post content"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /users/posts/create [post]
func (h *PostHandler) Create(c echo.Context) error {
	current := auth.CurrentUser(c)

	var req CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Respond(c, apperrors.ErrContentRequired)
	}

	post, err := h.postService.Create(c.Request().Context(), current.ID, req.Content, req.ImageURL)
	if err != nil {
		return apperrors.Respond(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Post created successfully",
		"post":    post,
	})
}

// Delete godoc
// @Summary Delete own post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} errors.MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/posts/delete/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	current := auth.CurrentUser(c)
	id, err := parseID(c)
	if err != nil {
		return apperrors.Respond(c, apperrors.ErrPostUnauthorized)
	}

	if err := h.postService.Delete(c.Request().Context(), current, id); err != nil {
		return apperrors.Respond(c, err)
	}

	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: fmt.Sprintf("Post %d deleted", id)})
}

// MyPosts godoc
// @Summary List own posts
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /users/posts/my-posts [get]
func (h *PostHandler) MyPosts(c echo.Context) error {
	current := auth.CurrentUser(c)

	posts, err := h.postService.MyPosts(c.Request().Context(), current.ID)
	if err != nil {
		return apperrors.Respond(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"posts": posts})
}

// Feed godoc
// @Summary List all posts with names, counts and like state
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /users/posts/all [get]
func (h *PostHandler) Feed(c echo.Context) error {
	current := auth.CurrentUser(c)

	posts, err := h.postService.Feed(c.Request().Context(), current.ID)
	if err != nil {
		return apperrors.Respond(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"posts": posts})
}

// ToggleLike godoc
// @Summary Toggle a like on a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} errors.MessageResponse "unliked"
// @Success 201 {object} errors.MessageResponse "liked"
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/posts/{id}/like [post]
func (h *PostHandler) ToggleLike(c echo.Context) error {
	current := auth.CurrentUser(c)
	id, err := parseID(c)
	if err != nil {
		return apperrors.Respond(c, apperrors.ErrPostNotFound)
	}

	liked, err := h.postService.ToggleLike(c.Request().Context(), current.ID, id)
	if err != nil {
		return apperrors.Respond(c, err)
	}

	if liked {
		return c.JSON(http.StatusCreated, apperrors.MessageResponse{Message: "Post liked"})
	}
	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: "Post unliked"})
}

// AddComment godoc
// @Summary Comment on a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body CommentRequest true "Comment content"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/posts/{id}/comment [post]
func (h *PostHandler) AddComment(c echo.Context) error {
	current := auth.CurrentUser(c)
	id, err := parseID(c)
	if err != nil {
		return apperrors.Respond(c, apperrors.ErrPostNotFound)
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Respond(c, apperrors.ErrContentRequired)
	}

	comment, err := h.postService.AddComment(c.Request().Context(), current, id, req.Content)
	if err != nil {
		return apperrors.Respond(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Comment added",
		"comment": comment,
	})
}

// Comments godoc
// @Summary List comments for a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} map[string]interface{}
// @Router /users/posts/{id}/comments [get]
func (h *PostHandler) Comments(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return apperrors.Respond(c, apperrors.ErrPostNotFound)
	}

	comments, err := h.postService.Comments(c.Request().Context(), id)
	if err != nil {
		return apperrors.Respond(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"comments": comments})
}
