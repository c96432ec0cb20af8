package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "homehub/internal/errors"
	"homehub/internal/service"
)

// AdminHandler handles the moderation surface. The admin gate runs before
// every route here.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListUsers godoc
// @Summary List all users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/users/all [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return apperrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// DeleteUser godoc
// @Summary Delete a user and everything they own
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} errors.MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/users/delete/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return apperrors.Respond(c, apperrors.ErrUserNotFound)
	}

	if err := h.adminService.DeleteUser(c.Request().Context(), id); err != nil {
		return apperrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: "User deleted successfully"})
}

// ListProperties godoc
// @Summary List all properties regardless of status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.AdminPropertyView
// @Router /admin/properties/all [get]
func (h *AdminHandler) ListProperties(c echo.Context) error {
	properties, err := h.adminService.ListProperties(c.Request().Context())
	if err != nil {
		return apperrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, properties)
}

// ApproveProperty godoc
// @Summary Approve a property listing
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} errors.MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/properties/approve/{id} [put]
func (h *AdminHandler) ApproveProperty(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return apperrors.Respond(c, apperrors.ErrPropertyNotFound)
	}

	if err := h.adminService.ApproveProperty(c.Request().Context(), id); err != nil {
		return apperrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: "Property approved"})
}

// DeclineProperty godoc
// @Summary Decline a property listing
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} errors.MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/properties/decline/{id} [put]
func (h *AdminHandler) DeclineProperty(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return apperrors.Respond(c, apperrors.ErrPropertyNotFound)
	}

	if err := h.adminService.DeclineProperty(c.Request().Context(), id); err != nil {
		return apperrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: "Property declined"})
}

// DeleteProperty godoc
// @Summary Delete a property listing
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} errors.MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/properties/delete/{id} [delete]
func (h *AdminHandler) DeleteProperty(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return apperrors.Respond(c, apperrors.ErrPropertyNotFound)
	}

	if err := h.adminService.DeleteProperty(c.Request().Context(), id); err != nil {
		return apperrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: "Property deleted"})
}

// ListPosts godoc
// @Summary List all posts with owner names
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.AdminPostView
// @Router /admin/posts/all [get]
func (h *AdminHandler) ListPosts(c echo.Context) error {
	posts, err := h.adminService.ListPosts(c.Request().Context())
	if err != nil {
		return apperrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, posts)
}

// DeletePost godoc
// @Summary Delete any post
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} errors.MessageResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/posts/delete/{id} [delete]
func (h *AdminHandler) DeletePost(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return apperrors.Respond(c, apperrors.ErrPostNotFound)
	}

	if err := h.adminService.DeletePost(c.Request().Context(), id); err != nil {
		return apperrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: "Post deleted successfully"})
}

// Stats godoc
// @Summary Dashboard counters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardStats
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminService.Stats(c.Request().Context())
	if err != nil {
		return apperrors.Respond(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
