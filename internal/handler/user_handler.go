package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"homehub/internal/auth"
	apperrors "homehub/internal/errors"
	"homehub/internal/service"
	"homehub/internal/storage"
)

// UserHandler handles profile endpoints and the generic user endpoints.
type UserHandler struct {
	userService service.UserService
	uploads     *storage.LocalStorage
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, uploads *storage.LocalStorage) *UserHandler {
	return &UserHandler{userService: userService, uploads: uploads}
}

// UpdateProfileRequest represents a profile update.
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GetProfile godoc
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/profile/ [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	current := auth.CurrentUser(c)

	user, err := h.userService.Profile(c.Request().Context(), current.ID)
	if err != nil {
		return apperrors.RespondMessage(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":                user.ID,
		"name":              user.Name,
		"email":             user.Email,
		"is_admin":          user.IsAdmin,
		"profile_image_url": user.ProfileImageURL,
	})
}

// UpdateProfile godoc
// @Summary Update own profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} errors.MessageResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /users/profile/ [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	current := auth.CurrentUser(c)

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.RespondMessage(c, apperrors.ErrMissingFields)
	}

	if err := h.userService.UpdateProfile(c.Request().Context(), current.ID, req.Name, req.Email); err != nil {
		return apperrors.RespondMessage(c, err)
	}

	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: "Profile updated successfully"})
}

// UploadProfileImage godoc
// @Summary Upload a profile image
// @Tags profile
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Image file"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.MessageResponse
// @Router /users/profile/upload-image [post]
func (h *UserHandler) UploadProfileImage(c echo.Context) error {
	current := auth.CurrentUser(c)

	file, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.MessageResponse{Message: "No image uploaded"})
	}

	imageURL, err := h.uploads.Save(file, "profile_images")
	if err != nil {
		if errors.Is(err, storage.ErrInvalidFile) {
			return c.JSON(http.StatusBadRequest, apperrors.MessageResponse{Message: "Invalid file"})
		}
		return apperrors.RespondMessage(c, err)
	}

	if err := h.userService.SetProfileImage(c.Request().Context(), current.ID, imageURL); err != nil {
		return apperrors.RespondMessage(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"image_url": imageURL})
}

// GetUser godoc
// @Summary Get user by id (owner or admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	current := auth.CurrentUser(c)
	id, err := parseID(c)
	if err != nil {
		return apperrors.Respond(c, apperrors.ErrUserNotFound)
	}

	user, err := h.userService.Get(c.Request().Context(), current, id)
	if err != nil {
		return apperrors.Respond(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":       user.ID,
		"name":     user.Name,
		"email":    user.Email,
		"is_admin": user.IsAdmin,
	})
}

// UpdateUser godoc
// @Summary Update user by id (owner or admin)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body UpdateProfileRequest true "User fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	current := auth.CurrentUser(c)
	id, err := parseID(c)
	if err != nil {
		return apperrors.Respond(c, apperrors.ErrUserNotFound)
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Respond(c, apperrors.ErrNameEmailRequired)
	}

	user, err := h.userService.Update(c.Request().Context(), current, id, req.Name, req.Email)
	if err != nil {
		return apperrors.Respond(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Profile updated successfully",
		"user": echo.Map{
			"id":       user.ID,
			"name":     user.Name,
			"email":    user.Email,
			"is_admin": user.IsAdmin,
		},
	})
}

// DeleteUser godoc
// @Summary Delete user by id (owner or admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} errors.MessageResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	current := auth.CurrentUser(c)
	id, err := parseID(c)
	if err != nil {
		return apperrors.Respond(c, apperrors.ErrUserNotFound)
	}

	if err := h.userService.Delete(c.Request().Context(), current, id); err != nil {
		return apperrors.Respond(c, err)
	}

	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: "User deleted successfully"})
}

// ListUsers godoc
// @Summary List all users (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/ [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	current := auth.CurrentUser(c)
	if !current.IsAdmin {
		return apperrors.Respond(c, apperrors.ErrAdminRequired)
	}

	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return apperrors.Respond(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"users": users})
}

// parseID reads the :id path parameter.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
