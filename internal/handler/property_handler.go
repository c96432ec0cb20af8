package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"homehub/internal/auth"
	apperrors "homehub/internal/errors"
	"homehub/internal/service"
	"homehub/internal/storage"
)

// PropertyHandler handles the user-facing listing endpoints.
type PropertyHandler struct {
	propertyService service.PropertyService
	uploads         *storage.LocalStorage
}

// NewPropertyHandler creates a new property handler.
func NewPropertyHandler(propertyService service.PropertyService, uploads *storage.LocalStorage) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService, uploads: uploads}
}

// Add godoc
// @Summary Add a property listing
// @Tags properties
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param price formData string false "Price"
// @Param listing_type formData string false "sale or rent"
// @Param image formData file false "Image file"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /users/properties/add [post]
func (h *PropertyHandler) Add(c echo.Context) error {
	current := auth.CurrentUser(c)

	price := decimal.Zero
	if raw := c.FormValue("price"); raw != "" {
		if parsed, err := decimal.NewFromString(raw); err == nil {
			price = parsed
		}
	}

	imageURL := ""
	if file, err := c.FormFile("image"); err == nil {
		url, err := h.uploads.Save(file, "properties")
		if err != nil {
			if errors.Is(err, storage.ErrInvalidFile) {
				return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "Invalid file"})
			}
			return apperrors.Respond(c, err)
		}
		imageURL = url
	}

	property, err := h.propertyService.Add(c.Request().Context(), current.ID, service.AddPropertyInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Price:       price,
		ListingType: c.FormValue("listing_type"),
		ImageURL:    imageURL,
	})
	if err != nil {
		return apperrors.Respond(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Property added successfully",
		"property": property,
	})
}

// ListApproved godoc
// @Summary List approved properties
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /users/properties/all [get]
func (h *PropertyHandler) ListApproved(c echo.Context) error {
	properties, err := h.propertyService.ListApproved(c.Request().Context())
	if err != nil {
		return apperrors.Respond(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"properties": properties})
}

// MyProperties godoc
// @Summary List own properties regardless of status
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /users/properties/my-properties [get]
func (h *PropertyHandler) MyProperties(c echo.Context) error {
	current := auth.CurrentUser(c)

	properties, err := h.propertyService.MyProperties(c.Request().Context(), current.ID)
	if err != nil {
		return apperrors.Respond(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"properties": properties})
}
