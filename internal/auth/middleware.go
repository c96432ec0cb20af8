package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "homehub/internal/errors"
	"homehub/internal/model"
	"homehub/internal/repository"
)

// Context keys used by the gate chain.
const (
	// ClaimsContextKey is where the token gate stores verified claims.
	ClaimsContextKey = "token_claims"
	// UserContextKey is where ResolveUser stores the resolved identity.
	UserContextKey = "current_user"
)

// TokenErrorHandler translates token gate failures into the contractual 401
// bodies: a request without a bearer token gets "Token missing", everything
// else gets "Invalid or expired token".
func TokenErrorHandler(c echo.Context, _ error) error {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if header == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: "Token missing"})
	}
	return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: "Invalid or expired token"})
}

// ResolveUser loads the User record behind verified claims and stores it in
// the request context. A token whose user no longer exists is rejected like
// any other invalid token, never forwarded as a nil identity.
func ResolveUser(users repository.UserRepository, log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ClaimsContextKey).(*Claims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: "Invalid or expired token"})
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					log.Warn("token resolved to deleted user",
						zap.Uint("user_id", claims.UserID),
						zap.String("path", c.Request().URL.Path))
					return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Error: "Invalid or expired token"})
				}
				return apperrors.Respond(c, err)
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// AdminRequired rejects any resolved identity that is not an admin. It must
// run after ResolveUser; both gates are pure guards and never mutate state.
func AdminRequired() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil || !user.IsAdmin {
				return c.JSON(http.StatusForbidden, apperrors.ErrorResponse{Error: "Admin access required"})
			}
			return next(c)
		}
	}
}

// CurrentUser returns the identity resolved by the gate chain, or nil outside
// of it.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(UserContextKey).(*model.User)
	return user
}
