package errors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Domain errors. The error text doubles as the wire message, so the wording
// is part of the HTTP contract.
var (
	// ErrMissingFields is returned when a required registration field is absent.
	ErrMissingFields = errors.New("Missing fields")
	// ErrEmailExists is returned when registering an already-registered email.
	ErrEmailExists = errors.New("Email already exists")
	// ErrEmailInUse is returned when a profile update targets another user's email.
	ErrEmailInUse = errors.New("Email already in use")
	// ErrNameEmailRequired is returned when a user update omits name or email.
	ErrNameEmailRequired = errors.New("Name and email are required")
	// ErrInvalidCredentials is returned on login failure; it never reveals
	// whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	// ErrNotAuthorized is returned when an authenticated caller is neither
	// the resource owner nor an admin.
	ErrNotAuthorized = errors.New("Not authorized")
	// ErrAdminRequired is returned when a non-admin calls an admin endpoint.
	ErrAdminRequired = errors.New("Admin access required")
	// ErrContentRequired is returned for blank post or comment content.
	ErrContentRequired = errors.New("Content is required")
	// ErrTitleRequired is returned for a property listing without a title.
	ErrTitleRequired = errors.New("Title is required")
	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = errors.New("User not found")
	// ErrPostNotFound is returned when the referenced post does not exist.
	ErrPostNotFound = errors.New("Post not found")
	// ErrPropertyNotFound is returned when the referenced property does not exist.
	ErrPropertyNotFound = errors.New("Property not found")
	// ErrPostUnauthorized disguises an ownership failure on post delete as a
	// missing post, so non-owners cannot confirm a post exists.
	ErrPostUnauthorized = errors.New("Post not found or unauthorized")
)

// ErrorResponse is the error-keyed JSON body used by most endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the message-keyed JSON body used by the profile endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// StatusFor maps a domain error to its HTTP status code. Unknown errors are
// treated as store failures.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrEmailExists),
		errors.Is(err, ErrEmailInUse),
		errors.Is(err, ErrNameEmailRequired),
		errors.Is(err, ErrContentRequired),
		errors.Is(err, ErrTitleRequired):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotAuthorized), errors.Is(err, ErrAdminRequired):
		return http.StatusForbidden
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrPostNotFound),
		errors.Is(err, ErrPropertyNotFound),
		errors.Is(err, ErrPostUnauthorized):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as an error-keyed JSON body with the mapped status.
// Store failures get a generic message so internals never leak.
func Respond(c echo.Context, err error) error {
	status := StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Server error"
	}
	return c.JSON(status, ErrorResponse{Error: msg})
}

// RespondMessage writes err as a message-keyed JSON body with the mapped
// status, for the endpoints that historically used the "message" key.
func RespondMessage(c echo.Context, err error) error {
	status := StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Server error"
	}
	return c.JSON(status, MessageResponse{Message: msg})
}
