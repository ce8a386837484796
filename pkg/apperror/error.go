package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Error is an API error carrying its HTTP status and a stable code.
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error
	Details    map[string]any
}

func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Internal
}

// Body is the JSON envelope sent to clients.
func (e *Error) Body() map[string]any {
	errBody := map[string]any{
		"code":    e.Code,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		errBody["details"] = e.Details
	}
	return map[string]any{"error": errBody}
}

// ToEchoError converts the error to an echo.HTTPError.
func (e *Error) ToEchoError() *echo.HTTPError {
	return echo.NewHTTPError(e.HTTPStatus, e.Body())
}

// WithInternal returns a copy with err attached as the cause.
func (e *Error) WithInternal(err error) *Error {
	cp := *e
	cp.Internal = err
	return &cp
}

// WithMessage returns a copy with a custom message.
func (e *Error) WithMessage(message string) *Error {
	cp := *e
	cp.Message = message
	return &cp
}

// WithDetails returns a copy with details attached.
func (e *Error) WithDetails(details map[string]any) *Error {
	cp := *e
	cp.Details = details
	return &cp
}

func New(status int, code, message string) *Error {
	return &Error{
		HTTPStatus: status,
		Code:       code,
		Message:    message,
	}
}

var (
	ErrNotFound     = New(http.StatusNotFound, "not_found", "Resource not found")
	ErrPostNotFound = New(http.StatusNotFound, "post_not_found", "Blog post not found")
	ErrToolNotFound = New(http.StatusNotFound, "tool_not_found", "Tool not found")

	ErrBadRequest = New(http.StatusBadRequest, "bad_request", "Invalid request")
	ErrValidation = New(http.StatusUnprocessableEntity, "validation_error", "Validation failed")

	ErrRateLimited = New(http.StatusTooManyRequests, "rate_limited", "Too many requests")

	ErrInternal    = New(http.StatusInternalServerError, "internal_error", "An internal error occurred")
	ErrUnavailable = New(http.StatusServiceUnavailable, "unavailable", "Service unavailable")
)

// ToHTTPError converts any error to a status and JSON body. Non-application
// errors become a generic internal error.
func ToHTTPError(err error) (int, map[string]any) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus, appErr.Body()
	}
	return http.StatusInternalServerError, ErrInternal.Body()
}

func NewBadRequest(message string) *Error {
	return ErrBadRequest.WithMessage(message)
}

func NewValidation(message string) *Error {
	return ErrValidation.WithMessage(message)
}

// NewNotFound creates a not found error for a resource type and ID.
func NewNotFound(resourceType, id string) *Error {
	return ErrNotFound.WithMessage(fmt.Sprintf("%s '%s' not found", resourceType, id))
}

func NewInternal(message string, err error) *Error {
	return ErrInternal.WithMessage(message).WithInternal(err)
}
