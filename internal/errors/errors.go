package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrProjectNotFound is returned when a project id does not exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrUserNotFound is returned when no mirrored user row exists for an identity.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when the provider rejects a login.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidToken is returned when the provider rejects a bearer token.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrNotProjectOwner is returned when a caller mutates a project they do not own.
	ErrNotProjectOwner = errors.New("project belongs to another user")
)

// ProviderError carries an identity-provider failure message through to
// the client. Provider text is passed on verbatim; database errors
// never are.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors
// collapse to a generic 500 so internal detail stays server-side.
func MapErrorToHTTP(err error) *HTTPError {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return NewHTTPError(http.StatusBadRequest, pe.Message, "PROVIDER_ERROR")
	}

	switch {
	case errors.Is(err, ErrProjectNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROJECT_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrInvalidToken):
		return NewHTTPError(http.StatusForbidden, err.Error(), "INVALID_TOKEN")
	case errors.Is(err, ErrNotProjectOwner):
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_OWNER")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
