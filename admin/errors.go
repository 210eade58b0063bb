package admin

import (
	"errors"
	"fmt"
)

// Errors raised client-side before any network call.
var (
	// ErrMissingCloudName indicates no cloud name was configured or supplied.
	ErrMissingCloudName = errors.New("must supply cloud_name")
	// ErrMissingAPIKey indicates no API key was configured or supplied.
	ErrMissingAPIKey = errors.New("must supply api_key")
	// ErrMissingAPISecret indicates no API secret was configured or supplied.
	ErrMissingAPISecret = errors.New("must supply api_secret")
	// ErrNoUpdates indicates UpdateTransformation was called with nothing to change.
	ErrNoUpdates = errors.New("no transformation updates given")
)

// ErrorKind classifies a service error by the HTTP status it arrived with.
type ErrorKind int

const (
	// KindGeneric is used for statuses the service does not document.
	KindGeneric ErrorKind = iota
	// KindBadRequest maps status 400.
	KindBadRequest
	// KindAuthorizationRequired maps status 401.
	KindAuthorizationRequired
	// KindNotAllowed maps status 403.
	KindNotAllowed
	// KindNotFound maps status 404.
	KindNotFound
	// KindAlreadyExists maps status 409.
	KindAlreadyExists
	// KindRateLimited maps status 420.
	KindRateLimited
	// KindGeneralError maps status 500.
	KindGeneralError
)

// kindByStatus maps the service's documented status codes to error kinds.
var kindByStatus = map[int]ErrorKind{
	400: KindBadRequest,
	401: KindAuthorizationRequired,
	403: KindNotAllowed,
	404: KindNotFound,
	409: KindAlreadyExists,
	420: KindRateLimited,
	500: KindGeneralError,
}

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindBadRequest:
		return "bad request"
	case KindAuthorizationRequired:
		return "authorization required"
	case KindNotAllowed:
		return "not allowed"
	case KindNotFound:
		return "not found"
	case KindAlreadyExists:
		return "already exists"
	case KindRateLimited:
		return "rate limited"
	case KindGeneralError:
		return "general error"
	default:
		return "generic"
	}
}

// APIError represents an error response from the admin API.
type APIError struct {
	StatusCode int
	Kind       ErrorKind
	Message    string
}

// newAPIError builds an APIError for the given status, classifying it
// through the status table.
func newAPIError(statusCode int, message string) *APIError {
	kind, ok := kindByStatus[statusCode]
	if !ok {
		kind = KindGeneric
	}
	return &APIError{
		StatusCode: statusCode,
		Kind:       kind,
		Message:    message,
	}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("Error %d - %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a missing resource.
func (e *APIError) IsNotFound() bool {
	return e.Kind == KindNotFound
}

// IsRateLimited checks if the error indicates the account quota was exceeded.
func (e *APIError) IsRateLimited() bool {
	return e.Kind == KindRateLimited
}

// IsAuthorization checks if the error indicates an authentication or
// permission failure.
func (e *APIError) IsAuthorization() bool {
	return e.Kind == KindAuthorizationRequired || e.Kind == KindNotAllowed
}

// ParseError represents a response body that could not be decoded as JSON.
// It carries the HTTP status and the raw body verbatim.
type ParseError struct {
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing server response (%d) - %s. Got - %v", e.StatusCode, e.Body, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
