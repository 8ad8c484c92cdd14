package dome9

import (
	"errors"
	"fmt"
	"net/http"
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired              = errors.New("config is required")
	ErrDeprecatedClientConstructor = errors.New("use github.com/dome9-io/dome9-client/pkg/dome9client.New to create a client")
)

// APIError represents a failed exchange with the Dome9 API: a transport
// failure, a non-success status code, or an undecodable success body.
type APIError struct {
	// Message is the HTTP reason phrase, the transport error, or the decode
	// diagnostic, depending on what failed.
	Message string `json:"message"           yaml:"message"`
	// Code is the HTTP status code, when a response was received.
	Code int `json:"code,omitempty"    yaml:"code,omitempty"`
	// Content is the raw response body, when a response was received.
	Content []byte `json:"content,omitempty" yaml:"content,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("%s (code: %d)", e.Message, e.Code)
	}

	return e.Message
}

// InvalidFormatError is returned when an argument fails its format check
// before any request is dispatched.
type InvalidFormatError struct {
	Field string
	Value string
}

// Error implements the error interface.
func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format for %s: %q", e.Field, e.Value)
}

// IsNotFound checks if the error is a 404 from the API.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is a 401 from the API.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusUnauthorized
	}

	return false
}

// IsForbidden checks if the error is a 403 from the API.
func IsForbidden(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusForbidden
	}

	return false
}

// IsInvalidFormat checks if the error is a pre-flight format failure.
func IsInvalidFormat(err error) bool {
	invalidErr := &InvalidFormatError{}

	return errors.As(err, &invalidErr)
}
