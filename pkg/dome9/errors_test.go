package dome9_test

import (
	"fmt"
	"testing"

	"github.com/dome9-io/dome9-client/pkg/dome9"
	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	t.Run("with status code", func(t *testing.T) {
		err := &dome9.APIError{Message: "Not Found", Code: 404}
		assert.Equal(t, "Not Found (code: 404)", err.Error())
	})

	t.Run("transport failure has no code", func(t *testing.T) {
		err := &dome9.APIError{Message: "https://api.dome9.com/v2/user dial tcp: connection refused"}
		assert.Equal(t, "https://api.dome9.com/v2/user dial tcp: connection refused", err.Error())
	})
}

func TestInvalidFormatError_Error(t *testing.T) {
	err := &dome9.InvalidFormatError{Field: "cloudAccountId", Value: "prod"}
	assert.Equal(t, `invalid format for cloudAccountId: "prod"`, err.Error())
}

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		matches func(error) bool
		want    bool
	}{
		{"404 is not found", &dome9.APIError{Message: "Not Found", Code: 404}, dome9.IsNotFound, true},
		{"wrapped 404 is not found", fmt.Errorf("getting role: %w", &dome9.APIError{Code: 404}), dome9.IsNotFound, true},
		{"500 is not not found", &dome9.APIError{Message: "Internal Server Error", Code: 500}, dome9.IsNotFound, false},
		{"401 is unauthorized", &dome9.APIError{Message: "Unauthorized", Code: 401}, dome9.IsUnauthorized, true},
		{"403 is forbidden", &dome9.APIError{Message: "Forbidden", Code: 403}, dome9.IsForbidden, true},
		{"403 is not unauthorized", &dome9.APIError{Message: "Forbidden", Code: 403}, dome9.IsUnauthorized, false},
		{"format failure", &dome9.InvalidFormatError{Field: "ip", Value: "x"}, dome9.IsInvalidFormat, true},
		{"wrapped format failure", fmt.Errorf("acquiring AWS lease: %w", &dome9.InvalidFormatError{Field: "ip"}), dome9.IsInvalidFormat, true},
		{"api error is not a format failure", &dome9.APIError{Code: 400}, dome9.IsInvalidFormat, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.matches(tt.err))
		})
	}
}
