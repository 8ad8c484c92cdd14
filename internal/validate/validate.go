// Package validate holds the pre-flight format checks applied to arguments
// before any request is dispatched. Each check is a pure predicate over a
// single value; the first failure aborts the call, so no partial side effects
// are possible. The shapes mirror the upstream API's validators and must not
// be loosened.
package validate

import (
	"regexp"
	"strconv"

	"github.com/dome9-io/dome9-client/internal/constants"
	"github.com/dome9-io/dome9-client/pkg/dome9"
)

var (
	uuidPattern       = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	lowerAlnumPattern = regexp.MustCompile(`^[0-9a-z]+$`)
	httpURLPattern    = regexp.MustCompile(`^(http)s?://(([a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+([a-zA-Z]{2,6}\.?|[a-zA-Z0-9-]{2,}\.?)|localhost|\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})(:\d+)?(/?|[/?]\S+)$`)
	arnPattern        = regexp.MustCompile(`^arn:aws[^:]*:[^:]*:[^:]*:[^:]*:[^:]*(:[^:]*)?$`)
	ipv4Pattern       = regexp.MustCompile(`^(((\d)|([1-9]\d)|(1\d{2})|(2[0-4]\d)|(25[0-5]))\.){3}((\d)|([1-9]\d)|(1\d{2})|(2[0-4]\d)|(25[0-5]))$`)
	durationPattern   = regexp.MustCompile(`^((0\.)|([1-9]\d*\.))?((\d)|(1\d)|(2[0-4])):((\d)|([1-5]\d)):((\d)|([1-5]\d))$`)
	emailPattern      = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
	twelveDigits      = regexp.MustCompile(`^\d{12}$`)
)

// UUID checks for a canonical lowercase 8-4-4-4-12 UUID.
func UUID(field, value string) error {
	if !uuidPattern.MatchString(value) {
		return &dome9.InvalidFormatError{Field: field, Value: value}
	}

	return nil
}

// OptionalUUID is UUID, skipped when value is nil.
func OptionalUUID(field string, value *string) error {
	if value == nil {
		return nil
	}

	return UUID(field, *value)
}

// LowercaseAlphanumeric checks for one or more of [0-9a-z].
func LowercaseAlphanumeric(field, value string) error {
	if !lowerAlnumPattern.MatchString(value) {
		return &dome9.InvalidFormatError{Field: field, Value: value}
	}

	return nil
}

// OptionalLowercaseAlphanumeric is LowercaseAlphanumeric, skipped when value
// is nil.
func OptionalLowercaseAlphanumeric(field string, value *string) error {
	if value == nil {
		return nil
	}

	return LowercaseAlphanumeric(field, *value)
}

// HTTPURL checks for an http(s) URL with a domain, localhost, or dotted-quad
// host, optional port, and optional path.
func HTTPURL(field, value string) error {
	if !httpURLPattern.MatchString(value) {
		return &dome9.InvalidFormatError{Field: field, Value: value}
	}

	return nil
}

// ARN checks for an AWS ARN with six or seven colon-separated segments.
func ARN(field, value string) error {
	if !arnPattern.MatchString(value) {
		return &dome9.InvalidFormatError{Field: field, Value: value}
	}

	return nil
}

// OptionalARN is ARN, skipped when value is nil.
func OptionalARN(field string, value *string) error {
	if value == nil {
		return nil
	}

	return ARN(field, *value)
}

// IPv4 checks for a dotted-quad address with octets in [0, 255].
func IPv4(field, value string) error {
	if !ipv4Pattern.MatchString(value) {
		return &dome9.InvalidFormatError{Field: field, Value: value}
	}

	return nil
}

// Duration checks for a lease duration in [D.]H:M:S form with H in [0, 24]
// and M/S in [0, 59].
func Duration(field, value string) error {
	if !durationPattern.MatchString(value) {
		return &dome9.InvalidFormatError{Field: field, Value: value}
	}

	return nil
}

// OptionalDuration is Duration, skipped when value is nil.
func OptionalDuration(field string, value *string) error {
	if value == nil {
		return nil
	}

	return Duration(field, *value)
}

// Email checks for local-part @ domain with at least one dot.
func Email(field, value string) error {
	if !emailPattern.MatchString(value) {
		return &dome9.InvalidFormatError{Field: field, Value: value}
	}

	return nil
}

// OptionalEmail is Email, skipped when value is nil.
func OptionalEmail(field string, value *string) error {
	if value == nil {
		return nil
	}

	return Email(field, *value)
}

// UUIDOr12Digits accepts either a canonical lowercase UUID or exactly twelve
// decimal digits (an AWS external account number).
func UUIDOr12Digits(field, value string) error {
	if !twelveDigits.MatchString(value) && !uuidPattern.MatchString(value) {
		return &dome9.InvalidFormatError{Field: field, Value: value}
	}

	return nil
}

// NotNegative checks for an integer >= 0.
func NotNegative(field string, value int) error {
	if value < 0 {
		return &dome9.InvalidFormatError{Field: field, Value: strconv.Itoa(value)}
	}

	return nil
}

// OptionalNotNegative is NotNegative, skipped when value is nil.
func OptionalNotNegative(field string, value *int) error {
	if value == nil {
		return nil
	}

	return NotNegative(field, *value)
}

// NotEmpty checks for a string of length > 0.
func NotEmpty(field, value string) error {
	if value == "" {
		return &dome9.InvalidFormatError{Field: field, Value: value}
	}

	return nil
}

// Port checks for an integer in [0, 65535].
func Port(field string, value int) error {
	if value < constants.MinPort || value > constants.MaxPort {
		return &dome9.InvalidFormatError{Field: field, Value: strconv.Itoa(value)}
	}

	return nil
}

// OptionalPort is Port, skipped when value is nil.
func OptionalPort(field string, value *int) error {
	if value == nil {
		return nil
	}

	return Port(field, *value)
}
