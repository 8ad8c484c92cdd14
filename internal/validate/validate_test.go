package validate_test

import (
	"testing"

	"github.com/dome9-io/dome9-client/internal/validate"
	"github.com/dome9-io/dome9-client/pkg/dome9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID(t *testing.T) {
	t.Parallel()

	t.Run("accepts generated UUIDs", func(t *testing.T) {
		t.Parallel()

		for i := 0; i < 100; i++ {
			value := uuid.New().String()
			assert.NoError(t, validate.UUID("apiKey", value), value)
		}
	})

	t.Run("rejects non-UUID shapes", func(t *testing.T) {
		t.Parallel()

		invalid := []string{
			"",
			"not-a-uuid",
			"AC9724A1-7D13-4E49-A07B-DDE92D1758A3",            // uppercase
			"ac9724a1-7d13-4e49-a07b-dde92d1758a",             // short last group
			"ac9724a17d134e49a07bdde92d1758a3",                // no hyphens
			"ac9724a1-7d13-4e49-a07b-dde92d1758a3 ",           // trailing space
			"zc9724a1-7d13-4e49-a07b-dde92d1758a3",            // non-hex
			"{ac9724a1-7d13-4e49-a07b-dde92d1758a3}",          // braces
			"ac9724a1-7d13-4e49-a07b-dde92d1758a3-dead",       // extra group
			"urn:uuid:ac9724a1-7d13-4e49-a07b-dde92d1758a3",   // URN prefix
		}
		for _, value := range invalid {
			err := validate.UUID("apiKey", value)
			require.Error(t, err, value)

			invalidErr := &dome9.InvalidFormatError{}
			require.ErrorAs(t, err, &invalidErr)
			assert.Equal(t, "apiKey", invalidErr.Field)
		}
	})
}

func TestLowercaseAlphanumeric(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validate.LowercaseAlphanumeric("apiSecret", "abc123"))
	assert.NoError(t, validate.LowercaseAlphanumeric("apiSecret", "0"))
	assert.Error(t, validate.LowercaseAlphanumeric("apiSecret", ""))
	assert.Error(t, validate.LowercaseAlphanumeric("apiSecret", "Abc123"))
	assert.Error(t, validate.LowercaseAlphanumeric("apiSecret", "abc-123"))
	assert.Error(t, validate.LowercaseAlphanumeric("apiSecret", "abc 123"))
}

func TestHTTPURL(t *testing.T) {
	t.Parallel()

	valid := []string{
		"https://api.dome9.com/v2/",
		"http://api.dome9.com",
		"https://localhost",
		"http://localhost:8080/v2",
		"https://10.0.0.1:443/v2/",
		"https://api.example.co.uk/v2?x=1",
	}
	for _, value := range valid {
		assert.NoError(t, validate.HTTPURL("baseURL", value), value)
	}

	invalid := []string{
		"",
		"api.dome9.com",
		"ftp://api.dome9.com",
		"https://",
		"https://api.dome9.com/v2/ extra",
	}
	for _, value := range invalid {
		assert.Error(t, validate.HTTPURL("baseURL", value), value)
	}
}

func TestARN(t *testing.T) {
	t.Parallel()

	valid := []string{
		"arn:aws:iam::123456789012:role/Dome9-Connect",
		"arn:aws-cn:iam::123456789012:role/x",
		"arn:aws:s3:::my-bucket",
		"arn:aws:sns:us-east-1:123456789012:topic:extra",
	}
	for _, value := range valid {
		assert.NoError(t, validate.ARN("arn", value), value)
	}

	invalid := []string{
		"",
		"arn:gcp:iam::123456789012:role/x",
		"arn:aws:iam:123456789012",
		"role/Dome9-Connect",
	}
	for _, value := range invalid {
		assert.Error(t, validate.ARN("arn", value), value)
	}
}

func TestIPv4(t *testing.T) {
	t.Parallel()

	valid := []string{"0.0.0.0", "10.0.0.1", "192.168.1.254", "255.255.255.255", "99.249.199.9"}
	for _, value := range valid {
		assert.NoError(t, validate.IPv4("ip", value), value)
	}

	invalid := []string{"", "256.0.0.1", "1.2.3", "1.2.3.4.5", "01.2.3.4", "a.b.c.d", "1.2.3.-4"}
	for _, value := range invalid {
		assert.Error(t, validate.IPv4("ip", value), value)
	}
}

func TestDuration(t *testing.T) {
	t.Parallel()

	valid := []string{"1:0:0", "0:30:0", "24:59:59", "2.23:59:59", "0.1:2:3", "12:5:5"}
	for _, value := range valid {
		assert.NoError(t, validate.Duration("duration", value), value)
	}

	invalid := []string{"", "25:0:0", "1:60:0", "1:0:60", "1:0", "1:0:0:0", "-1:0:0", "01.1:0:0"}
	for _, value := range invalid {
		assert.Error(t, validate.Duration("duration", value), value)
	}
}

func TestEmail(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validate.Email("user", "ops@example.com"))
	assert.NoError(t, validate.Email("user", "first.last+tag@sub.example.co"))
	assert.Error(t, validate.Email("user", ""))
	assert.Error(t, validate.Email("user", "ops@example"))
	assert.Error(t, validate.Email("user", "example.com"))
	assert.Error(t, validate.Email("user", "a b@example.com"))
}

func TestUUIDOr12Digits(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validate.UUIDOr12Digits("cloudAccountId", uuid.New().String()))
	assert.NoError(t, validate.UUIDOr12Digits("cloudAccountId", "123456789012"))
	assert.Error(t, validate.UUIDOr12Digits("cloudAccountId", "12345678901"))
	assert.Error(t, validate.UUIDOr12Digits("cloudAccountId", "1234567890123"))
	assert.Error(t, validate.UUIDOr12Digits("cloudAccountId", "not-an-id"))
	assert.Error(t, validate.UUIDOr12Digits("cloudAccountId", ""))
}

func TestNotNegative(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validate.NotNegative("roleId", 0))
	assert.NoError(t, validate.NotNegative("roleId", 42))
	assert.Error(t, validate.NotNegative("roleId", -1))
}

func TestNotEmpty(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validate.NotEmpty("roleName", "admins"))
	assert.Error(t, validate.NotEmpty("roleName", ""))
}

func TestPort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value int
		valid bool
	}{
		{name: "lower bound", value: 0, valid: true},
		{name: "common port", value: 443, valid: true},
		{name: "upper bound", value: 65535, valid: true},
		{name: "below range", value: -1, valid: false},
		{name: "above range", value: 65536, valid: false},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := validate.Port("portFrom", testCase.value)
			if testCase.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestOptionalVariantsSkipNil(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validate.OptionalUUID("organizationalUnitId", nil))
	assert.NoError(t, validate.OptionalLowercaseAlphanumeric("secret", nil))
	assert.NoError(t, validate.OptionalARN("arn", nil))
	assert.NoError(t, validate.OptionalDuration("duration", nil))
	assert.NoError(t, validate.OptionalEmail("user", nil))
	assert.NoError(t, validate.OptionalNotNegative("accountId", nil))
	assert.NoError(t, validate.OptionalPort("portTo", nil))

	bad := "nope"
	assert.Error(t, validate.OptionalUUID("organizationalUnitId", &bad))
	assert.Error(t, validate.OptionalDuration("duration", &bad))

	port := 70000
	assert.Error(t, validate.OptionalPort("portTo", &port))
}
