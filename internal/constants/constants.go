package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ExtendedHTTPTimeout is used for assessment runs, which the API serves
	// synchronously and can take a while.
	ExtendedHTTPTimeout = 120 * time.Second
)

// HTTP status classification.
const (
	// SuccessStatusMin is the lowest status code treated as success.
	SuccessStatusMin = 200

	// SuccessStatusMax is the highest status code treated as success. The
	// upstream contract stops one short of the full 2xx range.
	SuccessStatusMax = 298
)

// Port bounds.
const (
	// MinPort is the lowest valid port number.
	MinPort = 0

	// MaxPort is the highest valid port number.
	MaxPort = 65535
)

// Display limits.
const (
	// MaxTableCellWidth truncates long values in CLI table output.
	MaxTableCellWidth = 60
)
