package constants

import "errors"

// Configuration errors.
var (
	ErrNotLoggedIn        = errors.New("not logged in, use 'dome9 login' to store credentials")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrSecretNotDisplayed = errors.New("the API secret is never displayed; set it again with 'dome9 login'")
)

// Validation errors.
var (
	ErrAccountIdentifierRequired = errors.New("either --cloud-account-id or --external-account-number is required")
	ErrRulesFileRequired         = errors.New("--rules-file is required")
	ErrRulesFileNotArray         = errors.New("rules file must contain a JSON array of rules")
)

// Output errors.
var (
	ErrUnsupportedOutputFormat = errors.New("unsupported output format")
)
