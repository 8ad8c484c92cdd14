package dome9

import (
	"context"
	"time"
)

// DefaultBaseURL is the origin used when Config.BaseURL is empty.
const DefaultBaseURL = "https://api.dome9.com/v2/"

// Client provides access to the Dome9 v2 API resource clients.
type Client interface {
	CloudAccounts() CloudAccountsClient
	AzureCloudAccounts() AzureCloudAccountsClient
	Roles() RolesClient
	Users() UsersClient
	AccessLeases() AccessLeasesClient
	SecurityGroups() SecurityGroupsClient
	Compliance() ComplianceClient
	OrganizationalUnits() OrganizationalUnitsClient
	CloudTrail() CloudTrailClient
}

// CloudAccountsClient manages AWS cloud accounts registered with Dome9.
type CloudAccountsClient interface {
	// List returns all AWS cloud accounts.
	List(ctx context.Context) ([]CloudAccount, error)
	// Get fetches one account by Dome9 ID (UUID) or AWS external account
	// number (12 digits).
	Get(ctx context.Context, cloudAccountID string) (*CloudAccount, error)
	// Regions returns the set of region identifiers in use by the account.
	Regions(ctx context.Context, cloudAccountID string) ([]string, error)
	// OnboardAWS registers a new AWS account using a cross-account role.
	OnboardAWS(ctx context.Context, request *OnboardAWSRequest) error
	// Update edits an existing AWS account.
	Update(ctx context.Context, cloudAccountID string, request *UpdateCloudAccountRequest) error
	// UpdateCredentials replaces the cross-account role credentials.
	UpdateCredentials(ctx context.Context, request *UpdateAWSCredentialsRequest) error
	// UpdateOrganizationalUnit attaches the account to an organizational
	// unit; a nil ID attaches it to the root unit.
	UpdateOrganizationalUnit(ctx context.Context, cloudAccountID string, organizationalUnitID *string) (*CloudAccount, error)
	// SyncNow triggers an immediate fetch of the account's cloud data.
	SyncNow(ctx context.Context, cloudAccountID string) (*SyncNowResult, error)
	// FetchStatus reports the data fetcher status for the account.
	FetchStatus(ctx context.Context, cloudAccountID string) ([]EntityFetchStatus, error)
}

// AzureCloudAccountsClient manages Azure cloud accounts.
type AzureCloudAccountsClient interface {
	Onboard(ctx context.Context, request *OnboardAzureRequest) error
	UpdateOrganizationalUnit(ctx context.Context, cloudAccountID string, organizationalUnitID *string) (*CloudAccount, error)
}

// RolesClient manages Dome9 roles.
type RolesClient interface {
	List(ctx context.Context) ([]Role, error)
	Get(ctx context.Context, roleID int) (*Role, error)
	Update(ctx context.Context, roleID int, request *UpdateRoleRequest) error
}

// UsersClient lists Dome9 users.
type UsersClient interface {
	List(ctx context.Context) ([]User, error)
}

// AccessLeasesClient acquires temporary network access leases.
type AccessLeasesClient interface {
	AcquireAWS(ctx context.Context, request *AcquireAWSLeaseRequest) error
}

// SecurityGroupsClient manages AWS security groups tracked by Dome9.
type SecurityGroupsClient interface {
	List(ctx context.Context) ([]SecurityGroup, error)
	// ListForRegion returns the security groups of one account in one region.
	ListForRegion(ctx context.Context, cloudAccountID string, region Region) ([]SecurityGroup, error)
	SetProtectionMode(ctx context.Context, securityGroupID string, mode ProtectionMode) error
}

// ComplianceClient manages compliance bundles and assessments.
type ComplianceClient interface {
	ListBundles(ctx context.Context) ([]Bundle, error)
	UpdateBundle(ctx context.Context, request *UpdateBundleRequest) (*Bundle, error)
	RunAssessment(ctx context.Context, request *RunAssessmentRequest) (*AssessmentResult, error)
}

// OrganizationalUnitsClient reads the organizational unit hierarchy.
type OrganizationalUnitsClient interface {
	ListFlat(ctx context.Context) ([]OrganizationalUnit, error)
}

// CloudTrailClient reads CloudTrail events collected by Dome9.
type CloudTrailClient interface {
	List(ctx context.Context) ([]CloudTrailEvent, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a dome9.Client.
//
// APIKey, APISecret, and BaseURL are validated before the client becomes
// usable: the key must be a canonical lowercase UUID, the secret lowercase
// alphanumeric, and the base URL an http(s) URL. The config is read-only
// after construction, so a built client is safe for concurrent use.
type Config struct {
	// APIKey is the Dome9 API key ID (a UUID).
	APIKey string
	// APISecret is the Dome9 API secret (lowercase alphanumeric).
	APISecret string
	// BaseURL is the API origin. Defaults to DefaultBaseURL.
	BaseURL string

	// HTTPTimeout bounds each HTTP exchange. Zero means the default.
	HTTPTimeout time.Duration
	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}

// NewClient creates a new Dome9 API client
// Deprecated: Use github.com/dome9-io/dome9-client/pkg/dome9client.New instead.
func NewClient(config *Config) (Client, error) {
	return nil, ErrDeprecatedClientConstructor
}
