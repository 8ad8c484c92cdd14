package dome9

import (
	"time"
)

// CloudAccount represents a cloud-provider account registered with Dome9.
type CloudAccount struct {
	ID                     string                  `json:"id"                               yaml:"id"`
	Vendor                 string                  `json:"vendor"                           yaml:"vendor"`
	Name                   string                  `json:"name"                             yaml:"name"`
	ExternalAccountNumber  string                  `json:"externalAccountNumber,omitempty"  yaml:"externalAccountNumber,omitempty"`
	CreationDate           *time.Time              `json:"creationDate,omitempty"           yaml:"creationDate,omitempty"`
	Credentials            CloudAccountCredentials `json:"credentials"                      yaml:"credentials"`
	FullProtection         bool                    `json:"fullProtection"                   yaml:"fullProtection"`
	AllowReadOnly          bool                    `json:"allowReadOnly"                    yaml:"allowReadOnly"`
	OrganizationalUnitID   *string                 `json:"organizationalUnitId"             yaml:"organizationalUnitId"`
	OrganizationalUnitPath string                  `json:"organizationalUnitPath,omitempty" yaml:"organizationalUnitPath,omitempty"`
	OrganizationalUnitName string                  `json:"organizationalUnitName,omitempty" yaml:"organizationalUnitName,omitempty"`
	NetSec                 CloudAccountNetSec      `json:"netSec"                           yaml:"netSec"`
}

// CloudAccountCredentials holds the cross-account role used by Dome9.
type CloudAccountCredentials struct {
	ARN  string `json:"arn"              yaml:"arn"`
	Type string `json:"type"             yaml:"type"`
	// Secret is the role external ID. The API never echoes it back.
	Secret string `json:"secret,omitempty" yaml:"secret,omitempty"`
}

// CloudAccountNetSec describes the network security state of an account.
type CloudAccountNetSec struct {
	Regions []CloudAccountRegion `json:"regions" yaml:"regions"`
}

// CloudAccountRegion is one region in use by an account.
type CloudAccountRegion struct {
	Region           string `json:"region"           yaml:"region"`
	Name             string `json:"name"             yaml:"name"`
	NewGroupBehavior string `json:"newGroupBehavior" yaml:"newGroupBehavior"`
}

// OnboardAWSRequest registers a new AWS account.
type OnboardAWSRequest struct {
	// Name is the account name in Dome9. Optional.
	Name *string `json:"name"           yaml:"name"`
	// ARN is the AWS role to be assumed by the Dome9 system.
	ARN string `json:"-"              yaml:"-"`
	// Secret is the role external ID (lowercase alphanumeric).
	Secret string `json:"-"              yaml:"-"`
	// FullProtection enables tamper protection for the imported security
	// groups.
	FullProtection bool `json:"fullProtection" yaml:"fullProtection"`
	// AllowReadOnly selects the operation mode: true for Manage, false for
	// Readonly.
	AllowReadOnly bool `json:"allowReadOnly"  yaml:"allowReadOnly"`
}

// UpdateCloudAccountRequest edits an existing AWS account. Nil fields keep
// their current values on the wire (the API treats null as "unchanged").
type UpdateCloudAccountRequest struct {
	Name                   *string `json:"name"                   yaml:"name"`
	FullProtection         *bool   `json:"fullProtection"         yaml:"fullProtection"`
	AllowReadOnly          *bool   `json:"allowReadOnly"          yaml:"allowReadOnly"`
	OrganizationalUnitID   *string `json:"organizationalUnitId"   yaml:"organizationalUnitId"`
	OrganizationalUnitPath *string `json:"organizationalUnitPath" yaml:"organizationalUnitPath"`
	OrganizationalUnitName *string `json:"organizationalUnitName" yaml:"organizationalUnitName"`
	LambdaScanner          *bool   `json:"lambdaScanner"          yaml:"lambdaScanner"`
	ARN                    string  `json:"-"                      yaml:"-"`
	Secret                 string  `json:"-"                      yaml:"-"`
}

// UpdateAWSCredentialsRequest replaces the cross-account role credentials.
// At least one of CloudAccountID and ExternalAccountNumber must be set.
type UpdateAWSCredentialsRequest struct {
	CloudAccountID        *string `json:"cloudAccountId"        yaml:"cloudAccountId"`
	ExternalAccountNumber *string `json:"externalAccountNumber" yaml:"externalAccountNumber"`
	ARN                   string  `json:"-"                     yaml:"-"`
	Secret                string  `json:"-"                     yaml:"-"`
}

// OnboardAzureRequest registers a new Azure account.
type OnboardAzureRequest struct {
	Name           *string       `json:"name"           yaml:"name"`
	SubscriptionID string        `json:"subscriptionId" yaml:"subscriptionId"`
	TenantID       string        `json:"tenantId"       yaml:"tenantId"`
	ClientID       string        `json:"-"              yaml:"-"`
	ClientPassword string        `json:"-"              yaml:"-"`
	OperationMode  OperationMode `json:"operationMode"  yaml:"operationMode"`
}

// SyncNowResult is the response to a cloud account sync request.
type SyncNowResult struct {
	DefaultRegionHasFetchPermissions bool     `json:"defaultRegionHasFetchPermissions" yaml:"defaultRegionHasFetchPermissions"`
	WorkFlowID                       string   `json:"workFlowId"                       yaml:"workFlowId"`
	MissingPermissions               []string `json:"missingPermissions,omitempty"     yaml:"missingPermissions,omitempty"`
}

// EntityFetchStatus reports the freshness of one fetched entity type.
type EntityFetchStatus struct {
	CloudAccountID    string     `json:"cloudAccountId"              yaml:"cloudAccountId"`
	EntityType        string     `json:"entityType"                  yaml:"entityType"`
	Region            string     `json:"region,omitempty"            yaml:"region,omitempty"`
	LastSuccessfulRun *time.Time `json:"lastSuccessfulRun,omitempty" yaml:"lastSuccessfulRun,omitempty"`
	LastFetchAttempt  *time.Time `json:"lastFetchAttempt,omitempty"  yaml:"lastFetchAttempt,omitempty"`
}

// Role is a Dome9 role with its permission lists.
type Role struct {
	ID          int             `json:"id"                    yaml:"id"`
	Name        string          `json:"name"                  yaml:"name"`
	Description string          `json:"description,omitempty" yaml:"description,omitempty"`
	Permissions RolePermissions `json:"permissions"           yaml:"permissions"`
}

// RolePermissions holds the SRL lists granted to a role.
type RolePermissions struct {
	Access             []string `json:"access"             yaml:"access"`
	Manage             []string `json:"manage"             yaml:"manage"`
	Create             []string `json:"create"             yaml:"create"`
	View               []string `json:"view"               yaml:"view"`
	CrossAccountAccess []string `json:"crossAccountAccess" yaml:"crossAccountAccess"`
}

// UpdateRoleRequest replaces the name and permissions of a role.
type UpdateRoleRequest struct {
	Name        string          `json:"name"        yaml:"name"`
	Permissions RolePermissions `json:"permissions" yaml:"permissions"`
}

// User is a Dome9 console user.
type User struct {
	ID          int    `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	Email       string `json:"email"       yaml:"email"`
	IsSuspended bool   `json:"isSuspended" yaml:"isSuspended"`
	IsOwner     bool   `json:"isOwner"     yaml:"isOwner"`
	IsSuperUser bool   `json:"isSuperUser" yaml:"isSuperUser"`
	RoleIDs     []int  `json:"roleIds"     yaml:"roleIds"`
}

// AcquireAWSLeaseRequest requests a temporary network access grant on a
// security group. The wire field for Duration is "length".
type AcquireAWSLeaseRequest struct {
	CloudAccountID  string    `json:"cloudAccountId"  yaml:"cloudAccountId"`
	SecurityGroupID int       `json:"securityGroupId" yaml:"securityGroupId"`
	IP              string    `json:"ip"              yaml:"ip"`
	PortFrom        int       `json:"portFrom"        yaml:"portFrom"`
	PortTo          *int      `json:"portTo"          yaml:"portTo"`
	Protocol        *Protocol `json:"protocol"        yaml:"protocol"`
	// Duration of the lease in [D.]H:M:S form.
	Duration  *string `json:"length"          yaml:"length"`
	Region    *Region `json:"region"          yaml:"region"`
	AccountID *int    `json:"accountId"       yaml:"accountId"`
	Name      *string `json:"name"            yaml:"name"`
	// User is the email of the user the lease is created for.
	User *string `json:"user"            yaml:"user"`
}

// SecurityGroup is an AWS security group tracked by Dome9.
type SecurityGroup struct {
	ID             int    `json:"id"                     yaml:"id"`
	Name           string `json:"securityGroupName"      yaml:"securityGroupName"`
	Description    string `json:"description,omitempty"  yaml:"description,omitempty"`
	CloudAccountID string `json:"cloudAccountId"         yaml:"cloudAccountId"`
	RegionID       string `json:"regionId"               yaml:"regionId"`
	VpcID          string `json:"vpcId,omitempty"        yaml:"vpcId,omitempty"`
	ExternalID     string `json:"externalId,omitempty"   yaml:"externalId,omitempty"`
	IsProtected    bool   `json:"isProtected"            yaml:"isProtected"`
}

// Bundle is a named collection of compliance rules.
type Bundle struct {
	ID          int          `json:"id"                    yaml:"id"`
	Name        string       `json:"name"                  yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	CloudVendor string       `json:"cloudVendor,omitempty" yaml:"cloudVendor,omitempty"`
	IsTemplate  bool         `json:"isTemplate"            yaml:"isTemplate"`
	Rules       []BundleRule `json:"rules,omitempty"       yaml:"rules,omitempty"`
}

// BundleRule is one compliance rule inside a bundle.
type BundleRule struct {
	Name          string `json:"name"                    yaml:"name"`
	Severity      string `json:"severity"                yaml:"severity"`
	Logic         string `json:"logic"                   yaml:"logic"`
	Description   string `json:"description,omitempty"   yaml:"description,omitempty"`
	Remediation   string `json:"remediation,omitempty"   yaml:"remediation,omitempty"`
	ComplianceTag string `json:"complianceTag,omitempty" yaml:"complianceTag,omitempty"`
}

// UpdateBundleRequest replaces the rules of a bundle.
type UpdateBundleRequest struct {
	BundleID int          `json:"id"    yaml:"id"`
	Rules    []BundleRule `json:"rules" yaml:"rules"`
}

// RunAssessmentRequest runs a bundle against a cloud environment.
type RunAssessmentRequest struct {
	BundleID               int              `json:"id"                     yaml:"id"`
	CloudAccountID         string           `json:"cloudAccountId"         yaml:"cloudAccountId"`
	CloudAccountType       CloudAccountType `json:"cloudAccountType"       yaml:"cloudAccountType"`
	Name                   *string          `json:"name"                   yaml:"name"`
	Description            *string          `json:"description"            yaml:"description"`
	IsCft                  *bool            `json:"isCft"                  yaml:"isCft"`
	Dome9CloudAccountID    *string          `json:"dome9CloudAccountId"    yaml:"dome9CloudAccountId"`
	ExternalCloudAccountID *string          `json:"externalCloudAccountId" yaml:"externalCloudAccountId"`
	Region                 *Region          `json:"region"                 yaml:"region"`
	CloudNetwork           *string          `json:"cloudNetwork"           yaml:"cloudNetwork"`
	Cft                    *AssessmentCft   `json:"cft"                    yaml:"cft"`
}

// AssessmentCft targets an assessment at a CloudFormation template.
type AssessmentCft struct {
	RootName *string                  `json:"rootName" yaml:"rootName"`
	Params   []map[string]interface{} `json:"params"   yaml:"params"`
	Files    []map[string]interface{} `json:"files"    yaml:"files"`
}

// AssessmentResult aggregates the outcome of one assessment run.
type AssessmentResult struct {
	ID               int              `json:"id"                    yaml:"id"`
	AssessmentPassed bool             `json:"assessmentPassed"      yaml:"assessmentPassed"`
	HasErrors        bool             `json:"hasErrors"             yaml:"hasErrors"`
	CreatedTime      *time.Time       `json:"createdTime,omitempty" yaml:"createdTime,omitempty"`
	Tests            []AssessmentTest `json:"tests"                 yaml:"tests"`
}

// AssessmentTest is the result of one rule evaluation.
type AssessmentTest struct {
	Error             string     `json:"error,omitempty"   yaml:"error,omitempty"`
	TestedCount       int        `json:"testedCount"       yaml:"testedCount"`
	RelevantCount     int        `json:"relevantCount"     yaml:"relevantCount"`
	NonComplyingCount int        `json:"nonComplyingCount" yaml:"nonComplyingCount"`
	TestPassed        bool       `json:"testPassed"        yaml:"testPassed"`
	Rule              BundleRule `json:"rule"              yaml:"rule"`
}

// OrganizationalUnit is a node in the account grouping hierarchy.
type OrganizationalUnit struct {
	ID            string  `json:"id"                  yaml:"id"`
	Name          string  `json:"name"                yaml:"name"`
	Path          string  `json:"path,omitempty"      yaml:"path,omitempty"`
	ParentID      *string `json:"parentId"            yaml:"parentId"`
	AccountsCount int     `json:"accountsCount"       yaml:"accountsCount"`
	IsRoot        bool    `json:"isRoot"              yaml:"isRoot"`
}

// CloudTrailEvent is one CloudTrail event collected by Dome9.
type CloudTrailEvent struct {
	CloudAccountID  string     `json:"cloudAccountId"            yaml:"cloudAccountId"`
	Region          string     `json:"region,omitempty"          yaml:"region,omitempty"`
	EventName       string     `json:"eventName"                 yaml:"eventName"`
	EventTime       *time.Time `json:"eventTime,omitempty"       yaml:"eventTime,omitempty"`
	UserName        string     `json:"userName,omitempty"        yaml:"userName,omitempty"`
	SourceIPAddress string     `json:"sourceIpAddress,omitempty" yaml:"sourceIpAddress,omitempty"`
}
