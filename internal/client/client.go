// Package client implements the dome9.Client interface on top of the request
// dispatcher. Each resource client is a thin call-site configuration: it
// validates its arguments in declaration order, maps them onto a route and
// JSON body, and hands the exchange to the dispatcher.
package client

import (
	"github.com/dome9-io/dome9-client/internal/http"
	"github.com/dome9-io/dome9-client/internal/validate"
	"github.com/dome9-io/dome9-client/pkg/dome9"
)

// Client implements the dome9.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string

	// Resource clients
	cloudAccounts       dome9.CloudAccountsClient
	azureCloudAccounts  dome9.AzureCloudAccountsClient
	roles               dome9.RolesClient
	users               dome9.UsersClient
	accessLeases        dome9.AccessLeasesClient
	securityGroups      dome9.SecurityGroupsClient
	compliance          dome9.ComplianceClient
	organizationalUnits dome9.OrganizationalUnitsClient
	cloudTrail          dome9.CloudTrailClient
}

// New creates a Dome9 API client. The API key, secret, and base URL are
// checked before anything else happens; a malformed value fails here, never
// on the wire.
func New(config *dome9.Config) (*Client, error) {
	if config == nil {
		return nil, dome9.ErrConfigRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = dome9.DefaultBaseURL
	}

	err := validate.UUID("apiKey", config.APIKey)
	if err != nil {
		return nil, err
	}

	err = validate.LowercaseAlphanumeric("apiSecret", config.APISecret)
	if err != nil {
		return nil, err
	}

	err = validate.HTTPURL("baseURL", baseURL)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(baseURL, config.APIKey, config.APISecret, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client, nil
}

// createHTTPClientOptions builds dispatcher options from config.
func createHTTPClientOptions(config *dome9.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	return httpOpts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.cloudAccounts = NewCloudAccountsClient(c.httpClient)
	c.azureCloudAccounts = NewAzureCloudAccountsClient(c.httpClient)
	c.roles = NewRolesClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.accessLeases = NewAccessLeasesClient(c.httpClient)
	c.securityGroups = NewSecurityGroupsClient(c.httpClient)
	c.compliance = NewComplianceClient(c.httpClient)
	c.organizationalUnits = NewOrganizationalUnitsClient(c.httpClient)
	c.cloudTrail = NewCloudTrailClient(c.httpClient)
}

// CloudAccounts implements dome9.Client.CloudAccounts.
func (c *Client) CloudAccounts() dome9.CloudAccountsClient {
	return c.cloudAccounts
}

// AzureCloudAccounts implements dome9.Client.AzureCloudAccounts.
func (c *Client) AzureCloudAccounts() dome9.AzureCloudAccountsClient {
	return c.azureCloudAccounts
}

// Roles implements dome9.Client.Roles.
func (c *Client) Roles() dome9.RolesClient {
	return c.roles
}

// Users implements dome9.Client.Users.
func (c *Client) Users() dome9.UsersClient {
	return c.users
}

// AccessLeases implements dome9.Client.AccessLeases.
func (c *Client) AccessLeases() dome9.AccessLeasesClient {
	return c.accessLeases
}

// SecurityGroups implements dome9.Client.SecurityGroups.
func (c *Client) SecurityGroups() dome9.SecurityGroupsClient {
	return c.securityGroups
}

// Compliance implements dome9.Client.Compliance.
func (c *Client) Compliance() dome9.ComplianceClient {
	return c.compliance
}

// OrganizationalUnits implements dome9.Client.OrganizationalUnits.
func (c *Client) OrganizationalUnits() dome9.OrganizationalUnitsClient {
	return c.organizationalUnits
}

// CloudTrail implements dome9.Client.CloudTrail.
func (c *Client) CloudTrail() dome9.CloudTrailClient {
	return c.cloudTrail
}

// loggerAdapter adapts dome9.Logger to http.Logger.
type loggerAdapter struct {
	logger dome9.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
