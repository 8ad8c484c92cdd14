package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/dome9-io/dome9-client/internal/http"
	"github.com/dome9-io/dome9-client/internal/validate"
	"github.com/dome9-io/dome9-client/pkg/dome9"
)

// SecurityGroupsClient implements dome9.SecurityGroupsClient.
type SecurityGroupsClient struct {
	httpClient *http.Client
}

// NewSecurityGroupsClient creates a new security groups client.
func NewSecurityGroupsClient(httpClient *http.Client) *SecurityGroupsClient {
	return &SecurityGroupsClient{
		httpClient: httpClient,
	}
}

// List implements dome9.SecurityGroupsClient.List.
func (c *SecurityGroupsClient) List(ctx context.Context) ([]dome9.SecurityGroup, error) {
	resp, err := c.httpClient.Get(ctx, "view/awssecuritygroup/index", nil)
	if err != nil {
		return nil, fmt.Errorf("listing security groups: %w", err)
	}

	var groups []dome9.SecurityGroup

	err = json.Unmarshal(resp.Body, &groups)
	if err != nil {
		return nil, fmt.Errorf("parsing security groups: %w", err)
	}

	return groups, nil
}

// ListForRegion implements dome9.SecurityGroupsClient.ListForRegion.
func (c *SecurityGroupsClient) ListForRegion(ctx context.Context, cloudAccountID string, region dome9.Region) ([]dome9.SecurityGroup, error) {
	err := validate.UUID("cloudAccountId", cloudAccountID)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("cloudAccountId", cloudAccountID)
	query.Set("regionId", string(region))

	resp, err := c.httpClient.Get(ctx, "cloudsecuritygroup/"+cloudAccountID, query)
	if err != nil {
		return nil, fmt.Errorf("listing security groups for region: %w", err)
	}

	var groups []dome9.SecurityGroup

	err = json.Unmarshal(resp.Body, &groups)
	if err != nil {
		return nil, fmt.Errorf("parsing security groups: %w", err)
	}

	return groups, nil
}

// SetProtectionMode implements dome9.SecurityGroupsClient.SetProtectionMode.
func (c *SecurityGroupsClient) SetProtectionMode(ctx context.Context, securityGroupID string, mode dome9.ProtectionMode) error {
	err := validate.NotEmpty("securityGroupId", securityGroupID)
	if err != nil {
		return err
	}

	body := struct {
		ProtectionMode dome9.ProtectionMode `json:"protectionMode"`
	}{
		ProtectionMode: mode,
	}

	_, err = c.httpClient.Post(ctx, "cloudsecuritygroup/"+securityGroupID+"/protection-mode", body)
	if err != nil {
		return fmt.Errorf("setting protection mode: %w", err)
	}

	return nil
}
