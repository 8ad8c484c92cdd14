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

// roleBasedCredentials is the wire form of cross-account role credentials.
type roleBasedCredentials struct {
	ARN    string `json:"arn"`
	Secret string `json:"secret"`
	Type   string `json:"type"`
}

const credentialsTypeRoleBased = "RoleBased"

// CloudAccountsClient implements dome9.CloudAccountsClient.
type CloudAccountsClient struct {
	httpClient *http.Client
}

// NewCloudAccountsClient creates a new cloud accounts client.
func NewCloudAccountsClient(httpClient *http.Client) *CloudAccountsClient {
	return &CloudAccountsClient{
		httpClient: httpClient,
	}
}

// List implements dome9.CloudAccountsClient.List.
func (c *CloudAccountsClient) List(ctx context.Context) ([]dome9.CloudAccount, error) {
	resp, err := c.httpClient.Get(ctx, "CloudAccounts", nil)
	if err != nil {
		return nil, fmt.Errorf("listing cloud accounts: %w", err)
	}

	var accounts []dome9.CloudAccount

	err = json.Unmarshal(resp.Body, &accounts)
	if err != nil {
		return nil, fmt.Errorf("parsing cloud accounts: %w", err)
	}

	return accounts, nil
}

// Get implements dome9.CloudAccountsClient.Get.
func (c *CloudAccountsClient) Get(ctx context.Context, cloudAccountID string) (*dome9.CloudAccount, error) {
	err := validate.UUIDOr12Digits("cloudAccountId", cloudAccountID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "CloudAccounts/"+cloudAccountID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting cloud account: %w", err)
	}

	var account dome9.CloudAccount

	err = json.Unmarshal(resp.Body, &account)
	if err != nil {
		return nil, fmt.Errorf("parsing cloud account: %w", err)
	}

	return &account, nil
}

// Regions implements dome9.CloudAccountsClient.Regions.
func (c *CloudAccountsClient) Regions(ctx context.Context, cloudAccountID string) ([]string, error) {
	account, err := c.Get(ctx, cloudAccountID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(account.NetSec.Regions))
	regions := make([]string, 0, len(account.NetSec.Regions))

	for _, region := range account.NetSec.Regions {
		if _, ok := seen[region.Region]; ok {
			continue
		}

		seen[region.Region] = struct{}{}
		regions = append(regions, region.Region)
	}

	return regions, nil
}

// OnboardAWS implements dome9.CloudAccountsClient.OnboardAWS.
func (c *CloudAccountsClient) OnboardAWS(ctx context.Context, request *dome9.OnboardAWSRequest) error {
	err := validate.ARN("arn", request.ARN)
	if err != nil {
		return err
	}

	err = validate.LowercaseAlphanumeric("secret", request.Secret)
	if err != nil {
		return err
	}

	body := struct {
		Name           *string              `json:"name"`
		Credentials    roleBasedCredentials `json:"credentials"`
		FullProtection bool                 `json:"fullProtection"`
		AllowReadOnly  bool                 `json:"allowReadOnly"`
	}{
		Name: request.Name,
		Credentials: roleBasedCredentials{
			ARN:    request.ARN,
			Secret: request.Secret,
			Type:   credentialsTypeRoleBased,
		},
		FullProtection: request.FullProtection,
		AllowReadOnly:  request.AllowReadOnly,
	}

	_, err = c.httpClient.Post(ctx, "CloudAccounts", body)
	if err != nil {
		return fmt.Errorf("onboarding AWS account: %w", err)
	}

	return nil
}

// Update implements dome9.CloudAccountsClient.Update.
func (c *CloudAccountsClient) Update(ctx context.Context, cloudAccountID string, request *dome9.UpdateCloudAccountRequest) error {
	err := validate.UUID("cloudAccountId", cloudAccountID)
	if err != nil {
		return err
	}

	err = validate.OptionalUUID("organizationalUnitId", request.OrganizationalUnitID)
	if err != nil {
		return err
	}

	err = validate.ARN("arn", request.ARN)
	if err != nil {
		return err
	}

	err = validate.LowercaseAlphanumeric("secret", request.Secret)
	if err != nil {
		return err
	}

	body := struct {
		Name                   *string              `json:"name"`
		FullProtection         *bool                `json:"fullProtection"`
		AllowReadOnly          *bool                `json:"allowReadOnly"`
		OrganizationalUnitID   *string              `json:"organizationalUnitId"`
		OrganizationalUnitPath *string              `json:"organizationalUnitPath"`
		OrganizationalUnitName *string              `json:"organizationalUnitName"`
		LambdaScanner          *bool                `json:"lambdaScanner"`
		Credentials            roleBasedCredentials `json:"CloudAccountCredentials"`
	}{
		Name:                   request.Name,
		FullProtection:         request.FullProtection,
		AllowReadOnly:          request.AllowReadOnly,
		OrganizationalUnitID:   request.OrganizationalUnitID,
		OrganizationalUnitPath: request.OrganizationalUnitPath,
		OrganizationalUnitName: request.OrganizationalUnitName,
		LambdaScanner:          request.LambdaScanner,
		Credentials: roleBasedCredentials{
			ARN:    request.ARN,
			Secret: request.Secret,
			Type:   credentialsTypeRoleBased,
		},
	}

	_, err = c.httpClient.Patch(ctx, "CloudAccounts/"+cloudAccountID, body)
	if err != nil {
		return fmt.Errorf("updating cloud account: %w", err)
	}

	return nil
}

// UpdateCredentials implements dome9.CloudAccountsClient.UpdateCredentials.
func (c *CloudAccountsClient) UpdateCredentials(ctx context.Context, request *dome9.UpdateAWSCredentialsRequest) error {
	err := validate.ARN("arn", request.ARN)
	if err != nil {
		return err
	}

	err = validate.LowercaseAlphanumeric("secret", request.Secret)
	if err != nil {
		return err
	}

	err = validate.OptionalUUID("cloudAccountId", request.CloudAccountID)
	if err != nil {
		return err
	}

	body := struct {
		CloudAccountID        *string              `json:"cloudAccountId"`
		ExternalAccountNumber *string              `json:"externalAccountNumber"`
		Data                  roleBasedCredentials `json:"data"`
	}{
		CloudAccountID:        request.CloudAccountID,
		ExternalAccountNumber: request.ExternalAccountNumber,
		Data: roleBasedCredentials{
			ARN:    request.ARN,
			Secret: request.Secret,
			Type:   credentialsTypeRoleBased,
		},
	}

	_, err = c.httpClient.Put(ctx, "CloudAccounts/credentials", body)
	if err != nil {
		return fmt.Errorf("updating cloud account credentials: %w", err)
	}

	return nil
}

// UpdateOrganizationalUnit implements dome9.CloudAccountsClient.UpdateOrganizationalUnit.
func (c *CloudAccountsClient) UpdateOrganizationalUnit(ctx context.Context, cloudAccountID string, organizationalUnitID *string) (*dome9.CloudAccount, error) {
	err := validate.UUID("cloudAccountId", cloudAccountID)
	if err != nil {
		return nil, err
	}

	err = validate.OptionalUUID("organizationalUnitId", organizationalUnitID)
	if err != nil {
		return nil, err
	}

	body := struct {
		// nil attaches the account to the root organizational unit.
		OrganizationalUnitID *string `json:"organizationalUnitId"`
	}{
		OrganizationalUnitID: organizationalUnitID,
	}

	resp, err := c.httpClient.Put(ctx, "cloudaccounts/"+cloudAccountID+"/organizationalUnit", body)
	if err != nil {
		return nil, fmt.Errorf("updating organizational unit: %w", err)
	}

	var account dome9.CloudAccount

	err = json.Unmarshal(resp.Body, &account)
	if err != nil {
		return nil, fmt.Errorf("parsing cloud account: %w", err)
	}

	return &account, nil
}

// SyncNow implements dome9.CloudAccountsClient.SyncNow.
func (c *CloudAccountsClient) SyncNow(ctx context.Context, cloudAccountID string) (*dome9.SyncNowResult, error) {
	err := validate.UUID("cloudAccountId", cloudAccountID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "cloudaccounts/"+cloudAccountID+"/SyncNow", nil)
	if err != nil {
		return nil, fmt.Errorf("requesting sync: %w", err)
	}

	var result dome9.SyncNowResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing sync result: %w", err)
	}

	return &result, nil
}

// FetchStatus implements dome9.CloudAccountsClient.FetchStatus.
func (c *CloudAccountsClient) FetchStatus(ctx context.Context, cloudAccountID string) ([]dome9.EntityFetchStatus, error) {
	err := validate.UUID("cloudAccountId", cloudAccountID)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("cloudAccountId", cloudAccountID)

	resp, err := c.httpClient.Get(ctx, "EntityFetchStatus", query)
	if err != nil {
		return nil, fmt.Errorf("getting fetch status: %w", err)
	}

	var statuses []dome9.EntityFetchStatus

	err = json.Unmarshal(resp.Body, &statuses)
	if err != nil {
		return nil, fmt.Errorf("parsing fetch status: %w", err)
	}

	return statuses, nil
}
