package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dome9-io/dome9-client/internal/http"
	"github.com/dome9-io/dome9-client/internal/validate"
	"github.com/dome9-io/dome9-client/pkg/dome9"
)

// AzureCloudAccountsClient implements dome9.AzureCloudAccountsClient.
type AzureCloudAccountsClient struct {
	httpClient *http.Client
}

// NewAzureCloudAccountsClient creates a new Azure cloud accounts client.
func NewAzureCloudAccountsClient(httpClient *http.Client) *AzureCloudAccountsClient {
	return &AzureCloudAccountsClient{
		httpClient: httpClient,
	}
}

// Onboard implements dome9.AzureCloudAccountsClient.Onboard.
func (c *AzureCloudAccountsClient) Onboard(ctx context.Context, request *dome9.OnboardAzureRequest) error {
	err := validate.UUID("subscriptionId", request.SubscriptionID)
	if err != nil {
		return err
	}

	err = validate.UUID("tenantId", request.TenantID)
	if err != nil {
		return err
	}

	err = validate.UUID("clientId", request.ClientID)
	if err != nil {
		return err
	}

	operationMode := request.OperationMode
	if operationMode == "" {
		operationMode = dome9.OperationModeRead
	}

	body := struct {
		Name           *string `json:"name"`
		SubscriptionID string  `json:"subscriptionId"`
		TenantID       string  `json:"tenantId"`
		Credentials    struct {
			ClientID       string `json:"clientId"`
			ClientPassword string `json:"clientPassword"`
		} `json:"credentials"`
		OperationMode dome9.OperationMode `json:"operationMode"`
	}{
		Name:           request.Name,
		SubscriptionID: request.SubscriptionID,
		TenantID:       request.TenantID,
		OperationMode:  operationMode,
	}
	body.Credentials.ClientID = request.ClientID
	body.Credentials.ClientPassword = request.ClientPassword

	_, err = c.httpClient.Post(ctx, "AzureCloudAccount", body)
	if err != nil {
		return fmt.Errorf("onboarding Azure account: %w", err)
	}

	return nil
}

// UpdateOrganizationalUnit implements dome9.AzureCloudAccountsClient.UpdateOrganizationalUnit.
func (c *AzureCloudAccountsClient) UpdateOrganizationalUnit(ctx context.Context, cloudAccountID string, organizationalUnitID *string) (*dome9.CloudAccount, error) {
	err := validate.UUID("cloudAccountId", cloudAccountID)
	if err != nil {
		return nil, err
	}

	err = validate.OptionalUUID("organizationalUnitId", organizationalUnitID)
	if err != nil {
		return nil, err
	}

	body := struct {
		OrganizationalUnitID *string `json:"organizationalUnitId"`
	}{
		OrganizationalUnitID: organizationalUnitID,
	}

	resp, err := c.httpClient.Put(ctx, "AzureCloudAccount/"+cloudAccountID+"/organizationalUnit", body)
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
