package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dome9-io/dome9-client/internal/http"
	"github.com/dome9-io/dome9-client/pkg/dome9"
)

// OrganizationalUnitsClient implements dome9.OrganizationalUnitsClient.
type OrganizationalUnitsClient struct {
	httpClient *http.Client
}

// NewOrganizationalUnitsClient creates a new organizational units client.
func NewOrganizationalUnitsClient(httpClient *http.Client) *OrganizationalUnitsClient {
	return &OrganizationalUnitsClient{
		httpClient: httpClient,
	}
}

// ListFlat implements dome9.OrganizationalUnitsClient.ListFlat.
func (c *OrganizationalUnitsClient) ListFlat(ctx context.Context) ([]dome9.OrganizationalUnit, error) {
	resp, err := c.httpClient.Get(ctx, "organizationalunit/GetFlatOrganizationalUnits", nil)
	if err != nil {
		return nil, fmt.Errorf("listing organizational units: %w", err)
	}

	var units []dome9.OrganizationalUnit

	err = json.Unmarshal(resp.Body, &units)
	if err != nil {
		return nil, fmt.Errorf("parsing organizational units: %w", err)
	}

	return units, nil
}
