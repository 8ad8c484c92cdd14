package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dome9-io/dome9-client/internal/http"
	"github.com/dome9-io/dome9-client/pkg/dome9"
)

// CloudTrailClient implements dome9.CloudTrailClient.
type CloudTrailClient struct {
	httpClient *http.Client
}

// NewCloudTrailClient creates a new CloudTrail client.
func NewCloudTrailClient(httpClient *http.Client) *CloudTrailClient {
	return &CloudTrailClient{
		httpClient: httpClient,
	}
}

// List implements dome9.CloudTrailClient.List.
func (c *CloudTrailClient) List(ctx context.Context) ([]dome9.CloudTrailEvent, error) {
	resp, err := c.httpClient.Get(ctx, "CloudTrail", nil)
	if err != nil {
		return nil, fmt.Errorf("listing CloudTrail events: %w", err)
	}

	var events []dome9.CloudTrailEvent

	err = json.Unmarshal(resp.Body, &events)
	if err != nil {
		return nil, fmt.Errorf("parsing CloudTrail events: %w", err)
	}

	return events, nil
}
