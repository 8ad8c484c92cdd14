package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dome9-io/dome9-client/internal/http"
	"github.com/dome9-io/dome9-client/pkg/dome9"
)

// UsersClient implements dome9.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
	}
}

// List implements dome9.UsersClient.List.
func (c *UsersClient) List(ctx context.Context) ([]dome9.User, error) {
	resp, err := c.httpClient.Get(ctx, "user", nil)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	var users []dome9.User

	err = json.Unmarshal(resp.Body, &users)
	if err != nil {
		return nil, fmt.Errorf("parsing users: %w", err)
	}

	return users, nil
}
