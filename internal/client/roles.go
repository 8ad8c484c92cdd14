package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dome9-io/dome9-client/internal/http"
	"github.com/dome9-io/dome9-client/internal/validate"
	"github.com/dome9-io/dome9-client/pkg/dome9"
)

// RolesClient implements dome9.RolesClient.
type RolesClient struct {
	httpClient *http.Client
}

// NewRolesClient creates a new roles client.
func NewRolesClient(httpClient *http.Client) *RolesClient {
	return &RolesClient{
		httpClient: httpClient,
	}
}

// List implements dome9.RolesClient.List.
func (c *RolesClient) List(ctx context.Context) ([]dome9.Role, error) {
	resp, err := c.httpClient.Get(ctx, "role", nil)
	if err != nil {
		return nil, fmt.Errorf("listing roles: %w", err)
	}

	var roles []dome9.Role

	err = json.Unmarshal(resp.Body, &roles)
	if err != nil {
		return nil, fmt.Errorf("parsing roles: %w", err)
	}

	return roles, nil
}

// Get implements dome9.RolesClient.Get.
func (c *RolesClient) Get(ctx context.Context, roleID int) (*dome9.Role, error) {
	err := validate.NotNegative("roleId", roleID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, "Role/"+strconv.Itoa(roleID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting role: %w", err)
	}

	var role dome9.Role

	err = json.Unmarshal(resp.Body, &role)
	if err != nil {
		return nil, fmt.Errorf("parsing role: %w", err)
	}

	return &role, nil
}

// Update implements dome9.RolesClient.Update.
func (c *RolesClient) Update(ctx context.Context, roleID int, request *dome9.UpdateRoleRequest) error {
	err := validate.NotNegative("roleId", roleID)
	if err != nil {
		return err
	}

	err = validate.NotEmpty("roleName", request.Name)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Put(ctx, "Role/"+strconv.Itoa(roleID), request)
	if err != nil {
		return fmt.Errorf("updating role: %w", err)
	}

	return nil
}
