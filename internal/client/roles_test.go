package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dome9-io/dome9-client/pkg/dome9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRolesClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/role", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		roles := []dome9.Role{
			{ID: 117553, Name: "Auditors"},
			{ID: 117554, Name: "NetworkAdmins"},
		}
		_ = json.NewEncoder(w).Encode(roles)
	}))
	defer server.Close()

	roles := NewRolesClient(newTestHTTPClient(server.URL))

	result, err := roles.List(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Auditors", result[0].Name)
}

func TestRolesClient_Get(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/Role/117553", r.URL.Path)

			_ = json.NewEncoder(w).Encode(dome9.Role{
				ID:   117553,
				Name: "Auditors",
				Permissions: dome9.RolePermissions{
					View: []string{"1|0|rg|aws_sg"},
				},
			})
		}))
		defer server.Close()

		roles := NewRolesClient(newTestHTTPClient(server.URL))

		role, err := roles.Get(context.Background(), 117553)
		require.NoError(t, err)
		assert.Equal(t, "Auditors", role.Name)
		assert.Equal(t, []string{"1|0|rg|aws_sg"}, role.Permissions.View)
	})

	t.Run("negative ID", func(t *testing.T) {
		roles := NewRolesClient(newTestHTTPClient("http://localhost:1"))

		_, err := roles.Get(context.Background(), -1)
		require.Error(t, err)
		assert.True(t, dome9.IsInvalidFormat(err))
	})
}

func TestRolesClient_Update(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "PUT", r.Method)
			assert.Equal(t, "/Role/117553", r.URL.Path)

			var body dome9.UpdateRoleRequest

			err := json.NewDecoder(r.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "Auditors", body.Name)
			assert.Equal(t, []string{"1|0|rg|aws_sg"}, body.Permissions.Manage)

			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		roles := NewRolesClient(newTestHTTPClient(server.URL))

		err := roles.Update(context.Background(), 117553, &dome9.UpdateRoleRequest{
			Name: "Auditors",
			Permissions: dome9.RolePermissions{
				Manage: []string{"1|0|rg|aws_sg"},
			},
		})
		require.NoError(t, err)
	})

	t.Run("empty role name", func(t *testing.T) {
		roles := NewRolesClient(newTestHTTPClient("http://localhost:1"))

		err := roles.Update(context.Background(), 117553, &dome9.UpdateRoleRequest{})
		require.Error(t, err)

		invalidErr := &dome9.InvalidFormatError{}
		require.ErrorAs(t, err, &invalidErr)
		assert.Equal(t, "roleName", invalidErr.Field)
	})
}
