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

func TestUsersClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		users := []dome9.User{
			{ID: 40921, Name: "auditor", Email: "auditor@example.com", RoleIDs: []int{117553}},
			{ID: 40922, Name: "owner", Email: "owner@example.com", IsOwner: true},
		}
		_ = json.NewEncoder(w).Encode(users)
	}))
	defer server.Close()

	users := NewUsersClient(newTestHTTPClient(server.URL))

	result, err := users.List(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "auditor@example.com", result[0].Email)
	assert.True(t, result[1].IsOwner)
}

func TestOrganizationalUnitsClient_ListFlat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/organizationalunit/GetFlatOrganizationalUnits", r.URL.Path)

		units := []dome9.OrganizationalUnit{
			{ID: "00000000-0000-0000-0000-000000000000", Name: "Root", IsRoot: true},
			{ID: "7361f9d9-56e8-40a3-b132-e99cbca1feb1", Name: "Production", ParentID: strPtr("00000000-0000-0000-0000-000000000000")},
		}
		_ = json.NewEncoder(w).Encode(units)
	}))
	defer server.Close()

	units := NewOrganizationalUnitsClient(newTestHTTPClient(server.URL))

	result, err := units.ListFlat(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.True(t, result[0].IsRoot)
	assert.Equal(t, "Production", result[1].Name)
}

func TestCloudTrailClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/CloudTrail", r.URL.Path)

		events := []dome9.CloudTrailEvent{
			{EventName: "ConsoleLogin", UserName: "auditor", SourceIPAddress: "203.0.113.12"},
		}
		_ = json.NewEncoder(w).Encode(events)
	}))
	defer server.Close()

	cloudTrail := NewCloudTrailClient(newTestHTTPClient(server.URL))

	events, err := cloudTrail.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "ConsoleLogin", events[0].EventName)
}
