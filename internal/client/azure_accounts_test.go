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

func TestAzureCloudAccountsClient_Onboard(t *testing.T) {
	t.Run("maps credentials into the body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "/AzureCloudAccount", r.URL.Path)

			var body map[string]interface{}
			_ = json.NewDecoder(r.Body).Decode(&body)

			assert.Equal(t, "azure-prod", body["name"])
			assert.Equal(t, "ac9724a1-7d13-4e49-a07b-dde92d1758a3", body["subscriptionId"])
			assert.Equal(t, "7361f9d9-56e8-40a3-b132-e99cbca1feb1", body["tenantId"])
			assert.Equal(t, "Read", body["operationMode"])

			credentials, ok := body["credentials"].(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, "52c8e4e3-74b1-4f9b-90f1-df8e9ce6f3a0", credentials["clientId"])
			assert.Equal(t, "p@ssw0rd", credentials["clientPassword"])

			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		azure := NewAzureCloudAccountsClient(newTestHTTPClient(server.URL))

		err := azure.Onboard(context.Background(), &dome9.OnboardAzureRequest{
			Name:           strPtr("azure-prod"),
			SubscriptionID: "ac9724a1-7d13-4e49-a07b-dde92d1758a3",
			TenantID:       "7361f9d9-56e8-40a3-b132-e99cbca1feb1",
			ClientID:       "52c8e4e3-74b1-4f9b-90f1-df8e9ce6f3a0",
			ClientPassword: "p@ssw0rd",
		})
		require.NoError(t, err)
	})

	t.Run("defaults the operation mode to Read", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body map[string]interface{}
			_ = json.NewDecoder(r.Body).Decode(&body)
			assert.Equal(t, "Read", body["operationMode"])
		}))
		defer server.Close()

		azure := NewAzureCloudAccountsClient(newTestHTTPClient(server.URL))

		err := azure.Onboard(context.Background(), &dome9.OnboardAzureRequest{
			SubscriptionID: "ac9724a1-7d13-4e49-a07b-dde92d1758a3",
			TenantID:       "7361f9d9-56e8-40a3-b132-e99cbca1feb1",
			ClientID:       "52c8e4e3-74b1-4f9b-90f1-df8e9ce6f3a0",
			ClientPassword: "p@ssw0rd",
		})
		require.NoError(t, err)
	})

	t.Run("invalid tenant ID never hits the server", func(t *testing.T) {
		requests := 0

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
		}))
		defer server.Close()

		azure := NewAzureCloudAccountsClient(newTestHTTPClient(server.URL))

		err := azure.Onboard(context.Background(), &dome9.OnboardAzureRequest{
			SubscriptionID: "ac9724a1-7d13-4e49-a07b-dde92d1758a3",
			TenantID:       "contoso.onmicrosoft.com",
			ClientID:       "52c8e4e3-74b1-4f9b-90f1-df8e9ce6f3a0",
		})
		require.Error(t, err)

		invalidErr := &dome9.InvalidFormatError{}
		require.ErrorAs(t, err, &invalidErr)
		assert.Equal(t, "tenantId", invalidErr.Field)
		assert.Equal(t, 0, requests)
	})
}

func TestAzureCloudAccountsClient_UpdateOrganizationalUnit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/AzureCloudAccount/ac9724a1-7d13-4e49-a07b-dde92d1758a3/organizationalUnit", r.URL.Path)

		var body map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "7361f9d9-56e8-40a3-b132-e99cbca1feb1", body["organizationalUnitId"])

		_ = json.NewEncoder(w).Encode(dome9.CloudAccount{ID: "ac9724a1-7d13-4e49-a07b-dde92d1758a3", Vendor: "azure"})
	}))
	defer server.Close()

	azure := NewAzureCloudAccountsClient(newTestHTTPClient(server.URL))

	account, err := azure.UpdateOrganizationalUnit(context.Background(),
		"ac9724a1-7d13-4e49-a07b-dde92d1758a3", strPtr("7361f9d9-56e8-40a3-b132-e99cbca1feb1"))
	require.NoError(t, err)
	assert.Equal(t, "azure", account.Vendor)
}
