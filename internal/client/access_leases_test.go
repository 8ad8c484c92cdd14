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

func TestAccessLeasesClient_AcquireAWS(t *testing.T) {
	t.Run("sends the duration under the length key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "/accesslease/aws", r.URL.Path)

			var body map[string]interface{}
			_ = json.NewDecoder(r.Body).Decode(&body)

			assert.Equal(t, "ac9724a1-7d13-4e49-a07b-dde92d1758a3", body["cloudAccountId"])
			assert.Equal(t, float64(2481593), body["securityGroupId"])
			assert.Equal(t, "203.0.113.12", body["ip"])
			assert.Equal(t, float64(22), body["portFrom"])
			assert.Equal(t, "1.2:30:0", body["length"])
			assert.Equal(t, "dev@example.com", body["user"])

			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		leases := NewAccessLeasesClient(newTestHTTPClient(server.URL))

		err := leases.AcquireAWS(context.Background(), &dome9.AcquireAWSLeaseRequest{
			CloudAccountID:  "ac9724a1-7d13-4e49-a07b-dde92d1758a3",
			SecurityGroupID: 2481593,
			IP:              "203.0.113.12",
			PortFrom:        22,
			Duration:        strPtr("1.2:30:0"),
			User:            strPtr("dev@example.com"),
		})
		require.NoError(t, err)
	})

	t.Run("validation failures", func(t *testing.T) {
		valid := func() *dome9.AcquireAWSLeaseRequest {
			return &dome9.AcquireAWSLeaseRequest{
				CloudAccountID:  "ac9724a1-7d13-4e49-a07b-dde92d1758a3",
				SecurityGroupID: 2481593,
				IP:              "203.0.113.12",
				PortFrom:        22,
			}
		}

		tests := []struct {
			name   string
			mutate func(request *dome9.AcquireAWSLeaseRequest)
			field  string
		}{
			{
				name:   "malformed cloud account ID",
				mutate: func(request *dome9.AcquireAWSLeaseRequest) { request.CloudAccountID = "prod" },
				field:  "cloudAccountId",
			},
			{
				name:   "negative security group ID",
				mutate: func(request *dome9.AcquireAWSLeaseRequest) { request.SecurityGroupID = -2 },
				field:  "securityGroupId",
			},
			{
				name:   "malformed IP",
				mutate: func(request *dome9.AcquireAWSLeaseRequest) { request.IP = "203.0.113" },
				field:  "ip",
			},
			{
				name:   "port out of range",
				mutate: func(request *dome9.AcquireAWSLeaseRequest) { request.PortFrom = 70000 },
				field:  "portFrom",
			},
			{
				name:   "malformed duration",
				mutate: func(request *dome9.AcquireAWSLeaseRequest) { request.Duration = strPtr("2 hours") },
				field:  "length",
			},
			{
				name:   "malformed user email",
				mutate: func(request *dome9.AcquireAWSLeaseRequest) { request.User = strPtr("not-an-email") },
				field:  "user",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				requests := 0

				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					requests++
				}))
				defer server.Close()

				leases := NewAccessLeasesClient(newTestHTTPClient(server.URL))

				request := valid()
				tt.mutate(request)

				err := leases.AcquireAWS(context.Background(), request)
				require.Error(t, err)

				invalidErr := &dome9.InvalidFormatError{}
				require.ErrorAs(t, err, &invalidErr)
				assert.Equal(t, tt.field, invalidErr.Field)
				assert.Equal(t, 0, requests)
			})
		}
	})
}
