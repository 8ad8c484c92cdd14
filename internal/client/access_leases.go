package client

import (
	"context"
	"fmt"

	"github.com/dome9-io/dome9-client/internal/http"
	"github.com/dome9-io/dome9-client/internal/validate"
	"github.com/dome9-io/dome9-client/pkg/dome9"
)

// AccessLeasesClient implements dome9.AccessLeasesClient.
type AccessLeasesClient struct {
	httpClient *http.Client
}

// NewAccessLeasesClient creates a new access leases client.
func NewAccessLeasesClient(httpClient *http.Client) *AccessLeasesClient {
	return &AccessLeasesClient{
		httpClient: httpClient,
	}
}

// AcquireAWS implements dome9.AccessLeasesClient.AcquireAWS.
func (c *AccessLeasesClient) AcquireAWS(ctx context.Context, request *dome9.AcquireAWSLeaseRequest) error {
	err := validate.UUID("cloudAccountId", request.CloudAccountID)
	if err != nil {
		return err
	}

	err = validate.NotNegative("securityGroupId", request.SecurityGroupID)
	if err != nil {
		return err
	}

	err = validate.IPv4("ip", request.IP)
	if err != nil {
		return err
	}

	err = validate.Port("portFrom", request.PortFrom)
	if err != nil {
		return err
	}

	err = validate.OptionalPort("portTo", request.PortTo)
	if err != nil {
		return err
	}

	err = validate.OptionalDuration("length", request.Duration)
	if err != nil {
		return err
	}

	err = validate.OptionalNotNegative("accountId", request.AccountID)
	if err != nil {
		return err
	}

	err = validate.OptionalEmail("user", request.User)
	if err != nil {
		return err
	}

	_, err = c.httpClient.Post(ctx, "accesslease/aws", request)
	if err != nil {
		return fmt.Errorf("acquiring AWS lease: %w", err)
	}

	return nil
}
