package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dome9-io/dome9-client/internal/http"
	"github.com/dome9-io/dome9-client/internal/validate"
	"github.com/dome9-io/dome9-client/pkg/dome9"
)

// ComplianceClient implements dome9.ComplianceClient.
type ComplianceClient struct {
	httpClient *http.Client
}

// NewComplianceClient creates a new compliance client.
func NewComplianceClient(httpClient *http.Client) *ComplianceClient {
	return &ComplianceClient{
		httpClient: httpClient,
	}
}

// ListBundles implements dome9.ComplianceClient.ListBundles.
func (c *ComplianceClient) ListBundles(ctx context.Context) ([]dome9.Bundle, error) {
	resp, err := c.httpClient.Get(ctx, "CompliancePolicy", nil)
	if err != nil {
		return nil, fmt.Errorf("listing bundles: %w", err)
	}

	var bundles []dome9.Bundle

	err = json.Unmarshal(resp.Body, &bundles)
	if err != nil {
		return nil, fmt.Errorf("parsing bundles: %w", err)
	}

	return bundles, nil
}

// UpdateBundle implements dome9.ComplianceClient.UpdateBundle.
func (c *ComplianceClient) UpdateBundle(ctx context.Context, request *dome9.UpdateBundleRequest) (*dome9.Bundle, error) {
	err := validate.NotNegative("bundleId", request.BundleID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Put(ctx, "CompliancePolicy", request)
	if err != nil {
		return nil, fmt.Errorf("updating bundle: %w", err)
	}

	var bundle dome9.Bundle

	err = json.Unmarshal(resp.Body, &bundle)
	if err != nil {
		return nil, fmt.Errorf("parsing bundle: %w", err)
	}

	return &bundle, nil
}

// RunAssessment implements dome9.ComplianceClient.RunAssessment.
func (c *ComplianceClient) RunAssessment(ctx context.Context, request *dome9.RunAssessmentRequest) (*dome9.AssessmentResult, error) {
	err := validate.NotNegative("bundleId", request.BundleID)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "assessment/bundleV2", request)
	if err != nil {
		return nil, fmt.Errorf("running assessment: %w", err)
	}

	var result dome9.AssessmentResult

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing assessment result: %w", err)
	}

	return &result, nil
}
