// Package dome9client provides the main entry point for creating Dome9 API clients
package dome9client

import (
	"fmt"
	"strings"

	"github.com/dome9-io/dome9-client/internal/client"
	"github.com/dome9-io/dome9-client/pkg/dome9"
)

// New creates a new Dome9 API client from the given configuration.
func New(config *dome9.Config) (dome9.Client, error) {
	if config == nil {
		return nil, dome9.ErrConfigRequired
	}

	// Normalize the base URL. Resource routes are relative, so the URL has
	// to end with a slash for them to resolve under it.
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = dome9.DefaultBaseURL
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	config.BaseURL = baseURL

	// Use the internal client implementation
	client, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithCredentials creates a new client with an API key and secret against
// the public Dome9 endpoint.
func NewWithCredentials(apiKey, apiSecret string) (dome9.Client, error) {
	return New(&dome9.Config{
		APIKey:    apiKey,
		APISecret: apiSecret,
	})
}

// NewWithEndpoint creates a new client with an API key and secret against a
// custom endpoint.
func NewWithEndpoint(endpoint, apiKey, apiSecret string) (dome9.Client, error) {
	return New(&dome9.Config{
		APIKey:    apiKey,
		APISecret: apiSecret,
		BaseURL:   endpoint,
	})
}
