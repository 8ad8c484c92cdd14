package client

import (
	internalhttp "github.com/dome9-io/dome9-client/internal/http"
)

const (
	testAPIKey    = "ac9724a1-7d13-4e49-a07b-dde92d1758a3"
	testAPISecret = "s3cr3tvalue"
)

// newTestHTTPClient builds a dispatcher pointed at a test server.
func newTestHTTPClient(serverURL string) *internalhttp.Client {
	return internalhttp.NewClient(serverURL+"/", testAPIKey, testAPISecret)
}

func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}
