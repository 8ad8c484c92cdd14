// Package dome9client provides the primary entry point for constructing a
// Dome9 API client that implements the dome9.Client interface.
//
// It layers configuration, credential validation, and HTTP transport on top
// of the resource interfaces and types defined in the dome9 package. Most
// applications should import dome9client to build a client, then use the
// returned dome9.Client to access resource-specific clients, for example
// CloudAccounts(), Roles(), Compliance(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/dome9-io/dome9-client/pkg/dome9"
//	  "github.com/dome9-io/dome9-client/pkg/dome9client"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: an API key ID and secret against the public endpoint.
//	  cli, err := dome9client.NewWithCredentials("ac9724a1-...", "secret")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with the full configuration:
//	  cli, err = dome9client.New(&dome9.Config{
//	    APIKey:    "ac9724a1-...",
//	    APISecret: "secret",
//	    BaseURL:   "https://api.dome9.com/v2/",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the dome9.Client interface
//	  accounts, err := cli.CloudAccounts().List(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = accounts
//	}
//
// The API key ID must be a lowercase UUID and the secret lowercase
// alphanumeric; New rejects malformed credentials before any request is sent.
//
// # Helpers
//
// The package also provides convenience constructors NewWithCredentials and
// NewWithEndpoint that wrap New with the appropriate configuration.
package dome9client
