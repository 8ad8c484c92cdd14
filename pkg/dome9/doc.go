// Package dome9 defines the public types, interfaces, and errors for the
// Dome9 v2 API client.
//
// The package contains the Config used to construct a client, the Client
// interface exposing the per-resource clients (CloudAccounts, Roles,
// AccessLeases, Compliance, ...), the resource types exchanged with the API,
// and the APIError / InvalidFormatError error types every operation can
// return.
//
// To build a working client, use the constructors in
// github.com/dome9-io/dome9-client/pkg/dome9client:
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
//	  cli, err := dome9client.New(&dome9.Config{
//	    APIKey:    "00000000-0000-4000-8000-000000000000",
//	    APISecret: "s3cr3tvalue",
//	  })
//	  if err != nil {
//	    log.Fatal(err)
//	  }
//
//	  accounts, err := cli.CloudAccounts().List(context.Background())
//	  if err != nil {
//	    log.Fatal(err)
//	  }
//	  _ = accounts
//	}
//
// Every call performs exactly one synchronous HTTP exchange authenticated
// with HTTP Basic (API key as username, API secret as password). Callers that
// need timeouts should pass a context with a deadline.
package dome9
