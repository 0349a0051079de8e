// Package splitwise provides the public types for the Splitwise API client:
// the Client interface with its per-resource clients, the configuration
// surface, the typed payloads, the classified error taxonomy, and the
// response cache.
//
// Create clients with github.com/DasULTRAS/splitwise-sdk/pkg/swclient:
//
//	client, err := swclient.New(&splitwise.Config{AccessToken: apiKey})
//	if err != nil {
//		// handle error
//	}
//	defer client.Close()
//
//	user, err := client.Users().GetCurrent(ctx)
//
// Every call passes through a shared pipeline that injects the bearer token,
// retries transient failures with full-jitter backoff (honoring Retry-After
// hints on 429s exactly), classifies failures into the ErrorKind taxonomy,
// caches GET responses with per-endpoint TTLs, and coalesces concurrent
// identical GETs onto a single network call.
package splitwise
