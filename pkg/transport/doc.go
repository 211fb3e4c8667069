// Package transport executes MoltBridge API calls with signing and retry.
//
// The Executor owns the resilience policy of the SDK: per-attempt timeouts,
// a capped backoff schedule between attempts, and a strict split between
// failures worth retrying and failures that are final.
//
//	exec := transport.NewExecutor("https://api.moltbridge.ai",
//	    transport.WithSigner(mySigner),
//	    transport.WithMaxRetries(3),
//	)
//
//	raw, err := exec.Do(ctx, transport.Call{
//	    Method:       "POST",
//	    Path:         "/discover-broker",
//	    Body:         req,
//	    RequiresAuth: true,
//	})
//
// # Retry semantics
//
// Only transport-level failures (connection refused, resets, timeouts) are
// retried. A response with an HTTP status, even 503, is a final structured
// error: the server spoke, and the executor does not second-guess it.
//
// Each attempt gets its own Authorization header with a fresh timestamp and
// signature. Reusing a header across attempts would let the backoff schedule
// walk the signature out of the server's freshness window.
//
// # Authentication
//
// Calls with RequiresAuth set fail with NO_AUTH before any network traffic
// when the executor has no signer; unauthenticated endpoints such as /health
// work without one.
package transport
