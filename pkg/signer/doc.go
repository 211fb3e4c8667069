// Package signer produces MoltBridge request signatures.
//
// Every authenticated API request carries an Ed25519 signature over the
// request method, path, a Unix timestamp, and the SHA-256 digest of the
// canonical JSON body. The signature travels in the Authorization header:
//
//	Authorization: MoltBridge-Ed25519 <agentID>:<timestamp>:<signature>
//
// # Signing Requests
//
//	keyPair, _ := crypt.FromSeedHex(os.Getenv("MOLTBRIDGE_SIGNING_KEY"))
//	s, _ := signer.NewDefaultSigner("my-agent", keyPair)
//
//	header, err := s.SignRequest(ctx, "POST", "/discover-broker", body)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	req.Header.Set("Authorization", header)
//
// # Custom Signing Options
//
// The timestamp can be pinned, which is useful in tests and when a caller
// manages clocks itself:
//
//	opts := &signer.SigningOptions{Timestamp: 1700000000}
//	header, err := s.SignRequestWithOptions(ctx, "GET", "/health", nil, opts)
//
// # Freshness
//
// A signature is only honored inside the verifier's freshness window, so
// header values must not be cached or replayed. Retrying callers sign again
// for every attempt; the transport package does this automatically.
package signer
