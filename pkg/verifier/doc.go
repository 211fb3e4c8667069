// Package verifier checks MoltBridge request signatures on the server side.
//
// A DefaultVerifier recomputes the signing string from the request it
// actually received and checks the Ed25519 signature from the Authorization
// header against the public key registered for the claimed agent:
//
//	resolver := verifier.NewStaticResolver()
//	resolver.Add("my-agent", publicKey)
//
//	v, _ := verifier.NewDefaultVerifier(resolver)
//	result, err := v.VerifyRequest(ctx, r.Method, r.URL.RequestURI(), body, r.Header.Get("Authorization"))
//	if err != nil {
//	    // one of MALFORMED_HEADER, STALE_TIMESTAMP, UNKNOWN_AGENT, SIGNATURE_MISMATCH
//	}
//
// # Freshness
//
// Signed timestamps are accepted within DefaultFreshnessWindow of the
// verifier's clock, in either direction. The window bounds replay exposure;
// tighten it with SetFreshnessWindow when clocks are known to be close.
//
// # Key resolution
//
// Key lookup goes through the PublicKeyResolver interface. StaticResolver
// serves tests and single-process deployments; the server package provides a
// registry-backed resolver. ResolverFunc adapts any lookup function.
package verifier
