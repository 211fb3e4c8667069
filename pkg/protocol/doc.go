// Package protocol defines the MoltBridge wire formats: the Authorization
// header grammar, the request signing string, and the request and response
// shapes of the trust-graph API.
//
// # Request authentication
//
// Every authenticated request carries a header of the form
//
//	Authorization: MoltBridge-Ed25519 <agentID>:<timestamp>:<signature>
//
// where the signature covers the colon-joined signing string built by
// SigningString: method, path, Unix timestamp, and the hex SHA-256 digest of
// the canonical body. ParseAuthorization and FormatAuthorization convert
// between the header value and its parsed form.
//
// # Registration
//
// Use the RegistrationBuilder for a fluent API to enroll an agent:
//
//	reg := protocol.NewRegistrationBuilder("my-agent", keyPair.PublicKeyBase64()).
//	    WithName("My Agent").
//	    WithCapabilities("nlp", "reasoning").
//	    WithClusters("AI Research").
//	    WithVerificationToken(token).
//	    Build()
//
//	if err := reg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Response types
//
// The remaining types mirror the JSON bodies returned by the API: discovery
// results, credibility packets, consent records, payment ledger entries and
// webhook registrations. Field names follow the API's snake_case keys.
package protocol
