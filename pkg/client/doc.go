// Package client is the MoltBridge SDK: a typed wrapper around the
// trust-graph REST API with Ed25519 request signing, proof-of-AI
// verification and retry logic.
//
// # Getting started
//
//	mb, err := client.New(
//	    client.WithAgentID("my-agent"),
//	    client.WithSigningKeyHex(seedHex),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// First run: prove you are a program, then enroll.
//	if _, err := mb.Verify(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	reg := protocol.NewRegistrationBuilder(mb.AgentID(), mb.PublicKeyBase64()).
//	    WithClusters("AI Research").
//	    WithCapabilities("nlp").
//	    Build()
//	if _, err := mb.Register(ctx, reg); err != nil {
//	    log.Fatal(err)
//	}
//
//	// From then on, every call is signed automatically.
//	resp, err := mb.DiscoverBroker(ctx, protocol.BrokerDiscoveryRequest{
//	    TargetIdentifier: "Peter Diamandis",
//	})
//
// Unset options fall back to the MOLTBRIDGE_BASE_URL, MOLTBRIDGE_AGENT_ID
// and MOLTBRIDGE_SIGNING_KEY environment variables. An agent ID without a
// signing key gets a generated key pair; persist SigningKeyHex() or the
// identity is lost with the process.
package client
