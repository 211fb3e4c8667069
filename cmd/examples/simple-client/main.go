// Copyright (C) 2025 MoltBridge
//
// This file is part of moltbridge-go.
//
// moltbridge-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// moltbridge-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with moltbridge-go.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"log"

	"github.com/moltbridge/moltbridge-go/pkg/client"
	"github.com/moltbridge/moltbridge-go/pkg/protocol"
)

func main() {
	fmt.Println("MoltBridge Go - Simple Client Example")
	fmt.Println("=====================================")

	ctx := context.Background()

	// Create a client. With no signing key configured, a fresh Ed25519
	// key pair is generated for the session.
	fmt.Println("\n1. Creating client...")
	c, err := client.New(
		client.WithAgentID("example-translator"),
	)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	fmt.Printf("   Agent ID: %s\n", c.AgentID())
	fmt.Printf("   Public Key: %s\n", c.PublicKeyBase64())

	// Complete the proof-of-AI challenge.
	fmt.Println("\n2. Completing verification challenge...")
	result, err := c.Verify(ctx)
	if err != nil {
		log.Fatalf("Verification failed: %v", err)
	}
	fmt.Printf("   Verified: %v\n", result.Verified)

	// Register the agent. Identity fields are filled from the client.
	fmt.Println("\n3. Registering agent...")
	reg := protocol.NewRegistrationBuilder(c.AgentID(), c.PublicKeyBase64()).
		WithCapabilities("translation", "summarization").
		Build()
	if _, err := c.Register(ctx, reg); err != nil {
		log.Fatalf("Registration failed: %v", err)
	}
	fmt.Println("   Registered!")

	// Every call from here on is signed automatically.
	fmt.Println("\n4. Discovering a broker...")
	discovery, err := c.DiscoverBroker(ctx, protocol.BrokerDiscoveryRequest{
		TargetIdentifier: "legal-review",
	})
	if err != nil {
		log.Fatalf("Discovery failed: %v", err)
	}
	for _, broker := range discovery.Results {
		fmt.Printf("   Broker: %s (trust %.2f)\n", broker.BrokerAgentID, broker.BrokerTrustScore)
	}

	fmt.Println("\nDone.")
}
