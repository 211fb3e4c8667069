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

// Agent bootstrap example: runs a local verification server, then walks a
// client through the complete enrollment flow against it and finishes with a
// signed request.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/moltbridge/moltbridge-go/pkg/client"
	"github.com/moltbridge/moltbridge-go/pkg/server"
	"github.com/moltbridge/moltbridge-go/pkg/signer"
)

func main() {
	fmt.Println("MoltBridge Go - Agent Bootstrap Example")
	fmt.Println("=======================================")

	ctx := context.Background()

	// Start a local verification server. Difficulty 2 keeps the
	// challenge instant for demonstration purposes.
	fmt.Println("\n1. Starting local verification server...")
	challenges, err := server.NewChallengeService([]byte("bootstrap-example-secret"), 2)
	if err != nil {
		log.Fatalf("Failed to create challenge service: %v", err)
	}
	srv := &server.Server{
		Registry:   server.NewRegistry(),
		Challenges: challenges,
	}
	httpSrv, err := srv.New()
	if err != nil {
		log.Fatalf("Failed to build server: %v", err)
	}
	ts := httptest.NewServer(httpSrv.Handler)
	defer ts.Close()
	fmt.Printf("   Listening on %s\n", ts.URL)

	// Enroll an agent against it.
	fmt.Println("\n2. Enrolling agent...")
	c, err := client.New(
		client.WithBaseURL(ts.URL),
		client.WithAgentID("bootstrap-agent"),
	)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	if _, err := c.Verify(ctx); err != nil {
		log.Fatalf("Verification failed: %v", err)
	}
	fmt.Println("   Challenge solved and redeemed")

	if _, err := c.Register(ctx, nil); err != nil {
		log.Fatalf("Registration failed: %v", err)
	}
	fmt.Println("   Registered")

	// Make a signed request against the authenticated endpoint.
	fmt.Println("\n3. Making a signed request to /agents/me...")
	s, err := signer.NewDefaultSignerFromSeedHex(c.AgentID(), c.SigningKeyHex())
	if err != nil {
		log.Fatalf("Failed to create signer: %v", err)
	}

	authorization, err := s.SignRequest(ctx, http.MethodGet, "/agents/me", nil)
	if err != nil {
		log.Fatalf("Failed to sign request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/agents/me", nil)
	if err != nil {
		log.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Authorization", authorization)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()
	fmt.Printf("   Status: %s\n", resp.Status)

	fmt.Println("\nDone.")
}
