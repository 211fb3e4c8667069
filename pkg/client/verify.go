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

package client

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/moltbridge/moltbridge-go/pkg/errors"
	"github.com/moltbridge/moltbridge-go/pkg/metrics"
	"github.com/moltbridge/moltbridge-go/pkg/pow"
	"github.com/moltbridge/moltbridge-go/pkg/protocol"
	"github.com/moltbridge/moltbridge-go/pkg/transport"
)

// Verify completes the proof-of-AI verification challenge.
//
// The flow is request challenge, solve the SHA-256 proof of work locally,
// redeem the solution. The resulting token is kept on the client and used by
// Register; it is also returned for callers that persist it themselves.
func (c *Client) Verify(ctx context.Context) (*protocol.VerificationResult, error) {
	raw, err := c.exec.Do(ctx, transport.Call{
		Method: "POST",
		Path:   "/verify",
		Body:   map[string]interface{}{},
	})
	if err != nil {
		return nil, err
	}

	// The server may short-circuit for already verified callers.
	var first struct {
		Verified bool   `json:"verified"`
		Token    string `json:"token"`
		protocol.Challenge
	}
	if err := json.Unmarshal(raw, &first); err != nil {
		return nil, err
	}
	if first.Verified {
		c.verificationToken = first.Token
		return &protocol.VerificationResult{Verified: true, Token: first.Token}, nil
	}

	started := time.Now()
	counter, err := pow.Solve(ctx, first.Nonce, first.Difficulty, 0)
	if err != nil {
		return nil, err
	}
	metrics.ObservePoWSolve(strconv.Itoa(first.Difficulty),
		float64(time.Since(started).Milliseconds()))

	var result protocol.VerificationResult
	err = c.do(ctx, transport.Call{
		Method: "POST",
		Path:   "/verify",
		Body: protocol.ChallengeSolution{
			ChallengeID: first.ChallengeID,
			ProofOfWork: strconv.FormatUint(counter, 10),
		},
	}, &result)
	if err != nil {
		return nil, err
	}

	c.verificationToken = result.Token
	return &result, nil
}

// Register enrolls this agent on MoltBridge. Blank identity fields are filled
// from the client: agent ID, public key and the token earned by Verify.
func (c *Client) Register(ctx context.Context, reg *protocol.Registration) (map[string]interface{}, error) {
	if c.signer == nil {
		return nil, errors.New(errors.CodeNoAuth, "cannot register: no agent identity configured")
	}
	if reg == nil {
		reg = protocol.NewRegistrationBuilder(c.signer.AgentID(), c.signer.PublicKeyBase64()).Build()
	}
	if reg.AgentID == "" {
		reg.AgentID = c.signer.AgentID()
	}
	if reg.Name == "" {
		reg.Name = reg.AgentID
	}
	if reg.PublicKey == "" {
		reg.PublicKey = c.signer.PublicKeyBase64()
	}
	if reg.VerificationToken == "" {
		if c.verificationToken == "" {
			return nil, errors.New(errors.CodeValidation,
				"cannot register: call Verify first to complete proof-of-AI")
		}
		reg.VerificationToken = c.verificationToken
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	return c.getJSON(ctx, transport.Call{
		Method: "POST",
		Path:   "/register",
		Body:   reg,
	})
}

// ProfileUpdate holds the mutable profile fields. Nil slices and empty
// strings are omitted from the request.
type ProfileUpdate struct {
	Capabilities []string
	Clusters     []string
	A2AEndpoint  string
}

// UpdateProfile updates the agent profile. Authenticated.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (map[string]interface{}, error) {
	body := map[string]interface{}{}
	if update.Capabilities != nil {
		body["capabilities"] = update.Capabilities
	}
	if update.Clusters != nil {
		body["clusters"] = update.Clusters
	}
	if update.A2AEndpoint != "" {
		body["a2a_endpoint"] = update.A2AEndpoint
	}

	return c.getJSON(ctx, transport.Call{
		Method:       "PUT",
		Path:         "/profile",
		Body:         body,
		RequiresAuth: true,
	})
}
