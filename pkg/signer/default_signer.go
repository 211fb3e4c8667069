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

package signer

import (
	"context"
	"fmt"
	"time"

	"github.com/moltbridge/moltbridge-go/pkg/canonical"
	"github.com/moltbridge/moltbridge-go/pkg/crypt"
	"github.com/moltbridge/moltbridge-go/pkg/protocol"
)

// DefaultSigner implements RequestSigner with an Ed25519 key pair held in
// memory. A signature covers the method, path, timestamp and the canonical
// body digest, so any change to the request after signing invalidates it.
type DefaultSigner struct {
	agentID string
	keyPair *crypt.KeyPair
}

// NewDefaultSigner creates a signer for the given identity and key pair.
func NewDefaultSigner(agentID string, keyPair *crypt.KeyPair) (*DefaultSigner, error) {
	if agentID == "" {
		return nil, fmt.Errorf("agent ID cannot be empty")
	}
	if keyPair == nil {
		return nil, fmt.Errorf("key pair cannot be nil")
	}
	return &DefaultSigner{agentID: agentID, keyPair: keyPair}, nil
}

// NewDefaultSignerFromSeedHex creates a signer from a hex-encoded 32-byte
// seed, the format of the MOLTBRIDGE_SIGNING_KEY environment variable.
func NewDefaultSignerFromSeedHex(agentID, seedHex string) (*DefaultSigner, error) {
	keyPair, err := crypt.FromSeedHex(seedHex)
	if err != nil {
		return nil, err
	}
	return NewDefaultSigner(agentID, keyPair)
}

// SignRequest signs a request with the current time.
func (s *DefaultSigner) SignRequest(ctx context.Context, method, path string, body interface{}) (string, error) {
	return s.SignRequestWithOptions(ctx, method, path, body, nil)
}

// SignRequestWithOptions signs a request with custom options.
func (s *DefaultSigner) SignRequestWithOptions(ctx context.Context, method, path string, body interface{}, opts *SigningOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}
	if method == "" {
		return "", fmt.Errorf("method cannot be empty")
	}
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}

	if opts == nil {
		opts = &SigningOptions{}
	}
	timestamp := opts.Timestamp
	if timestamp == 0 {
		timestamp = time.Now().Unix()
	}

	digest, err := canonical.BodyDigest(body)
	if err != nil {
		return "", fmt.Errorf("failed to digest body: %w", err)
	}

	message := protocol.SigningString(method, path, timestamp, digest)
	signature := s.keyPair.Sign([]byte(message))

	return protocol.FormatAuthorization(s.agentID, timestamp, signature), nil
}

// AgentID returns the identity the signatures are issued under.
func (s *DefaultSigner) AgentID() string {
	return s.agentID
}

// PublicKeyBase64 returns the public key as unpadded base64url, the encoding
// submitted during registration.
func (s *DefaultSigner) PublicKeyBase64() string {
	return s.keyPair.PublicKeyBase64()
}

// SeedHex returns the private seed as hex for persistence.
func (s *DefaultSigner) SeedHex() string {
	return s.keyPair.SeedHex()
}
