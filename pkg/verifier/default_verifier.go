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

package verifier

import (
	"context"
	"fmt"
	"time"

	"github.com/moltbridge/moltbridge-go/pkg/canonical"
	"github.com/moltbridge/moltbridge-go/pkg/crypt"
	"github.com/moltbridge/moltbridge-go/pkg/errors"
	"github.com/moltbridge/moltbridge-go/pkg/protocol"
)

// DefaultFreshnessWindow is how far a signed timestamp may deviate from the
// verifier's clock, in either direction, before the signature is rejected.
const DefaultFreshnessWindow = 5 * time.Minute

// DefaultVerifier implements RequestVerifier against a PublicKeyResolver.
//
// Verification order is fixed: parse, freshness, key resolution, signature.
// The freshness check runs before any cryptography so replayed headers are
// rejected cheaply.
type DefaultVerifier struct {
	resolver PublicKeyResolver
	window   time.Duration

	// now is stubbed in tests.
	now func() time.Time
}

// NewDefaultVerifier creates a verifier with the default freshness window.
func NewDefaultVerifier(resolver PublicKeyResolver) (*DefaultVerifier, error) {
	if resolver == nil {
		return nil, fmt.Errorf("resolver cannot be nil")
	}
	return &DefaultVerifier{
		resolver: resolver,
		window:   DefaultFreshnessWindow,
		now:      time.Now,
	}, nil
}

// SetFreshnessWindow overrides the accepted timestamp deviation.
func (v *DefaultVerifier) SetFreshnessWindow(window time.Duration) {
	v.window = window
}

// VerifyRequest checks an Authorization header against the request it covers.
func (v *DefaultVerifier) VerifyRequest(ctx context.Context, method, path string, body interface{}, authorization string) (*AuthResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	auth, err := protocol.ParseAuthorization(authorization)
	if err != nil {
		return nil, err
	}

	skew := v.now().Unix() - auth.Timestamp
	if skew < 0 {
		skew = -skew
	}
	if time.Duration(skew)*time.Second > v.window {
		return nil, errors.Newf(errors.CodeStaleTimestamp,
			"timestamp %d is outside the %s freshness window", auth.Timestamp, v.window)
	}

	publicKey, err := v.resolver.ResolvePublicKey(ctx, auth.AgentID)
	if err != nil {
		return nil, err
	}

	digest, err := canonical.BodyDigest(body)
	if err != nil {
		return nil, err
	}

	message := protocol.SigningString(method, path, auth.Timestamp, digest)
	if !crypt.Verify(publicKey, []byte(message), auth.Signature) {
		return nil, errors.Newf(errors.CodeSignatureMismatch,
			"signature does not verify for agent %q", auth.AgentID)
	}

	return &AuthResult{AgentID: auth.AgentID, Timestamp: auth.Timestamp}, nil
}
