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
	"crypto/ed25519"
	"testing"
	"time"

	"github.com/moltbridge/moltbridge-go/pkg/crypt"
	"github.com/moltbridge/moltbridge-go/pkg/errors"
	"github.com/moltbridge/moltbridge-go/pkg/signer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow is the reference clock all test signatures are issued against.
const fixedNow = int64(1700000000)

type verifyFixture struct {
	signer   *signer.DefaultSigner
	verifier *DefaultVerifier
}

func newVerifyFixture(t *testing.T) *verifyFixture {
	t.Helper()

	keyPair, err := crypt.Generate()
	require.NoError(t, err)

	s, err := signer.NewDefaultSigner("test-agent", keyPair)
	require.NoError(t, err)

	resolver := NewStaticResolver()
	resolver.Add("test-agent", keyPair.Public())

	v, err := NewDefaultVerifier(resolver)
	require.NoError(t, err)
	v.now = func() time.Time { return time.Unix(fixedNow, 0) }

	return &verifyFixture{signer: s, verifier: v}
}

func (f *verifyFixture) sign(t *testing.T, method, path string, body interface{}, timestamp int64) string {
	t.Helper()
	header, err := f.signer.SignRequestWithOptions(context.Background(), method, path, body,
		&signer.SigningOptions{Timestamp: timestamp})
	require.NoError(t, err)
	return header
}

func TestVerifyRequest_Success(t *testing.T) {
	f := newVerifyFixture(t)
	body := map[string]interface{}{"target_identifier": "Peter Diamandis"}
	header := f.sign(t, "POST", "/discover-broker", body, fixedNow)

	result, err := f.verifier.VerifyRequest(context.Background(), "POST", "/discover-broker", body, header)
	require.NoError(t, err)
	assert.Equal(t, "test-agent", result.AgentID)
	assert.Equal(t, fixedNow, result.Timestamp)
}

func TestVerifyRequest_NoBody(t *testing.T) {
	f := newVerifyFixture(t)
	header := f.sign(t, "GET", "/payments/balance", nil, fixedNow)

	_, err := f.verifier.VerifyRequest(context.Background(), "GET", "/payments/balance", nil, header)
	assert.NoError(t, err)
}

func TestVerifyRequest_MalformedHeader(t *testing.T) {
	f := newVerifyFixture(t)

	_, err := f.verifier.VerifyRequest(context.Background(), "GET", "/health", nil, "Bearer nope")
	assert.True(t, errors.Is(err, errors.CodeMalformedHeader), "got %v", err)
}

func TestVerifyRequest_Freshness(t *testing.T) {
	f := newVerifyFixture(t)

	tests := []struct {
		name      string
		timestamp int64
		wantErr   bool
	}{
		{"exact now", fixedNow, false},
		{"edge of window past", fixedNow - 300, false},
		{"edge of window future", fixedNow + 300, false},
		{"just beyond past", fixedNow - 301, true},
		{"just beyond future", fixedNow + 301, true},
		{"far in the past", fixedNow - 86400, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := f.sign(t, "GET", "/health", nil, tt.timestamp)
			_, err := f.verifier.VerifyRequest(context.Background(), "GET", "/health", nil, header)
			if tt.wantErr {
				assert.True(t, errors.Is(err, errors.CodeStaleTimestamp), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVerifyRequest_TightenedWindow(t *testing.T) {
	f := newVerifyFixture(t)
	f.verifier.SetFreshnessWindow(10 * time.Second)

	header := f.sign(t, "GET", "/health", nil, fixedNow-30)
	_, err := f.verifier.VerifyRequest(context.Background(), "GET", "/health", nil, header)
	assert.True(t, errors.Is(err, errors.CodeStaleTimestamp))
}

func TestVerifyRequest_UnknownAgent(t *testing.T) {
	f := newVerifyFixture(t)

	other, err := crypt.Generate()
	require.NoError(t, err)
	stranger, err := signer.NewDefaultSigner("stranger", other)
	require.NoError(t, err)

	header, err := stranger.SignRequestWithOptions(context.Background(), "GET", "/health", nil,
		&signer.SigningOptions{Timestamp: fixedNow})
	require.NoError(t, err)

	_, err = f.verifier.VerifyRequest(context.Background(), "GET", "/health", nil, header)
	assert.True(t, errors.Is(err, errors.CodeUnknownAgent), "got %v", err)
}

func TestVerifyRequest_Mismatches(t *testing.T) {
	f := newVerifyFixture(t)
	body := map[string]interface{}{"purpose": "iqs_scoring"}
	header := f.sign(t, "POST", "/consent/grant", body, fixedNow)
	ctx := context.Background()

	_, err := f.verifier.VerifyRequest(ctx, "PUT", "/consent/grant", body, header)
	assert.True(t, errors.Is(err, errors.CodeSignatureMismatch), "method swap: %v", err)

	_, err = f.verifier.VerifyRequest(ctx, "POST", "/consent/withdraw", body, header)
	assert.True(t, errors.Is(err, errors.CodeSignatureMismatch), "path swap: %v", err)

	_, err = f.verifier.VerifyRequest(ctx, "POST", "/consent/grant",
		map[string]interface{}{"purpose": "profiling"}, header)
	assert.True(t, errors.Is(err, errors.CodeSignatureMismatch), "body swap: %v", err)
}

func TestVerifyRequest_WrongKey(t *testing.T) {
	f := newVerifyFixture(t)

	// Re-register the agent under a different key, as after a key rotation.
	rotated, err := crypt.Generate()
	require.NoError(t, err)
	resolver := NewStaticResolver()
	resolver.Add("test-agent", rotated.Public())

	v, err := NewDefaultVerifier(resolver)
	require.NoError(t, err)
	v.now = func() time.Time { return time.Unix(fixedNow, 0) }

	header := f.sign(t, "GET", "/health", nil, fixedNow)
	_, err = v.VerifyRequest(context.Background(), "GET", "/health", nil, header)
	assert.True(t, errors.Is(err, errors.CodeSignatureMismatch))
}

func TestVerifyRequest_BodyPresenceMatters(t *testing.T) {
	f := newVerifyFixture(t)
	ctx := context.Background()

	// Signed without a body, verified against a null body: the digests of
	// absent and null differ, so verification must fail.
	header := f.sign(t, "POST", "/verify", nil, fixedNow)
	var nullBody interface{} // decoded JSON "null"
	_, err := f.verifier.VerifyRequest(ctx, "POST", "/verify", nullBody, header)
	assert.NoError(t, err, "untyped nil is still an absent body")

	headerWithBody := f.sign(t, "POST", "/verify", map[string]interface{}{}, fixedNow)
	_, err = f.verifier.VerifyRequest(ctx, "POST", "/verify", nil, headerWithBody)
	assert.True(t, errors.Is(err, errors.CodeSignatureMismatch))
}

func TestResolverFunc(t *testing.T) {
	keyPair, err := crypt.Generate()
	require.NoError(t, err)

	var captured string
	resolver := ResolverFunc(func(_ context.Context, agentID string) (ed25519.PublicKey, error) {
		captured = agentID
		return keyPair.Public(), nil
	})

	pub, err := resolver.ResolvePublicKey(context.Background(), "some-agent")
	require.NoError(t, err)
	assert.Equal(t, keyPair.Public(), pub)
	assert.Equal(t, "some-agent", captured)
}
