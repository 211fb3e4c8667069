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

package server

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moltbridge/moltbridge-go/pkg/crypt"
	"github.com/moltbridge/moltbridge-go/pkg/errors"
	"github.com/moltbridge/moltbridge-go/pkg/protocol"
)

func testRegistration(t *testing.T, agentID string) (*protocol.Registration, *crypt.KeyPair) {
	t.Helper()

	keyPair, err := crypt.Generate()
	require.NoError(t, err)

	reg := protocol.NewRegistrationBuilder(agentID, keyPair.PublicKeyBase64()).
		WithCapabilities("translation").
		WithVerificationToken("token").
		Build()
	return reg, keyPair
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	reg, keyPair := testRegistration(t, "agent-1")

	agent, err := r.Register(reg)
	require.NoError(t, err)
	assert.Equal(t, "agent-1", agent.AgentID)
	assert.Equal(t, keyPair.PublicKeyBase64(), agent.PublicKeyB64)
	assert.False(t, agent.RegisteredAt.IsZero())

	got, err := r.Get("agent-1")
	require.NoError(t, err)
	assert.Equal(t, agent, got)
}

func TestRegistry_DuplicateIsConflict(t *testing.T) {
	r := NewRegistry()
	reg, _ := testRegistration(t, "agent-1")

	_, err := r.Register(reg)
	require.NoError(t, err)

	other, _ := testRegistration(t, "agent-1")
	_, err = r.Register(other)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeConflict))

	var typed *errors.Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, 409, typed.HTTPStatus())
}

func TestRegistry_InvalidPublicKey(t *testing.T) {
	r := NewRegistry()
	reg, _ := testRegistration(t, "agent-1")
	reg.PublicKey = "not base64!"

	_, err := r.Register(reg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeNotFound))
}

func TestRegistry_ResolvePublicKey(t *testing.T) {
	r := NewRegistry()
	reg, keyPair := testRegistration(t, "agent-1")

	_, err := r.Register(reg)
	require.NoError(t, err)

	key, err := r.ResolvePublicKey(context.Background(), "agent-1")
	require.NoError(t, err)
	assert.Equal(t, keyPair.Public(), key)

	_, err = r.ResolvePublicKey(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeUnknownAgent))
}
