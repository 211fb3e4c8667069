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
	"sync"

	"github.com/moltbridge/moltbridge-go/pkg/errors"
)

// PublicKeyResolver looks up the registered Ed25519 public key for an agent
// identifier. Resolution failure for an unregistered identifier must return
// errors.CodeUnknownAgent.
type PublicKeyResolver interface {
	ResolvePublicKey(ctx context.Context, agentID string) (ed25519.PublicKey, error)
}

// ResolverFunc adapts a function to the PublicKeyResolver interface.
type ResolverFunc func(ctx context.Context, agentID string) (ed25519.PublicKey, error)

// ResolvePublicKey calls f.
func (f ResolverFunc) ResolvePublicKey(ctx context.Context, agentID string) (ed25519.PublicKey, error) {
	return f(ctx, agentID)
}

// StaticResolver is an in-memory PublicKeyResolver. It is safe for concurrent
// use and is mainly useful in tests and single-process deployments.
type StaticResolver struct {
	mu   sync.RWMutex
	keys map[string]ed25519.PublicKey
}

// NewStaticResolver creates an empty StaticResolver.
func NewStaticResolver() *StaticResolver {
	return &StaticResolver{keys: make(map[string]ed25519.PublicKey)}
}

// Add registers or replaces the key for an agent identifier.
func (r *StaticResolver) Add(agentID string, key ed25519.PublicKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys[agentID] = key
}

// ResolvePublicKey returns the key for agentID, or CodeUnknownAgent.
func (r *StaticResolver) ResolvePublicKey(_ context.Context, agentID string) (ed25519.PublicKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	key, ok := r.keys[agentID]
	if !ok {
		return nil, errors.Newf(errors.CodeUnknownAgent, "no public key registered for agent %q", agentID)
	}
	return key, nil
}
