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
	"crypto/ed25519"
	"sync"
	"time"

	"github.com/moltbridge/moltbridge-go/pkg/crypt"
	"github.com/moltbridge/moltbridge-go/pkg/errors"
	"github.com/moltbridge/moltbridge-go/pkg/protocol"
)

// RegisteredAgent is an enrolled agent with its verification key.
type RegisteredAgent struct {
	AgentID      string            `json:"agent_id"`
	Name         string            `json:"name"`
	Platform     string            `json:"platform"`
	PublicKey    ed25519.PublicKey `json:"-"`
	PublicKeyB64 string            `json:"pubkey"`
	Capabilities []string          `json:"capabilities"`
	Clusters     []string          `json:"clusters"`
	A2AEndpoint  string            `json:"a2a_endpoint,omitempty"`
	RegisteredAt time.Time         `json:"registered_at"`
}

// Registry is an in-memory agent registry. It doubles as the verifier's
// PublicKeyResolver, so a registration immediately authorizes signatures
// under the registered key.
type Registry struct {
	mu     sync.RWMutex
	agents map[string]*RegisteredAgent
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{agents: make(map[string]*RegisteredAgent)}
}

// Register enrolls an agent. Identifiers are claimed first come, first
// served: registering an already taken identifier is a conflict.
func (r *Registry) Register(reg *protocol.Registration) (*RegisteredAgent, error) {
	publicKey, err := crypt.ParsePublicKeyBase64(reg.PublicKey)
	if err != nil {
		return nil, errors.Newf(errors.CodeValidation, "invalid public key: %v", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.agents[reg.AgentID]; exists {
		return nil, errors.Newf(errors.CodeConflict, "agent %q is already registered", reg.AgentID).
			WithStatus(409)
	}

	agent := &RegisteredAgent{
		AgentID:      reg.AgentID,
		Name:         reg.Name,
		Platform:     reg.Platform,
		PublicKey:    publicKey,
		PublicKeyB64: reg.PublicKey,
		Capabilities: reg.Capabilities,
		Clusters:     reg.Clusters,
		A2AEndpoint:  reg.A2AEndpoint,
		RegisteredAt: time.Now().UTC(),
	}
	r.agents[reg.AgentID] = agent
	return agent, nil
}

// Get returns a registered agent, or CodeNotFound.
func (r *Registry) Get(agentID string) (*RegisteredAgent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	agent, ok := r.agents[agentID]
	if !ok {
		return nil, errors.Newf(errors.CodeNotFound, "agent %q is not registered", agentID).
			WithStatus(404)
	}
	return agent, nil
}

// ResolvePublicKey implements verifier.PublicKeyResolver.
func (r *Registry) ResolvePublicKey(_ context.Context, agentID string) (ed25519.PublicKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	agent, ok := r.agents[agentID]
	if !ok {
		return nil, errors.Newf(errors.CodeUnknownAgent, "no public key registered for agent %q", agentID)
	}
	return agent.PublicKey, nil
}
