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

package protocol

import (
	"encoding/json"
	"testing"

	"github.com/moltbridge/moltbridge-go/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationBuilder(t *testing.T) {
	reg := NewRegistrationBuilder("agent-1", "cHVia2V5").
		WithName("Agent One").
		WithPlatform("langchain").
		WithCapabilities("nlp").
		WithCapabilities("reasoning", "search").
		WithClusters("AI Research").
		WithVerificationToken("tok-123").
		WithA2AEndpoint("https://agent.example.com/card").
		Build()

	assert.Equal(t, "agent-1", reg.AgentID)
	assert.Equal(t, "Agent One", reg.Name)
	assert.Equal(t, "langchain", reg.Platform)
	assert.Equal(t, []string{"nlp", "reasoning", "search"}, reg.Capabilities)
	assert.Equal(t, []string{"AI Research"}, reg.Clusters)
	assert.True(t, reg.OmniscienceAcknowledged)
	assert.True(t, reg.Article22Consent)
	require.NoError(t, reg.Validate())
}

func TestRegistrationBuilder_Defaults(t *testing.T) {
	reg := NewRegistrationBuilder("agent-1", "cHVia2V5").Build()

	assert.Equal(t, "agent-1", reg.Name, "name defaults to agent id")
	assert.Equal(t, "custom", reg.Platform)
	assert.NotNil(t, reg.Capabilities)
	assert.NotNil(t, reg.Clusters)
}

func TestRegistrationValidate(t *testing.T) {
	valid := func() *Registration {
		return NewRegistrationBuilder("agent-1", "cHVia2V5").
			WithVerificationToken("tok").
			Build()
	}

	tests := []struct {
		name   string
		mutate func(*Registration)
	}{
		{"missing agent id", func(r *Registration) { r.AgentID = "" }},
		{"missing pubkey", func(r *Registration) { r.PublicKey = "" }},
		{"missing token", func(r *Registration) { r.VerificationToken = "" }},
		{"omniscience not acknowledged", func(r *Registration) { r.OmniscienceAcknowledged = false }},
		{"no article 22 consent", func(r *Registration) { r.Article22Consent = false }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid()
			tt.mutate(r)
			err := r.Validate()
			assert.True(t, errors.Is(err, errors.CodeValidation), "got %v", err)
		})
	}
}

func TestRegistrationJSONKeys(t *testing.T) {
	reg := NewRegistrationBuilder("agent-1", "cHVia2V5").
		WithVerificationToken("tok").
		Build()

	raw, err := json.Marshal(reg)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &m))

	for _, key := range []string{
		"agent_id", "name", "platform", "pubkey", "capabilities",
		"clusters", "verification_token", "omniscience_acknowledged", "article22_consent",
	} {
		assert.Contains(t, m, key)
	}
	assert.NotContains(t, m, "a2a_endpoint", "empty optional field is omitted")
}
