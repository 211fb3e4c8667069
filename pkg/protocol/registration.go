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

import "github.com/moltbridge/moltbridge-go/pkg/errors"

// Registration is the enrollment document submitted to POST /register.
// A registration binds an agent identifier to an Ed25519 public key; all
// later requests from that identifier must verify against this key.
type Registration struct {
	// AgentID is the caller-chosen identity string.
	AgentID string `json:"agent_id"`

	// Name is the display name. Defaults to the agent identifier.
	Name string `json:"name"`

	// Platform identifies the hosting platform, e.g. "custom".
	Platform string `json:"platform"`

	// PublicKey is the Ed25519 public key as unpadded base64url.
	PublicKey string `json:"pubkey"`

	// Capabilities lists capability tags, e.g. "nlp", "reasoning".
	Capabilities []string `json:"capabilities"`

	// Clusters lists cluster names to join, e.g. "AI Research".
	Clusters []string `json:"clusters"`

	// VerificationToken is the token earned by solving a proof-of-AI
	// challenge. Registration without one is rejected.
	VerificationToken string `json:"verification_token"`

	// OmniscienceAcknowledged acknowledges the operational visibility
	// disclosure. Must be true.
	OmniscienceAcknowledged bool `json:"omniscience_acknowledged"`

	// Article22Consent is GDPR Article 22 consent to automated
	// introduction scoring. Must be true.
	Article22Consent bool `json:"article22_consent"`

	// A2AEndpoint is an optional agent card URL for A2A interop.
	A2AEndpoint string `json:"a2a_endpoint,omitempty"`
}

// RegistrationBuilder constructs Registrations with a fluent API.
type RegistrationBuilder struct {
	reg *Registration
}

// NewRegistrationBuilder starts a registration for the given identity.
// Both consent flags default to true; name defaults to the agent identifier.
func NewRegistrationBuilder(agentID, publicKeyBase64 string) *RegistrationBuilder {
	return &RegistrationBuilder{
		reg: &Registration{
			AgentID:                 agentID,
			Name:                    agentID,
			Platform:                "custom",
			PublicKey:               publicKeyBase64,
			Capabilities:            []string{},
			Clusters:                []string{},
			OmniscienceAcknowledged: true,
			Article22Consent:        true,
		},
	}
}

// WithName sets the display name.
func (b *RegistrationBuilder) WithName(name string) *RegistrationBuilder {
	b.reg.Name = name
	return b
}

// WithPlatform sets the platform identifier.
func (b *RegistrationBuilder) WithPlatform(platform string) *RegistrationBuilder {
	b.reg.Platform = platform
	return b
}

// WithCapabilities appends capability tags.
func (b *RegistrationBuilder) WithCapabilities(capabilities ...string) *RegistrationBuilder {
	b.reg.Capabilities = append(b.reg.Capabilities, capabilities...)
	return b
}

// WithClusters appends cluster names.
func (b *RegistrationBuilder) WithClusters(clusters ...string) *RegistrationBuilder {
	b.reg.Clusters = append(b.reg.Clusters, clusters...)
	return b
}

// WithVerificationToken attaches the proof-of-AI token.
func (b *RegistrationBuilder) WithVerificationToken(token string) *RegistrationBuilder {
	b.reg.VerificationToken = token
	return b
}

// WithA2AEndpoint sets the optional agent card URL.
func (b *RegistrationBuilder) WithA2AEndpoint(endpoint string) *RegistrationBuilder {
	b.reg.A2AEndpoint = endpoint
	return b
}

// Build returns the constructed Registration.
func (b *RegistrationBuilder) Build() *Registration {
	return b.reg
}

// Validate checks the registration for the fields the API requires.
func (r *Registration) Validate() error {
	if r.AgentID == "" {
		return errors.New(errors.CodeValidation, "agent_id is required")
	}
	if r.PublicKey == "" {
		return errors.New(errors.CodeValidation, "pubkey is required")
	}
	if r.VerificationToken == "" {
		return errors.New(errors.CodeValidation, "verification_token is required")
	}
	if !r.OmniscienceAcknowledged {
		return errors.New(errors.CodeValidation, "omniscience_acknowledged must be true")
	}
	if !r.Article22Consent {
		return errors.New(errors.CodeValidation, "article22_consent must be true")
	}
	return nil
}
