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

// Challenge is a proof-of-AI challenge issued by POST /verify.
type Challenge struct {
	// ChallengeID identifies the challenge for redemption.
	ChallengeID string `json:"challenge_id"`

	// Difficulty is the required number of leading zero hex characters.
	Difficulty int `json:"difficulty"`

	// Nonce is the random prefix hashed with the candidate counter.
	Nonce string `json:"nonce"`

	// ChallengeType names the challenge family. Currently always "sha256_pow".
	ChallengeType string `json:"challenge_type,omitempty"`

	// ExpiresAt is when the challenge stops being redeemable (RFC 3339).
	ExpiresAt string `json:"expires_at,omitempty"`
}

// ChallengeSolution is the redemption request for a solved challenge.
type ChallengeSolution struct {
	ChallengeID string `json:"challenge_id"`

	// ProofOfWork is the winning counter as a decimal string.
	ProofOfWork string `json:"proof_of_work"`
}

// VerificationResult is the outcome of proof-of-AI verification.
type VerificationResult struct {
	Verified bool `json:"verified"`

	// Token is presented during registration. Empty when not verified.
	Token string `json:"token,omitempty"`

	AgentID string `json:"agent_id,omitempty"`
	Level   string `json:"level,omitempty"`
}

// BrokerResult is a broker candidate from a discovery query.
type BrokerResult struct {
	BrokerAgentID    string   `json:"broker_agent_id"`
	BrokerName       string   `json:"broker_name"`
	BrokerTrustScore float64  `json:"broker_trust_score"`
	PathHops         int      `json:"path_hops"`
	ViaClusters      []string `json:"via_clusters,omitempty"`
	CompositeScore   float64  `json:"composite_score,omitempty"`
}

// BrokerDiscoveryResponse is the answer to POST /discover-broker.
type BrokerDiscoveryResponse struct {
	Results       []BrokerResult `json:"results"`
	QueryTimeMS   int            `json:"query_time_ms"`
	PathFound     bool           `json:"path_found"`
	Message       string         `json:"message,omitempty"`
	DiscoveryHint string         `json:"discovery_hint,omitempty"`
}

// BrokerDiscoveryRequest is the query body for POST /discover-broker.
type BrokerDiscoveryRequest struct {
	// TargetIdentifier is the name or ID of the person or agent to reach.
	TargetIdentifier string `json:"target_identifier"`

	MaxHops    int `json:"max_hops"`
	MaxResults int `json:"max_results"`
}

// CapabilityMatch is an agent matching capability requirements.
type CapabilityMatch struct {
	AgentID             string   `json:"agent_id"`
	AgentName           string   `json:"agent_name"`
	TrustScore          float64  `json:"trust_score"`
	MatchedCapabilities []string `json:"matched_capabilities,omitempty"`
	MatchScore          float64  `json:"match_score,omitempty"`
}

// CapabilityMatchResponse is the answer to POST /discover-capability.
type CapabilityMatchResponse struct {
	Results       []CapabilityMatch `json:"results"`
	QueryTimeMS   int               `json:"query_time_ms"`
	DiscoveryHint string            `json:"discovery_hint,omitempty"`
}

// CapabilityMatchRequest is the query body for POST /discover-capability.
type CapabilityMatchRequest struct {
	Capabilities  []string `json:"capabilities"`
	MinTrustScore float64  `json:"min_trust_score"`
	MaxResults    int      `json:"max_results"`
}

// CredibilityPacket is a JWT-signed credibility proof for an introduction.
type CredibilityPacket struct {
	// Packet is the JWS compact serialization of the proof.
	Packet string `json:"packet"`

	// ExpiresIn is the remaining validity in seconds.
	ExpiresIn int `json:"expires_in"`

	// VerifyURL is where a counterparty can check the packet.
	VerifyURL string `json:"verify_url"`
}

// ConsentRecord is a single consent grant or withdrawal.
type ConsentRecord struct {
	Purpose     string `json:"purpose"`
	Granted     bool   `json:"granted"`
	GrantedAt   string `json:"granted_at,omitempty"`
	WithdrawnAt string `json:"withdrawn_at,omitempty"`
	Mechanism   string `json:"mechanism,omitempty"`
}

// ConsentStatus is the current consent state for all purposes.
type ConsentStatus struct {
	Consents     map[string]ConsentRecord `json:"consents"`
	Descriptions map[string]string        `json:"descriptions,omitempty"`
}

// AgentBalance is a payment account balance.
type AgentBalance struct {
	AgentID        string  `json:"agent_id"`
	Balance        float64 `json:"balance"`
	BrokerTier     string  `json:"broker_tier"`
	CommissionRate float64 `json:"commission_rate"`
}

// LedgerEntry is a single payment ledger entry.
type LedgerEntry struct {
	ID           string  `json:"id"`
	AgentID      string  `json:"agent_id"`
	Type         string  `json:"type"`
	Amount       float64 `json:"amount"`
	Description  string  `json:"description"`
	Timestamp    string  `json:"timestamp"`
	BalanceAfter float64 `json:"balance_after"`
}

// IQSResult is an Introduction Quality Score evaluation. The score is
// band-based rather than numeric so callers cannot use it as an oracle.
type IQSResult struct {
	// Band is "low", "medium" or "high".
	Band string `json:"band"`

	Recommendation     string  `json:"recommendation"`
	ThresholdUsed      float64 `json:"threshold_used"`
	ComponentsReceived bool    `json:"components_received"`
}

// WebhookRegistration is a registered webhook endpoint.
type WebhookRegistration struct {
	EndpointURL string   `json:"endpoint_url"`
	EventTypes  []string `json:"event_types"`
	Active      bool     `json:"active"`

	// Secret signs webhook deliveries. Only returned on creation.
	Secret string `json:"secret,omitempty"`
}

// AttestationResult is the recorded form of a submitted attestation.
type AttestationResult struct {
	Source     string  `json:"source"`
	Target     string  `json:"target"`
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
	CreatedAt  string  `json:"created_at"`
	ValidUntil string  `json:"valid_until"`

	// TargetTrustScore is the target's trust score after the attestation
	// was applied.
	TargetTrustScore float64 `json:"target_trust_score,omitempty"`
}
