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
	"net/url"

	"github.com/moltbridge/moltbridge-go/pkg/protocol"
	"github.com/moltbridge/moltbridge-go/pkg/transport"
)

// Default discovery limits.
const (
	DefaultMaxHops         = 4
	DefaultBrokerResults   = 3
	DefaultCapabilityLimit = 10
)

// DiscoverBroker finds the best broker to reach a specific person or agent.
// Zero limits in the request fall back to the defaults.
func (c *Client) DiscoverBroker(ctx context.Context, req protocol.BrokerDiscoveryRequest) (*protocol.BrokerDiscoveryResponse, error) {
	if req.MaxHops == 0 {
		req.MaxHops = DefaultMaxHops
	}
	if req.MaxResults == 0 {
		req.MaxResults = DefaultBrokerResults
	}

	var resp protocol.BrokerDiscoveryResponse
	err := c.do(ctx, transport.Call{
		Method:       "POST",
		Path:         "/discover-broker",
		Body:         req,
		RequiresAuth: true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// DiscoverCapability finds agents matching capability requirements.
func (c *Client) DiscoverCapability(ctx context.Context, req protocol.CapabilityMatchRequest) (*protocol.CapabilityMatchResponse, error) {
	if req.MaxResults == 0 {
		req.MaxResults = DefaultCapabilityLimit
	}

	var resp protocol.CapabilityMatchResponse
	err := c.do(ctx, transport.Call{
		Method:       "POST",
		Path:         "/discover-capability",
		Body:         req,
		RequiresAuth: true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// CredibilityPacket generates a JWT-signed credibility proof for an
// introduction to target via broker.
func (c *Client) CredibilityPacket(ctx context.Context, target, broker string) (*protocol.CredibilityPacket, error) {
	query := url.Values{}
	query.Set("target", target)
	query.Set("broker", broker)

	var packet protocol.CredibilityPacket
	err := c.do(ctx, transport.Call{
		Method:       "GET",
		Path:         "/credibility-packet?" + query.Encode(),
		RequiresAuth: true,
	}, &packet)
	if err != nil {
		return nil, err
	}
	return &packet, nil
}

// AttestRequest describes an attestation about another agent.
type AttestRequest struct {
	// TargetAgentID is the agent being attested about.
	TargetAgentID string

	// Type is CAPABILITY, IDENTITY or INTERACTION. Defaults to INTERACTION.
	Type string

	// Confidence is the confidence level in [0, 1]. Defaults to 0.8.
	Confidence float64

	// CapabilityTag optionally names the specific capability attested.
	CapabilityTag string
}

// Attest submits an attestation about another agent.
func (c *Client) Attest(ctx context.Context, req AttestRequest) (*protocol.AttestationResult, error) {
	if req.Type == "" {
		req.Type = "INTERACTION"
	}
	if req.Confidence == 0 {
		req.Confidence = 0.8
	}

	body := map[string]interface{}{
		"target_agent_id":  req.TargetAgentID,
		"attestation_type": req.Type,
		"confidence":       req.Confidence,
	}
	if req.CapabilityTag != "" {
		body["capability_tag"] = req.CapabilityTag
	}

	var resp struct {
		Attestation      protocol.AttestationResult `json:"attestation"`
		TargetTrustScore float64                    `json:"target_trust_score"`
	}
	err := c.do(ctx, transport.Call{
		Method:       "POST",
		Path:         "/attest",
		Body:         body,
		RequiresAuth: true,
	}, &resp)
	if err != nil {
		return nil, err
	}

	result := resp.Attestation
	result.TargetTrustScore = resp.TargetTrustScore
	return &result, nil
}

// ReportOutcome reports the outcome of an introduction. The evidence type
// defaults to "requester_report".
func (c *Client) ReportOutcome(ctx context.Context, introductionID, status, evidenceType string) (map[string]interface{}, error) {
	if evidenceType == "" {
		evidenceType = "requester_report"
	}
	return c.getJSON(ctx, transport.Call{
		Method: "POST",
		Path:   "/report-outcome",
		Body: map[string]interface{}{
			"introduction_id": introductionID,
			"status":          status,
			"evidence_type":   evidenceType,
		},
		RequiresAuth: true,
	})
}

// IQSRequest describes an Introduction Quality Score evaluation.
type IQSRequest struct {
	TargetID              string
	RequesterCapabilities []string
	TargetCapabilities    []string
	BrokerSuccessCount    int
	BrokerTotalIntros     int
	Hops                  int
}

// EvaluateIQS gets Introduction Quality Score guidance. Requires prior
// GrantConsent("iqs_scoring").
func (c *Client) EvaluateIQS(ctx context.Context, req IQSRequest) (*protocol.IQSResult, error) {
	if req.Hops == 0 {
		req.Hops = 2
	}

	body := map[string]interface{}{
		"target_id": req.TargetID,
		"hops":      req.Hops,
	}
	if len(req.RequesterCapabilities) > 0 {
		body["requester_capabilities"] = req.RequesterCapabilities
	}
	if len(req.TargetCapabilities) > 0 {
		body["target_capabilities"] = req.TargetCapabilities
	}
	if req.BrokerSuccessCount > 0 {
		body["broker_success_count"] = req.BrokerSuccessCount
	}
	if req.BrokerTotalIntros > 0 {
		body["broker_total_intros"] = req.BrokerTotalIntros
	}

	var result protocol.IQSResult
	err := c.do(ctx, transport.Call{
		Method:       "POST",
		Path:         "/iqs/evaluate",
		Body:         body,
		RequiresAuth: true,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
