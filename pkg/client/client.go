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
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/moltbridge/moltbridge-go/pkg/crypt"
	"github.com/moltbridge/moltbridge-go/pkg/signer"
	"github.com/moltbridge/moltbridge-go/pkg/transport"
	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.moltbridge.ai"

// Environment variables consulted when options are not given explicitly.
const (
	EnvBaseURL    = "MOLTBRIDGE_BASE_URL"
	EnvAgentID    = "MOLTBRIDGE_AGENT_ID"
	EnvSigningKey = "MOLTBRIDGE_SIGNING_KEY"
)

// Client is the MoltBridge SDK client: a thin wrapper around the REST API
// with Ed25519 signing, proof-of-AI verification, retry logic and typed
// responses.
//
// A Client without an identity can still call the unauthenticated endpoints
// (Health, Pricing, Verify, Register); authenticated calls fail with NO_AUTH.
type Client struct {
	exec   *transport.Executor
	signer *signer.DefaultSigner

	// verificationToken is set by Verify and consumed by Register.
	verificationToken string
}

type clientConfig struct {
	baseURL    string
	agentID    string
	signingKey string
	httpClient *http.Client
	timeout    time.Duration
	maxRetries int
	log        *logrus.Entry
}

// Option configures a Client.
type Option func(*clientConfig)

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *clientConfig) { c.baseURL = baseURL }
}

// WithAgentID sets the agent identity.
func WithAgentID(agentID string) Option {
	return func(c *clientConfig) { c.agentID = agentID }
}

// WithSigningKeyHex sets the hex-encoded Ed25519 seed.
func WithSigningKeyHex(seedHex string) Option {
	return func(c *clientConfig) { c.signingKey = seedHex }
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *clientConfig) { c.httpClient = httpClient }
}

// WithTimeout sets the per-attempt request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) { c.timeout = timeout }
}

// WithMaxRetries sets the total attempt budget for transport failures.
func WithMaxRetries(retries int) Option {
	return func(c *clientConfig) { c.maxRetries = retries }
}

// WithLogger replaces the structured logger.
func WithLogger(log *logrus.Entry) Option {
	return func(c *clientConfig) { c.log = log }
}

// New creates a Client. Unset options fall back to the MOLTBRIDGE_BASE_URL,
// MOLTBRIDGE_AGENT_ID and MOLTBRIDGE_SIGNING_KEY environment variables.
//
// An agent ID without a signing key gets a freshly generated key pair; the
// agent should persist the seed (SigningKeyHex) to keep its identity.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		timeout:    transport.DefaultAttemptTimeout,
		maxRetries: transport.DefaultMaxRetries,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.baseURL == "" {
		cfg.baseURL = os.Getenv(EnvBaseURL)
	}
	if cfg.baseURL == "" {
		cfg.baseURL = DefaultBaseURL
	}
	if cfg.agentID == "" {
		cfg.agentID = os.Getenv(EnvAgentID)
	}
	if cfg.signingKey == "" {
		cfg.signingKey = os.Getenv(EnvSigningKey)
	}
	if cfg.log == nil {
		cfg.log = logrus.NewEntry(logrus.StandardLogger())
	}

	c := &Client{}

	switch {
	case cfg.agentID != "" && cfg.signingKey != "":
		s, err := signer.NewDefaultSignerFromSeedHex(cfg.agentID, cfg.signingKey)
		if err != nil {
			return nil, err
		}
		c.signer = s
	case cfg.agentID != "":
		keyPair, err := crypt.Generate()
		if err != nil {
			return nil, err
		}
		s, err := signer.NewDefaultSigner(cfg.agentID, keyPair)
		if err != nil {
			return nil, err
		}
		c.signer = s
		cfg.log.WithField("agent_id", cfg.agentID).
			Warn("generated a new signing key; persist SigningKeyHex() to keep this identity")
	}

	execOpts := []transport.Option{
		transport.WithMaxRetries(cfg.maxRetries),
		transport.WithAttemptTimeout(cfg.timeout),
		transport.WithLogger(cfg.log),
	}
	if cfg.httpClient != nil {
		execOpts = append(execOpts, transport.WithHTTPClient(cfg.httpClient))
	}
	if c.signer != nil {
		execOpts = append(execOpts, transport.WithSigner(c.signer))
	}
	c.exec = transport.NewExecutor(cfg.baseURL, execOpts...)

	return c, nil
}

// AgentID returns the configured identity, empty when none.
func (c *Client) AgentID() string {
	if c.signer == nil {
		return ""
	}
	return c.signer.AgentID()
}

// PublicKeyBase64 returns the public key submitted during registration,
// empty when no identity is configured.
func (c *Client) PublicKeyBase64() string {
	if c.signer == nil {
		return ""
	}
	return c.signer.PublicKeyBase64()
}

// SigningKeyHex returns the hex seed of the signing key for persistence,
// empty when no identity is configured.
func (c *Client) SigningKeyHex() string {
	if c.signer == nil {
		return ""
	}
	return c.signer.SeedHex()
}

// VerificationToken returns the token from the last successful Verify call.
func (c *Client) VerificationToken() string {
	return c.verificationToken
}

// Health checks API server health. No authentication, no retries.
func (c *Client) Health(ctx context.Context) (map[string]interface{}, error) {
	return c.getJSON(ctx, transport.Call{Method: "GET", Path: "/health", MaxRetries: 1})
}

// Pricing returns current pricing. No authentication, no retries.
func (c *Client) Pricing(ctx context.Context) (map[string]interface{}, error) {
	return c.getJSON(ctx, transport.Call{Method: "GET", Path: "/payments/pricing", MaxRetries: 1})
}

// getJSON runs a call and decodes the response into a generic map.
func (c *Client) getJSON(ctx context.Context, call transport.Call) (map[string]interface{}, error) {
	raw, err := c.exec.Do(ctx, call)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// do runs a call and decodes the response into out when out is non-nil.
func (c *Client) do(ctx context.Context, call transport.Call, out interface{}) error {
	raw, err := c.exec.Do(ctx, call)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(raw, out)
}
