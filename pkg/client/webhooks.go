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

	"github.com/moltbridge/moltbridge-go/pkg/protocol"
	"github.com/moltbridge/moltbridge-go/pkg/transport"
)

// RegisterWebhook registers a webhook endpoint for event notifications. The
// returned registration carries the delivery secret; it is only revealed
// here.
func (c *Client) RegisterWebhook(ctx context.Context, endpointURL string, eventTypes []string) (*protocol.WebhookRegistration, error) {
	var resp struct {
		Registration protocol.WebhookRegistration `json:"registration"`
		Secret       string                       `json:"secret"`
	}
	err := c.do(ctx, transport.Call{
		Method: "POST",
		Path:   "/webhooks/register",
		Body: map[string]interface{}{
			"endpoint_url": endpointURL,
			"event_types":  eventTypes,
		},
		RequiresAuth: true,
	}, &resp)
	if err != nil {
		return nil, err
	}

	registration := resp.Registration
	registration.Secret = resp.Secret
	return &registration, nil
}

// ListWebhooks lists all registered webhooks.
func (c *Client) ListWebhooks(ctx context.Context) ([]protocol.WebhookRegistration, error) {
	var resp struct {
		Registrations []protocol.WebhookRegistration `json:"registrations"`
	}
	err := c.do(ctx, transport.Call{
		Method:       "GET",
		Path:         "/webhooks",
		RequiresAuth: true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Registrations, nil
}

// UnregisterWebhook removes a webhook registration. Returns whether an
// endpoint was actually removed.
func (c *Client) UnregisterWebhook(ctx context.Context, endpointURL string) (bool, error) {
	var resp struct {
		Removed bool `json:"removed"`
	}
	err := c.do(ctx, transport.Call{
		Method:       "DELETE",
		Path:         "/webhooks/unregister",
		Body:         map[string]interface{}{"endpoint_url": endpointURL},
		RequiresAuth: true,
	}, &resp)
	if err != nil {
		return false, err
	}
	return resp.Removed, nil
}
