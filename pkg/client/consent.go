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

// ConsentStatus returns the current consent state for all purposes.
func (c *Client) ConsentStatus(ctx context.Context) (*protocol.ConsentStatus, error) {
	var status protocol.ConsentStatus
	err := c.do(ctx, transport.Call{
		Method:       "GET",
		Path:         "/consent",
		RequiresAuth: true,
	}, &status)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// GrantConsent grants consent for a purpose: iqs_scoring, data_sharing or
// profiling.
func (c *Client) GrantConsent(ctx context.Context, purpose string) (*protocol.ConsentRecord, error) {
	return c.consentCall(ctx, "/consent/grant", purpose)
}

// WithdrawConsent withdraws consent for a purpose.
func (c *Client) WithdrawConsent(ctx context.Context, purpose string) (*protocol.ConsentRecord, error) {
	return c.consentCall(ctx, "/consent/withdraw", purpose)
}

func (c *Client) consentCall(ctx context.Context, path, purpose string) (*protocol.ConsentRecord, error) {
	var resp struct {
		Consent protocol.ConsentRecord `json:"consent"`
	}
	err := c.do(ctx, transport.Call{
		Method:       "POST",
		Path:         path,
		Body:         map[string]interface{}{"purpose": purpose},
		RequiresAuth: true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.Consent, nil
}

// ExportConsentData exports all consent data (GDPR Article 20).
func (c *Client) ExportConsentData(ctx context.Context) (map[string]interface{}, error) {
	return c.getJSON(ctx, transport.Call{
		Method:       "GET",
		Path:         "/consent/export",
		RequiresAuth: true,
	})
}

// EraseConsentData erases all consent data (GDPR Article 17).
func (c *Client) EraseConsentData(ctx context.Context) (map[string]interface{}, error) {
	return c.getJSON(ctx, transport.Call{
		Method:       "DELETE",
		Path:         "/consent/erase",
		RequiresAuth: true,
	})
}
