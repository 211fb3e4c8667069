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
	"strconv"

	"github.com/moltbridge/moltbridge-go/pkg/protocol"
	"github.com/moltbridge/moltbridge-go/pkg/transport"
)

// CreatePaymentAccount creates a payment account. Tier is founding, early or
// standard; blank defaults to standard.
func (c *Client) CreatePaymentAccount(ctx context.Context, tier string) (map[string]interface{}, error) {
	if tier == "" {
		tier = "standard"
	}
	return c.getJSON(ctx, transport.Call{
		Method:       "POST",
		Path:         "/payments/account",
		Body:         map[string]interface{}{"tier": tier},
		RequiresAuth: true,
	})
}

// Balance returns the current account balance.
func (c *Client) Balance(ctx context.Context) (*protocol.AgentBalance, error) {
	var resp struct {
		Balance protocol.AgentBalance `json:"balance"`
	}
	err := c.do(ctx, transport.Call{
		Method:       "GET",
		Path:         "/payments/balance",
		RequiresAuth: true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.Balance, nil
}

// Deposit deposits funds and returns the resulting ledger entry.
func (c *Client) Deposit(ctx context.Context, amount float64) (*protocol.LedgerEntry, error) {
	var resp struct {
		Entry protocol.LedgerEntry `json:"entry"`
	}
	err := c.do(ctx, transport.Call{
		Method:       "POST",
		Path:         "/payments/deposit",
		Body:         map[string]interface{}{"amount": amount},
		RequiresAuth: true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.Entry, nil
}

// PaymentHistory returns the transaction history, newest first. A zero limit
// defaults to 50 entries.
func (c *Client) PaymentHistory(ctx context.Context, limit int) ([]protocol.LedgerEntry, error) {
	if limit == 0 {
		limit = 50
	}
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	var resp struct {
		History []protocol.LedgerEntry `json:"history"`
	}
	err := c.do(ctx, transport.Call{
		Method:       "GET",
		Path:         "/payments/history?" + query.Encode(),
		RequiresAuth: true,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.History, nil
}
