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

package signer

import "context"

// RequestSigner produces MoltBridge Authorization header values for outgoing
// API requests.
type RequestSigner interface {
	// SignRequest signs a request with the current time and returns the
	// Authorization header value. The body is the value that will be JSON
	// encoded into the request; pass nil for bodiless requests.
	SignRequest(ctx context.Context, method, path string, body interface{}) (string, error)

	// SignRequestWithOptions signs a request with custom options.
	SignRequestWithOptions(ctx context.Context, method, path string, body interface{}, opts *SigningOptions) (string, error)

	// AgentID returns the identity the signatures are issued under.
	AgentID() string
}

// SigningOptions contains options for signing requests.
type SigningOptions struct {
	// Timestamp is the signing time as Unix seconds.
	// If 0, current time is used.
	Timestamp int64
}
