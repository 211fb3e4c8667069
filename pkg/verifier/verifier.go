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

package verifier

import "context"

// RequestVerifier checks MoltBridge request signatures on the server side.
type RequestVerifier interface {
	// VerifyRequest checks the Authorization header value against the
	// request it claims to cover. The body is the decoded JSON value of
	// the request body, nil when the body is absent. On success the
	// result identifies the authenticated agent.
	VerifyRequest(ctx context.Context, method, path string, body interface{}, authorization string) (*AuthResult, error)
}

// AuthResult is the identity established by a verified signature.
type AuthResult struct {
	// AgentID is the authenticated agent identifier.
	AgentID string

	// Timestamp is the signing time the signature was issued at,
	// as Unix seconds.
	Timestamp int64
}
