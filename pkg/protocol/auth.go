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
	"encoding/base64"
	"strconv"
	"strings"

	"github.com/moltbridge/moltbridge-go/pkg/errors"
)

// Scheme is the fixed Authorization scheme tag identifying MoltBridge
// Ed25519 request signatures.
const Scheme = "MoltBridge-Ed25519"

// SigningString builds the exact bytes covered by a request signature:
//
//	method:path:timestamp:bodyDigest
//
// The four fields are colon-joined in fixed order. The digest is fixed-format
// hex and the timestamp is a minimal decimal integer, so no field can shift
// the field count.
func SigningString(method, path string, timestamp int64, bodyDigest string) string {
	return method + ":" + path + ":" + strconv.FormatInt(timestamp, 10) + ":" + bodyDigest
}

// Authorization is the parsed form of a MoltBridge Authorization header value:
//
//	MoltBridge-Ed25519 <agentID>:<unixTimestampSeconds>:<base64url signature>
//
// Exactly three colon-delimited fields follow the scheme tag and a single
// space. The signature is base64url with no padding.
type Authorization struct {
	// AgentID is the caller-chosen identity string.
	AgentID string

	// Timestamp is the signing time in Unix seconds.
	Timestamp int64

	// Signature is the decoded Ed25519 signature.
	Signature []byte
}

// FormatAuthorization renders the wire form of an Authorization header value.
func FormatAuthorization(agentID string, timestamp int64, signature []byte) string {
	return Scheme + " " + agentID + ":" +
		strconv.FormatInt(timestamp, 10) + ":" +
		base64.RawURLEncoding.EncodeToString(signature)
}

// ParseAuthorization parses an Authorization header value. All parse failures
// carry errors.CodeMalformedHeader.
func ParseAuthorization(header string) (*Authorization, error) {
	scheme, rest, found := strings.Cut(header, " ")
	if !found {
		return nil, errors.New(errors.CodeMalformedHeader, "missing scheme separator")
	}
	if scheme != Scheme {
		return nil, errors.Newf(errors.CodeMalformedHeader, "unexpected scheme %q", scheme)
	}

	fields := strings.Split(rest, ":")
	if len(fields) != 3 {
		return nil, errors.Newf(errors.CodeMalformedHeader, "expected 3 fields, got %d", len(fields))
	}

	agentID := fields[0]
	if agentID == "" {
		return nil, errors.New(errors.CodeMalformedHeader, "empty agent identifier")
	}

	timestamp, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return nil, errors.Newf(errors.CodeMalformedHeader, "invalid timestamp %q", fields[1])
	}

	signature, err := base64.RawURLEncoding.DecodeString(fields[2])
	if err != nil {
		return nil, errors.Newf(errors.CodeMalformedHeader, "invalid signature encoding: %v", err)
	}

	return &Authorization{
		AgentID:   agentID,
		Timestamp: timestamp,
		Signature: signature,
	}, nil
}
