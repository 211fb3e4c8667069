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

package server

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/moltbridge/moltbridge-go/pkg/errors"
	"github.com/moltbridge/moltbridge-go/pkg/metrics"
	"github.com/moltbridge/moltbridge-go/pkg/verifier"
)

type contextKey string

const agentIDKey contextKey = "agent_id"

// ErrorHandler handles verification errors.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// AuthMiddleware verifies MoltBridge request signatures on incoming requests.
type AuthMiddleware struct {
	verifier     verifier.RequestVerifier
	errorHandler ErrorHandler
	optional     bool
}

// NewAuthMiddleware creates middleware around a request verifier.
func NewAuthMiddleware(v verifier.RequestVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:     v,
		errorHandler: defaultErrorHandler,
		optional:     false,
	}
}

// SetErrorHandler sets a custom error handler.
func (m *AuthMiddleware) SetErrorHandler(handler ErrorHandler) {
	m.errorHandler = handler
}

// SetOptional sets whether signature verification is optional.
// If true, requests without an Authorization header pass through without an
// agent identity in context.
func (m *AuthMiddleware) SetOptional(optional bool) {
	m.optional = optional
}

// Wrap wraps an HTTP handler with signature verification.
func (m *AuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip verification for OPTIONS requests (CORS preflight)
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		authorization := r.Header.Get("Authorization")
		if authorization == "" {
			if m.optional {
				next.ServeHTTP(w, r)
				return
			}
			metrics.ObserveVerification(string(errors.CodeMalformedHeader))
			m.errorHandler(w, r, errors.New(errors.CodeMalformedHeader, "missing Authorization header"))
			return
		}

		// Read the body so the digest can be recomputed, then restore it
		// for the handler.
		var bodyBytes []byte
		if r.Body != nil {
			bodyBytes, _ = io.ReadAll(r.Body)
			r.Body.Close()
		}
		r.Body = io.NopCloser(bytes.NewReader(bodyBytes))

		var body interface{}
		if len(bodyBytes) > 0 {
			decoder := json.NewDecoder(bytes.NewReader(bodyBytes))
			decoder.UseNumber()
			if err := decoder.Decode(&body); err != nil {
				metrics.ObserveVerification(string(errors.CodeValidation))
				m.errorHandler(w, r, errors.Newf(errors.CodeValidation, "request body is not valid JSON: %v", err))
				return
			}
		}

		// The signature covers the path with its query string.
		result, err := m.verifier.VerifyRequest(r.Context(), r.Method, r.URL.RequestURI(), body, authorization)
		if err != nil {
			var typed *errors.Error
			if stderrors.As(err, &typed) {
				metrics.ObserveVerification(string(typed.Code))
			} else {
				metrics.ObserveVerification(string(errors.CodeUnknown))
			}
			m.errorHandler(w, r, err)
			return
		}
		metrics.ObserveVerification("ok")

		ctx := context.WithValue(r.Context(), agentIDKey, result.AgentID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAgentIDFromContext extracts the authenticated agent ID from a request
// context.
func GetAgentIDFromContext(ctx context.Context) (string, bool) {
	agentID, ok := ctx.Value(agentIDKey).(string)
	return agentID, ok
}

// defaultErrorHandler answers with the structured error envelope.
func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	jsonError(w, err)
}
