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

// Package errors defines the typed failure taxonomy shared by the MoltBridge
// client, signer, verifier and server packages.
//
// Every failure carries a machine-readable code and a human-readable message.
// Remote structured errors map 1:1 from HTTP status; local failures use the
// protocol codes below. No failure is ever downgraded to an empty result.
package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// Code identifies a class of SDK failure.
type Code string

// Local protocol failure codes.
const (
	// CodeInvalidKeyMaterial means the signing seed is malformed. Fatal,
	// raised once at signer construction.
	CodeInvalidKeyMaterial Code = "INVALID_KEY_MATERIAL"

	// CodeNoAuth means an authenticated call was attempted without a
	// configured identity. Programmer error, never retried.
	CodeNoAuth Code = "NO_AUTH"

	// CodeMalformedHeader means the Authorization header did not parse.
	CodeMalformedHeader Code = "MALFORMED_HEADER"

	// CodeStaleTimestamp means the signed timestamp fell outside the
	// verifier's freshness window.
	CodeStaleTimestamp Code = "STALE_TIMESTAMP"

	// CodeUnknownAgent means no public key is registered for the claimed
	// agent identifier.
	CodeUnknownAgent Code = "UNKNOWN_AGENT"

	// CodeSignatureMismatch means the signature did not verify against the
	// recomputed signing material.
	CodeSignatureMismatch Code = "SIGNATURE_MISMATCH"

	// CodeChallengeExhausted means the proof-of-work solver hit its
	// iteration ceiling without finding a solution.
	CodeChallengeExhausted Code = "CHALLENGE_EXHAUSTED"

	// CodeConnectionError means the transport failed on every attempt of
	// the retry budget.
	CodeConnectionError Code = "CONNECTION_ERROR"
)

// Codes derived from remote structured error responses.
const (
	CodeValidation     Code = "VALIDATION"
	CodeAuthentication Code = "AUTHENTICATION"
	CodeNotFound       Code = "NOT_FOUND"
	CodeConflict       Code = "CONFLICT"
	CodeRateLimit      Code = "RATE_LIMIT"
	CodeUnavailable    Code = "SERVICE_UNAVAILABLE"
	CodeUnknown        Code = "UNKNOWN"
)

// Error is a typed MoltBridge failure.
type Error struct {
	// Code is the machine-readable failure class.
	Code Code

	// Message is the human-readable description.
	Message string

	// StatusCode is the originating HTTP status for remote errors, zero for
	// local failures.
	StatusCode int

	// RetryAfter is the server-suggested backoff in seconds. Only set on
	// rate-limit responses.
	RetryAfter int
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("moltbridge: %s (%d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("moltbridge: %s: %s", e.Code, e.Message)
}

// HTTPStatus returns the HTTP status a server should answer with for this
// error. Local authentication failures map to 401; everything else without a
// remote status maps to 500.
func (e *Error) HTTPStatus() int {
	if e.StatusCode != 0 {
		return e.StatusCode
	}
	switch e.Code {
	case CodeMalformedHeader, CodeStaleTimestamp, CodeUnknownAgent, CodeSignatureMismatch:
		return http.StatusUnauthorized
	case CodeValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WithStatus sets the HTTP status and returns the error.
func (e *Error) WithStatus(status int) *Error {
	e.StatusCode = status
	return e
}

// New returns a typed error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf is New with fmt.Sprintf formatting.
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err is a *Error carrying the given code.
func Is(err error, code Code) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsAuthFailure reports whether err is one of the four authentication failure
// kinds. Callers should treat them as a single unauthenticated outcome; the
// correct client response is to re-sign, never to replay the same signature.
func IsAuthFailure(err error) bool {
	var e *Error
	if !stderrors.As(err, &e) {
		return false
	}
	switch e.Code {
	case CodeMalformedHeader, CodeStaleTimestamp, CodeUnknownAgent, CodeSignatureMismatch:
		return true
	}
	return false
}

// remoteErrorBody is the structured error envelope returned by the API:
// {"error": {"message": "...", "code": "..."}}
type remoteErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

// FromResponse maps a remote error response to a typed error. The code from
// the response body wins when present; otherwise the code derives from the
// HTTP status. Responses without a parseable envelope keep the raw text as
// the message.
func FromResponse(status int, body []byte) *Error {
	message := "Unknown error"
	code := codeForStatus(status)

	var envelope remoteErrorBody
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		message = envelope.Error.Message
		if envelope.Error.Code != "" {
			code = Code(envelope.Error.Code)
		}
	} else if len(body) > 0 {
		message = string(body)
	}

	return &Error{Code: code, Message: message, StatusCode: status}
}

func codeForStatus(status int) Code {
	switch status {
	case http.StatusBadRequest:
		return CodeValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		return CodeAuthentication
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	case http.StatusTooManyRequests:
		return CodeRateLimit
	case http.StatusServiceUnavailable:
		return CodeUnavailable
	default:
		return CodeUnknown
	}
}
