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

package transport

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/moltbridge/moltbridge-go/pkg/errors"
	"github.com/moltbridge/moltbridge-go/pkg/metrics"
	"github.com/moltbridge/moltbridge-go/pkg/signer"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultMaxRetries is the total attempt budget per call.
	DefaultMaxRetries = 3

	// DefaultAttemptTimeout bounds each individual attempt.
	DefaultAttemptTimeout = 30 * time.Second
)

// defaultBackoff is the wait schedule between attempts. Attempts beyond the
// schedule reuse the last entry.
var defaultBackoff = []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}

// Call describes one API request.
type Call struct {
	// Method is the HTTP method.
	Method string

	// Path is the request path including any query string. The signature
	// covers it verbatim, so the server must see the same bytes.
	Path string

	// Body is the value JSON-encoded into the request body, nil for none.
	Body interface{}

	// RequiresAuth marks the call as needing a signed Authorization header.
	RequiresAuth bool

	// MaxRetries overrides the executor's attempt budget when positive.
	MaxRetries int
}

// Executor sends API calls with signing and retry.
//
// Transport failures are retried with backoff; every retry attempt is signed
// freshly so a slow backoff schedule can never push a signature outside the
// server's freshness window. Structured API errors (any HTTP status >= 400)
// consume the response and are never retried.
type Executor struct {
	baseURL        string
	signer         signer.RequestSigner
	httpClient     *http.Client
	maxRetries     int
	attemptTimeout time.Duration
	backoff        []time.Duration
	log            *logrus.Entry

	// sleep is stubbed in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewExecutor creates an Executor for the given API base URL.
func NewExecutor(baseURL string, opts ...Option) *Executor {
	e := &Executor{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     http.DefaultClient,
		maxRetries:     DefaultMaxRetries,
		attemptTimeout: DefaultAttemptTimeout,
		backoff:        defaultBackoff,
		log:            logrus.NewEntry(logrus.StandardLogger()),
		sleep:          sleepContext,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Do executes a call and returns the raw response body.
//
// A call that requires authentication fails with errors.CodeNoAuth before any
// network traffic when no signer is configured. When every attempt fails at
// the transport level the returned error carries errors.CodeConnectionError.
func (e *Executor) Do(ctx context.Context, call Call) (json.RawMessage, error) {
	if call.Method == "" || call.Path == "" {
		return nil, fmt.Errorf("method and path cannot be empty")
	}
	if call.RequiresAuth && e.signer == nil {
		return nil, errors.New(errors.CodeNoAuth,
			"authentication required but no agent identity configured; "+
				"set MOLTBRIDGE_AGENT_ID and MOLTBRIDGE_SIGNING_KEY")
	}

	retries := call.MaxRetries
	if retries <= 0 {
		retries = e.maxRetries
	}

	var bodyBytes []byte
	if call.Body != nil {
		var err error
		bodyBytes, err = json.Marshal(call.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	started := time.Now()
	var lastErr error
	for attempt := 0; attempt < retries; attempt++ {
		if attempt > 0 {
			wait := e.backoff[min(attempt-1, len(e.backoff)-1)]
			e.log.WithFields(logrus.Fields{
				"method":  call.Method,
				"path":    call.Path,
				"attempt": attempt + 1,
				"wait":    wait,
			}).Warn("retrying after transport failure")
			metrics.ObserveRetry(call.Method, call.Path)
			if err := e.sleep(ctx, wait); err != nil {
				return nil, err
			}
		}

		result, err := e.attempt(ctx, call, bodyBytes)
		if err == nil {
			e.observe(call, "ok", started)
			return result, nil
		}

		// Structured API errors and local failures are final; only
		// transport-level failures are worth another attempt.
		var typed *errors.Error
		if stderrors.As(err, &typed) {
			e.observe(call, string(typed.Code), started)
			return nil, err
		}
		lastErr = err
	}

	e.observe(call, string(errors.CodeConnectionError), started)
	return nil, errors.Newf(errors.CodeConnectionError,
		"connection failed after %d attempts: %v", retries, lastErr)
}

// attempt runs one signed request. The Authorization header is built inside
// so every attempt carries a fresh timestamp and signature.
func (e *Executor) attempt(ctx context.Context, call Call, bodyBytes []byte) (json.RawMessage, error) {
	attemptCtx := ctx
	if e.attemptTimeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, e.attemptTimeout)
		defer cancel()
	}

	var reader io.Reader
	if bodyBytes != nil {
		reader = bytes.NewReader(bodyBytes)
	}
	req, err := http.NewRequestWithContext(attemptCtx, call.Method, e.baseURL+call.Path, reader)
	if err != nil {
		return nil, errors.Newf(errors.CodeValidation, "failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if call.RequiresAuth {
		header, err := e.signer.SignRequest(attemptCtx, call.Method, call.Path, call.Body)
		if err != nil {
			return nil, errors.Newf(errors.CodeInvalidKeyMaterial, "failed to sign request: %v", err)
		}
		req.Header.Set("Authorization", header)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		// Plain error, retryable by the caller.
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		apiErr := errors.FromResponse(resp.StatusCode, respBody)
		if after := resp.Header.Get("Retry-After"); after != "" {
			if seconds, err := strconv.Atoi(after); err == nil {
				apiErr.RetryAfter = seconds
			}
		}
		return nil, apiErr
	}

	return json.RawMessage(respBody), nil
}

func (e *Executor) observe(call Call, outcome string, started time.Time) {
	metrics.ObserveRequest(call.Method, call.Path, outcome, float64(time.Since(started).Milliseconds()))
}

// sleepContext waits for d or until the context is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
