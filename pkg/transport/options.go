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
	"net/http"
	"time"

	"github.com/moltbridge/moltbridge-go/pkg/signer"
	"github.com/sirupsen/logrus"
)

// Option configures an Executor.
type Option func(*Executor)

// WithHTTPClient replaces the HTTP client. Nil keeps the default.
func WithHTTPClient(client *http.Client) Option {
	return func(e *Executor) {
		if client != nil {
			e.httpClient = client
		}
	}
}

// WithSigner attaches the identity used to sign authenticated calls.
func WithSigner(s signer.RequestSigner) Option {
	return func(e *Executor) {
		e.signer = s
	}
}

// WithMaxRetries sets the default total attempt budget per call.
func WithMaxRetries(retries int) Option {
	return func(e *Executor) {
		if retries > 0 {
			e.maxRetries = retries
		}
	}
}

// WithAttemptTimeout bounds each individual attempt. Zero disables the
// per-attempt timeout, leaving only the caller's context.
func WithAttemptTimeout(timeout time.Duration) Option {
	return func(e *Executor) {
		e.attemptTimeout = timeout
	}
}

// WithBackoffSchedule replaces the wait schedule between attempts. Attempts
// beyond the schedule reuse the last entry.
func WithBackoffSchedule(schedule []time.Duration) Option {
	return func(e *Executor) {
		if len(schedule) > 0 {
			e.backoff = schedule
		}
	}
}

// WithLogger replaces the structured logger.
func WithLogger(log *logrus.Entry) Option {
	return func(e *Executor) {
		if log != nil {
			e.log = log
		}
	}
}
