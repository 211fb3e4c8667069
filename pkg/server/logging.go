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

// Logging middleware inspired by github.com/urfave/negroni

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) Status() int {
	return rw.status
}

func (rw *responseWriter) WriteHeader(s int) {
	rw.status = s
	rw.ResponseWriter.WriteHeader(s)
}

func (rw *responseWriter) Write(data []byte) (int, error) {
	if rw.status == 0 {
		rw.status = http.StatusOK
	}
	return rw.ResponseWriter.Write(data)
}

// Logging is a logrus-enabled logging middleware.
type Logging struct {
	Logger *log.Logger
}

func (l *Logging) log() *log.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return log.StandardLogger()
}

// Handler wraps provided http.Handler with middleware.
func (l *Logging) Handler(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		timestamp := time.Now()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)

		rw := &responseWriter{ResponseWriter: w}
		h.ServeHTTP(rw, r)

		fields := log.Fields{
			"request_id": requestID,
			"duration":   time.Since(timestamp),
			"status":     rw.Status(),
			"hostname":   r.Host,
			"method":     r.Method,
			"path":       r.URL.Path,
		}
		if agentID, ok := GetAgentIDFromContext(r.Context()); ok {
			fields["agent_id"] = agentID
		}

		l.log().WithFields(fields).Println(r.Method + " " + r.URL.Path)
	})
}
