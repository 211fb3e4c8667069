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

// Package server implements the server side of the MoltBridge authentication
// protocol: an agent registry, a proof-of-AI challenge service, and HTTP
// middleware that verifies Ed25519 request signatures.
//
// # Middleware
//
// AuthMiddleware recomputes the signing material from the incoming request and
// checks the Authorization header against the registered public key:
//
//	registry := server.NewRegistry()
//	v, _ := verifier.NewDefaultVerifier(registry)
//	middleware := server.NewAuthMiddleware(v)
//
//	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	    agentID, _ := server.GetAgentIDFromContext(r.Context())
//	    fmt.Fprintf(w, "authenticated as %s", agentID)
//	})
//
//	http.Handle("/api/", middleware.Wrap(handler))
//
// The middleware preserves the request body for downstream handlers, skips
// CORS preflight (OPTIONS) requests, and supports an optional mode in which
// unsigned requests pass through unauthenticated.
//
// # Full server
//
// Server ties the registry, the challenge service and the middleware together
// behind a gorilla/mux router:
//
//	challenges, _ := server.NewChallengeService(secret, 0)
//	srv := &server.Server{
//	    Registry:   server.NewRegistry(),
//	    Challenges: challenges,
//	}
//	httpSrv, _ := srv.New()
//	httpSrv.ListenAndServe()
//
// POST /verify issues a challenge when the body carries no challenge_id and
// redeems a solution otherwise. POST /register consumes the verification token
// and enrolls the agent's public key, which immediately authorizes its
// signatures on authenticated routes.
package server
