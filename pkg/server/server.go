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
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/moltbridge/moltbridge-go/pkg/errors"
	"github.com/moltbridge/moltbridge-go/pkg/metrics"
	"github.com/moltbridge/moltbridge-go/pkg/protocol"
	"github.com/moltbridge/moltbridge-go/pkg/verifier"
	log "github.com/sirupsen/logrus"

	moltbridge "github.com/moltbridge/moltbridge-go"
)

const defaultAddr = ":8090"

// Server is the verification endpoint of the trust-graph API: it issues and
// redeems proof-of-AI challenges, enrolls agents, and authenticates signed
// requests against the registry.
type Server struct {
	Registry   *Registry
	Challenges *ChallengeService
	Address    string
	Logger     log.FieldLogger

	// FreshnessWindow overrides the verifier's default when non-zero.
	FreshnessWindow time.Duration
}

func (s *Server) logger() log.FieldLogger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.StandardLogger()
}

func (s *Server) healthHandler(w http.ResponseWriter, _ *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": moltbridge.Version,
	})
}

// verifyHandler serves both halves of the proof-of-AI flow: an empty body
// requests a fresh challenge, a body with a challenge_id redeems one.
func (s *Server) verifyHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var solution protocol.ChallengeSolution
	if err := json.NewDecoder(r.Body).Decode(&solution); err != nil && err != io.EOF {
		jsonError(w, errors.Newf(errors.CodeValidation, "request body is not valid JSON: %v", err))
		return
	}

	if solution.ChallengeID == "" {
		challenge, err := s.Challenges.Issue()
		if err != nil {
			s.logger().Errorf("failed to issue challenge: %v", err)
			jsonError(w, err)
			return
		}
		jsonResponse(w, http.StatusOK, challenge)
		return
	}

	token, err := s.Challenges.Redeem(solution.ChallengeID, solution.ProofOfWork)
	if err != nil {
		jsonError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, protocol.VerificationResult{Verified: true, Token: token})
}

func (s *Server) registerHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var reg protocol.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		jsonError(w, errors.Newf(errors.CodeValidation, "request body is not valid JSON: %v", err))
		return
	}
	if err := reg.Validate(); err != nil {
		jsonError(w, err)
		return
	}
	if err := s.Challenges.ValidateToken(reg.VerificationToken); err != nil {
		jsonError(w, err)
		return
	}

	agent, err := s.Registry.Register(&reg)
	if err != nil {
		jsonError(w, err)
		return
	}

	s.logger().WithFields(log.Fields{
		"agent_id": agent.AgentID,
		"platform": agent.Platform,
	}).Info("agent registered")

	jsonResponse(w, http.StatusCreated, map[string]interface{}{
		"registered": true,
		"agent":      agent,
	})
}

func (s *Server) getKeyHandler(w http.ResponseWriter, r *http.Request) {
	agentID := mux.Vars(r)["id"]

	agent, err := s.Registry.Get(agentID)
	if err != nil {
		jsonError(w, err)
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{
		"agent_id": agent.AgentID,
		"pubkey":   agent.PublicKeyB64,
	})
}

// meHandler answers with the caller's own registration. It sits behind the
// auth middleware, so reaching it at all proves the signature verified.
func (s *Server) meHandler(w http.ResponseWriter, r *http.Request) {
	agentID, ok := GetAgentIDFromContext(r.Context())
	if !ok {
		jsonError(w, errors.New(errors.CodeAuthentication, "no authenticated agent").WithStatus(401))
		return
	}

	agent, err := s.Registry.Get(agentID)
	if err != nil {
		jsonError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, agent)
}

// New returns a new http server with registered routes.
func (s *Server) New() (*http.Server, error) {
	if s.Registry == nil {
		return nil, stderrors.New("server: Registry is required")
	}
	if s.Challenges == nil {
		return nil, stderrors.New("server: Challenges is required")
	}

	v, err := verifier.NewDefaultVerifier(s.Registry)
	if err != nil {
		return nil, err
	}
	if s.FreshnessWindow > 0 {
		v.SetFreshnessWindow(s.FreshnessWindow)
	}
	auth := NewAuthMiddleware(v)

	r := mux.NewRouter()
	r.Use((&Logging{}).Handler)

	r.Methods("GET").Path("/health").HandlerFunc(s.healthHandler)
	r.Methods("GET").Path("/metrics").Handler(metrics.Handler)
	r.Methods("POST").Path("/verify").HandlerFunc(s.verifyHandler)
	r.Methods("POST").Path("/register").HandlerFunc(s.registerHandler)
	r.Methods("GET").Path("/agents/{id}/key").HandlerFunc(s.getKeyHandler)
	r.Methods("GET").Path("/agents/me").Handler(auth.Wrap(http.HandlerFunc(s.meHandler)))

	addr := s.Address
	if addr == "" {
		addr = defaultAddr
	}

	return &http.Server{
		Handler: r,
		Addr:    addr,
	}, nil
}
