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
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/moltbridge/moltbridge-go/pkg/errors"
	"github.com/moltbridge/moltbridge-go/pkg/pow"
	"github.com/moltbridge/moltbridge-go/pkg/protocol"
	"github.com/segmentio/ksuid"
)

const (
	// DefaultChallengeDifficulty is the required number of leading zero hex
	// characters. Five is minutes of work for a human, milliseconds for a
	// program.
	DefaultChallengeDifficulty = 5

	// challengeTTL is how long an issued challenge stays redeemable.
	challengeTTL = 5 * time.Minute

	// tokenTTL is how long a verification token stays usable for
	// registration.
	tokenTTL = 1 * time.Hour
)

type issuedChallenge struct {
	nonce      string
	difficulty int
	expiresAt  time.Time
	redeemed   bool
}

// ChallengeService issues and redeems proof-of-AI challenges. Redeemed
// challenges yield a signed verification token consumed during registration.
type ChallengeService struct {
	secret     []byte
	difficulty int

	mu         sync.Mutex
	challenges map[string]*issuedChallenge

	// now is stubbed in tests.
	now func() time.Time
}

// NewChallengeService creates a service signing tokens with secret.
func NewChallengeService(secret []byte, difficulty int) (*ChallengeService, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("token secret cannot be empty")
	}
	if difficulty <= 0 {
		difficulty = DefaultChallengeDifficulty
	}
	return &ChallengeService{
		secret:     secret,
		difficulty: difficulty,
		challenges: make(map[string]*issuedChallenge),
		now:        time.Now,
	}, nil
}

// Issue creates a fresh challenge. Entries whose TTL has elapsed are purged
// on the way, so abandoned challenges cannot grow the map unboundedly.
func (s *ChallengeService) Issue() (*protocol.Challenge, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}

	id := ksuid.New().String()
	nonce := hex.EncodeToString(raw)
	now := s.now()
	expiresAt := now.Add(challengeTTL)

	s.mu.Lock()
	s.purgeExpired(now)
	s.challenges[id] = &issuedChallenge{
		nonce:      nonce,
		difficulty: s.difficulty,
		expiresAt:  expiresAt,
	}
	s.mu.Unlock()

	return &protocol.Challenge{
		ChallengeID:   id,
		Difficulty:    s.difficulty,
		Nonce:         nonce,
		ChallengeType: "sha256_pow",
		ExpiresAt:     expiresAt.UTC().Format(time.RFC3339),
	}, nil
}

// purgeExpired drops challenges past their TTL. Caller must hold s.mu.
func (s *ChallengeService) purgeExpired(now time.Time) {
	for id, challenge := range s.challenges {
		if now.After(challenge.expiresAt) {
			delete(s.challenges, id)
		}
	}
}

// Redeem validates a solution and returns a verification token. A challenge
// redeems at most once; expired or unknown challenges fail validation.
func (s *ChallengeService) Redeem(challengeID, proof string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	challenge, ok := s.challenges[challengeID]
	if !ok {
		return "", errors.Newf(errors.CodeValidation, "unknown challenge %q", challengeID)
	}
	if challenge.redeemed {
		return "", errors.Newf(errors.CodeValidation, "challenge %q was already redeemed", challengeID)
	}
	if s.now().After(challenge.expiresAt) {
		delete(s.challenges, challengeID)
		return "", errors.Newf(errors.CodeValidation, "challenge %q has expired", challengeID)
	}

	// Checking a proof is a single hash, cheap enough to hold the lock.
	if !pow.Verify(challenge.nonce, proof, challenge.difficulty) {
		return "", errors.New(errors.CodeValidation, "proof of work does not solve the challenge")
	}
	challenge.redeemed = true
	difficulty := challenge.difficulty

	now := s.now()
	claims := jwt.MapClaims{
		"jti": challengeID,
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
		"pow": difficulty,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken checks a verification token's signature and expiry.
func (s *ChallengeService) ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return errors.Newf(errors.CodeValidation, "invalid verification token: %v", err)
	}
	if !token.Valid {
		return errors.New(errors.CodeValidation, "invalid verification token")
	}
	return nil
}
