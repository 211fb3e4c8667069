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
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moltbridge/moltbridge-go/pkg/errors"
	"github.com/moltbridge/moltbridge-go/pkg/pow"
)

// testDifficulty keeps solving cheap in tests.
const testDifficulty = 2

func newTestChallengeService(t *testing.T) *ChallengeService {
	t.Helper()
	s, err := NewChallengeService([]byte("test-secret"), testDifficulty)
	require.NoError(t, err)
	return s
}

// solveChallenge runs the real solver against an issued challenge.
func solveChallenge(t *testing.T, s *ChallengeService) (challengeID, proof string) {
	t.Helper()

	challenge, err := s.Issue()
	require.NoError(t, err)
	require.Equal(t, "sha256_pow", challenge.ChallengeType)
	require.Equal(t, testDifficulty, challenge.Difficulty)
	require.NotEmpty(t, challenge.Nonce)

	counter, err := pow.Solve(context.Background(), challenge.Nonce, challenge.Difficulty, pow.DefaultMaxIterations)
	require.NoError(t, err)
	return challenge.ChallengeID, strconv.FormatUint(counter, 10)
}

func TestChallengeService_IssueAndRedeem(t *testing.T) {
	s := newTestChallengeService(t)

	challengeID, proof := solveChallenge(t, s)

	token, err := s.Redeem(challengeID, proof)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, s.ValidateToken(token))
}

func TestChallengeService_RedeemOnce(t *testing.T) {
	s := newTestChallengeService(t)

	challengeID, proof := solveChallenge(t, s)

	_, err := s.Redeem(challengeID, proof)
	require.NoError(t, err)

	_, err = s.Redeem(challengeID, proof)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestChallengeService_WrongProof(t *testing.T) {
	s := newTestChallengeService(t)

	challenge, err := s.Issue()
	require.NoError(t, err)

	_, err = s.Redeem(challenge.ChallengeID, "0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeValidation))

	// A failed redemption must not consume the challenge.
	counter, err := pow.Solve(context.Background(), challenge.Nonce, challenge.Difficulty, pow.DefaultMaxIterations)
	require.NoError(t, err)
	_, err = s.Redeem(challenge.ChallengeID, strconv.FormatUint(counter, 10))
	assert.NoError(t, err)
}

func TestChallengeService_UnknownChallenge(t *testing.T) {
	s := newTestChallengeService(t)

	_, err := s.Redeem("no-such-challenge", "42")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestChallengeService_ExpiredChallenge(t *testing.T) {
	s := newTestChallengeService(t)

	challengeID, proof := solveChallenge(t, s)

	s.now = func() time.Time { return time.Now().Add(challengeTTL + time.Second) }

	_, err := s.Redeem(challengeID, proof)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestChallengeService_ExpiredToken(t *testing.T) {
	s := newTestChallengeService(t)

	challengeID, proof := solveChallenge(t, s)
	token, err := s.Redeem(challengeID, proof)
	require.NoError(t, err)

	s.now = func() time.Time { return time.Now().Add(tokenTTL + time.Minute) }

	err = s.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestChallengeService_AbandonedChallengesPurged(t *testing.T) {
	s := newTestChallengeService(t)

	for i := 0; i < 100; i++ {
		_, err := s.Issue()
		require.NoError(t, err)
	}

	s.mu.Lock()
	before := len(s.challenges)
	s.mu.Unlock()
	require.Equal(t, 100, before)

	// Nobody redeems them. Once the TTL elapses the next Issue must sweep
	// them out rather than let the map grow without bound.
	s.now = func() time.Time { return time.Now().Add(challengeTTL + time.Second) }

	challenge, err := s.Issue()
	require.NoError(t, err)

	s.mu.Lock()
	after := len(s.challenges)
	_, fresh := s.challenges[challenge.ChallengeID]
	s.mu.Unlock()

	assert.Equal(t, 1, after)
	assert.True(t, fresh)
}

func TestChallengeService_ForeignToken(t *testing.T) {
	s := newTestChallengeService(t)

	other, err := NewChallengeService([]byte("different-secret"), testDifficulty)
	require.NoError(t, err)

	challengeID, proof := solveChallenge(t, other)
	token, err := other.Redeem(challengeID, proof)
	require.NoError(t, err)

	err = s.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestNewChallengeService_EmptySecret(t *testing.T) {
	_, err := NewChallengeService(nil, testDifficulty)
	assert.Error(t, err)
}

func TestNewChallengeService_DefaultDifficulty(t *testing.T) {
	s, err := NewChallengeService([]byte("test-secret"), 0)
	require.NoError(t, err)

	challenge, err := s.Issue()
	require.NoError(t, err)
	assert.Equal(t, DefaultChallengeDifficulty, challenge.Difficulty)
}
