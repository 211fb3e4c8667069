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

package pow

import (
	"context"
	"crypto/sha256"
	"strconv"

	"github.com/moltbridge/moltbridge-go/pkg/errors"
)

// DefaultMaxIterations is the counter ceiling before a challenge is declared
// unsolvable. At difficulty 5 a solution is expected around counter one
// million, so the ceiling leaves an order of magnitude of headroom.
const DefaultMaxIterations = 10_000_000

// cancelCheckInterval is how many counters are hashed between context checks.
const cancelCheckInterval = 4096

// Solve scans counters from zero upward and returns the lowest counter whose
// SHA-256 digest of nonce+counter (counter rendered as decimal) starts with
// difficulty leading zero hex characters.
//
// Passing maxIterations <= 0 uses DefaultMaxIterations. Exceeding the ceiling
// returns errors.CodeChallengeExhausted; a canceled context returns the
// context's error.
func Solve(ctx context.Context, nonce string, difficulty, maxIterations int) (uint64, error) {
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	prefix := []byte(nonce)
	for counter := uint64(0); ; counter++ {
		if counter > uint64(maxIterations) {
			return 0, errors.Newf(errors.CodeChallengeExhausted,
				"no solution within %d iterations at difficulty %d", maxIterations, difficulty)
		}
		if counter%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}

		candidate := strconv.AppendUint(prefix, counter, 10)
		digest := sha256.Sum256(candidate)
		if hasLeadingZeroes(digest[:], difficulty) {
			return counter, nil
		}
	}
}

// Verify reports whether proof (a decimal counter string, exactly as received
// on the wire) solves the challenge. The proof is hashed verbatim, so a
// counter with leading zeroes or sign is simply a different preimage.
func Verify(nonce, proof string, difficulty int) bool {
	digest := sha256.Sum256([]byte(nonce + proof))
	return hasLeadingZeroes(digest[:], difficulty)
}

// hasLeadingZeroes checks the first n hex characters of the digest without
// formatting it. Each byte covers two hex characters; an odd n checks the
// high nibble of the last byte.
func hasLeadingZeroes(digest []byte, n int) bool {
	if n <= 0 {
		return true
	}
	if n > 2*len(digest) {
		return false
	}
	for i := 0; i < n/2; i++ {
		if digest[i] != 0 {
			return false
		}
	}
	if n%2 == 1 && digest[n/2]&0xf0 != 0 {
		return false
	}
	return true
}
