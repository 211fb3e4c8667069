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

package signer

import (
	"context"
	"testing"

	"github.com/moltbridge/moltbridge-go/pkg/crypt"
)

func BenchmarkSignRequest(b *testing.B) {
	keyPair, err := crypt.FromSeed(make([]byte, crypt.SeedSize))
	if err != nil {
		b.Fatal(err)
	}
	s, err := NewDefaultSigner("bench-agent", keyPair)
	if err != nil {
		b.Fatal(err)
	}

	body := map[string]interface{}{
		"target_identifier": "Peter Diamandis",
		"max_hops":          4,
		"max_results":       3,
	}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.SignRequest(ctx, "POST", "/discover-broker", body); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSignRequest_NoBody(b *testing.B) {
	keyPair, err := crypt.FromSeed(make([]byte, crypt.SeedSize))
	if err != nil {
		b.Fatal(err)
	}
	s, err := NewDefaultSigner("bench-agent", keyPair)
	if err != nil {
		b.Fatal(err)
	}

	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.SignRequest(ctx, "GET", "/payments/balance", nil); err != nil {
			b.Fatal(err)
		}
	}
}
