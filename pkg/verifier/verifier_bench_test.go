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

package verifier

import (
	"context"
	"testing"
	"time"

	"github.com/moltbridge/moltbridge-go/pkg/crypt"
	"github.com/moltbridge/moltbridge-go/pkg/signer"
)

func BenchmarkVerifyRequest(b *testing.B) {
	keyPair, err := crypt.Generate()
	if err != nil {
		b.Fatal(err)
	}
	s, err := signer.NewDefaultSigner("bench-agent", keyPair)
	if err != nil {
		b.Fatal(err)
	}

	resolver := NewStaticResolver()
	resolver.Add("bench-agent", keyPair.Public())
	v, err := NewDefaultVerifier(resolver)
	if err != nil {
		b.Fatal(err)
	}
	now := time.Now().Unix()
	v.now = func() time.Time { return time.Unix(now, 0) }

	body := map[string]interface{}{"target_identifier": "Peter Diamandis", "max_hops": 4}
	ctx := context.Background()
	header, err := s.SignRequestWithOptions(ctx, "POST", "/discover-broker", body,
		&signer.SigningOptions{Timestamp: now})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := v.VerifyRequest(ctx, "POST", "/discover-broker", body, header); err != nil {
			b.Fatal(err)
		}
	}
}
