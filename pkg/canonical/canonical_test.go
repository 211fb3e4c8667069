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

package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize_SortsKeysAtEveryLevel(t *testing.T) {
	v := map[string]interface{}{
		"zeta": map[string]interface{}{
			"b": 2,
			"a": 1,
		},
		"alpha": []interface{}{
			map[string]interface{}{"y": true, "x": false},
		},
	}

	out, err := Canonicalize(v)
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":[{"x":false,"y":true}],"zeta":{"a":1,"b":2}}`, string(out))
}

func TestCanonicalize_OrderIndependent(t *testing.T) {
	// Same logical payload built in two different insertion orders must
	// serialize to identical bytes and identical digests.
	a := map[string]interface{}{}
	a["target_identifier"] = "peter-d"
	a["max_hops"] = 4
	a["max_results"] = 3

	b := map[string]interface{}{}
	b["max_results"] = 3
	b["max_hops"] = 4
	b["target_identifier"] = "peter-d"

	ca, err := Canonicalize(a)
	require.NoError(t, err)
	cb, err := Canonicalize(b)
	require.NoError(t, err)

	assert.Equal(t, ca, cb)

	da, err := BodyDigest(a)
	require.NoError(t, err)
	db, err := BodyDigest(b)
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

func TestCanonicalize_StructsAndMapsAgree(t *testing.T) {
	type discoverRequest struct {
		Target     string `json:"target_identifier"`
		MaxHops    int    `json:"max_hops"`
		MaxResults int    `json:"max_results"`
	}

	fromStruct, err := Canonicalize(discoverRequest{Target: "peter-d", MaxHops: 4, MaxResults: 3})
	require.NoError(t, err)

	fromMap, err := Canonicalize(map[string]interface{}{
		"target_identifier": "peter-d",
		"max_hops":          4,
		"max_results":       3,
	})
	require.NoError(t, err)

	assert.Equal(t, fromMap, fromStruct)
}

func TestCanonicalize_Scalars(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{"nil", nil, "null"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"int", 42, "42"},
		{"negative int", -7, "-7"},
		{"zero", 0, "0"},
		{"large int64", int64(9007199254740993), "9007199254740993"},
		{"float", 0.8, "0.8"},
		{"float without fraction", 2.5, "2.5"},
		{"big float no exponent", 1e21, "1000000000000000000000"},
		{"small float no exponent", 1e-7, "0.0000001"},
		{"string", "hello", `"hello"`},
		{"string with quote", `say "hi"`, `"say \"hi\""`},
		{"string with backslash", `a\b`, `"a\\b"`},
		{"string with newline", "a\nb", `"a\nb"`},
		{"string with control char", "a\x01b", `"a\u0001b"`},
		{"unicode verbatim", "héllo → 世界", `"héllo → 世界"`},
		{"empty array", []interface{}{}, "[]"},
		{"empty object", map[string]interface{}{}, "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Canonicalize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestCanonicalize_ArrayOrderPreserved(t *testing.T) {
	out, err := Canonicalize([]interface{}{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, "[3,1,2]", string(out))
}

func TestBodyDigest_MutationChangesDigest(t *testing.T) {
	base := map[string]interface{}{
		"capabilities": []string{"nlp", "reasoning"},
		"min_trust":    0.5,
		"max_results":  10,
	}

	baseline, err := BodyDigest(base)
	require.NoError(t, err)

	mutations := []map[string]interface{}{
		{"capabilities": []string{"nlp", "reasoning"}, "min_trust": 0.5, "max_results": 11},
		{"capabilities": []string{"nlp", "reasoning"}, "min_trust": 0.6, "max_results": 10},
		{"capabilities": []string{"nlp"}, "min_trust": 0.5, "max_results": 10},
		{"capabilities": []string{"reasoning", "nlp"}, "min_trust": 0.5, "max_results": 10},
	}

	for i, m := range mutations {
		d, err := BodyDigest(m)
		require.NoError(t, err)
		assert.NotEqual(t, baseline, d, "mutation %d should change the digest", i)
	}
}

func TestBodyDigest_AbsentVsNull(t *testing.T) {
	absent, err := BodyDigest(nil)
	require.NoError(t, err)

	// SHA-256 of the empty string.
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", absent)

	null := Digest([]byte("null"))
	assert.NotEqual(t, absent, null)
}

func TestBodyDigest_MatchesKnownVector(t *testing.T) {
	// SHA-256 of `{"target":"test"}` as produced by the Python SDK's
	// json.dumps(body, separators=(",", ":"), sort_keys=True).
	d, err := BodyDigest(map[string]interface{}{"target": "test"})
	require.NoError(t, err)

	out, err := Canonicalize(map[string]interface{}{"target": "test"})
	require.NoError(t, err)
	assert.Equal(t, `{"target":"test"}`, string(out))
	assert.Equal(t, Digest([]byte(`{"target":"test"}`)), d)
}

func TestCanonicalize_RejectsUnsupportedTypes(t *testing.T) {
	_, err := Canonicalize(func() {})
	assert.Error(t, err)

	_, err = Canonicalize(make(chan int))
	assert.Error(t, err)
}

func TestCanonicalize_NestedDepth(t *testing.T) {
	v := map[string]interface{}{
		"projects": []interface{}{
			map[string]interface{}{
				"visibility":  "public",
				"name":        "orbital",
				"description": "launch windows",
				"status":      "active",
			},
		},
	}

	out, err := Canonicalize(v)
	require.NoError(t, err)
	assert.Equal(t,
		`{"projects":[{"description":"launch windows","name":"orbital","status":"active","visibility":"public"}]}`,
		string(out))
}
