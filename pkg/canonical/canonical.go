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
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Canonicalize renders v into the unique byte form used for request digests.
//
// The encoding is compact JSON with object keys sorted by byte value at every
// nesting level, minimal string escaping (quote, backslash, and control
// characters only) and numbers rendered as minimal decimal with no exponent
// notation. Two structurally equal values always canonicalize to byte-identical
// output regardless of construction order.
//
// A nil value canonicalizes to the literal "null". Absent request bodies must
// not go through Canonicalize; see BodyDigest.
func Canonicalize(v interface{}) ([]byte, error) {
	norm, err := normalize(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := encodeValue(&buf, norm); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Digest returns the lowercase hex SHA-256 of b.
func Digest(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// BodyDigest returns the digest of the canonical form of a request body.
//
// A nil body is treated as absent and digests the empty string. This is
// distinct from the digest of an explicit JSON null: the signer and verifier
// must agree that "no body" hashes to SHA-256("") while a null payload hashes
// to SHA-256("null").
func BodyDigest(body interface{}) (string, error) {
	if body == nil {
		return Digest(nil), nil
	}
	b, err := Canonicalize(body)
	if err != nil {
		return "", err
	}
	return Digest(b), nil
}

// normalize reduces an arbitrary JSON-serializable Go value to the generic
// shape (map[string]interface{}, []interface{}, json.Number, string, bool,
// nil) so struct fields, typed slices and map key types all collapse to the
// same representation before encoding.
func normalize(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("canonical: marshal: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var generic interface{}
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("canonical: decode: %w", err)
	}
	return generic, nil
}

func encodeValue(buf *bytes.Buffer, v interface{}) error {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case json.Number:
		buf.WriteString(formatNumber(val))
	case string:
		encodeString(buf, val)
	case []interface{}:
		buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			encodeString(buf, k)
			buf.WriteByte(':')
			if err := encodeValue(buf, val[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("canonical: unsupported value type %T", v)
	}
	return nil
}

// formatNumber renders a JSON number as minimal decimal. Integers pass through
// untouched; fractional and exponent forms are reduced to the shortest plain
// decimal representation that round-trips through float64.
func formatNumber(n json.Number) string {
	s := n.String()
	if !bytes.ContainsAny([]byte(s), ".eE") {
		return s
	}
	f, err := n.Float64()
	if err != nil {
		return s
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// encodeString writes a JSON string with minimal escaping: the quote and
// backslash characters plus control characters below 0x20. Everything else,
// including non-ASCII runes, is written verbatim as UTF-8 so that all client
// implementations produce identical bytes.
func encodeString(buf *bytes.Buffer, s string) {
	const hexdigits = "0123456789abcdef"

	buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			buf.WriteString(`\"`)
		case c == '\\':
			buf.WriteString(`\\`)
		case c >= 0x20:
			buf.WriteByte(c)
		case c == '\b':
			buf.WriteString(`\b`)
		case c == '\f':
			buf.WriteString(`\f`)
		case c == '\n':
			buf.WriteString(`\n`)
		case c == '\r':
			buf.WriteString(`\r`)
		case c == '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexdigits[c>>4])
			buf.WriteByte(hexdigits[c&0xf])
		}
	}
	buf.WriteByte('"')
}
