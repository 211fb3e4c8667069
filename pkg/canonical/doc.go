// Package canonical implements the deterministic payload serialization that
// underpins MoltBridge request signatures.
//
// Every signed request covers a SHA-256 digest of its body. For the digest to
// be meaningful across independently written clients (Go, Python, TypeScript)
// and the server, all of them must produce byte-identical serializations of
// the same logical payload. This package is that serialization, isolated as a
// pure function.
//
// # Rules
//
//   - Object keys are sorted by byte value ascending at every nesting level.
//   - No whitespace; the only separators are ',' and ':'.
//   - Strings escape only the quote, the backslash and control characters;
//     non-ASCII runes are emitted verbatim as UTF-8.
//   - Numbers are minimal decimal: no exponent notation, no trailing zeros.
//   - nil canonicalizes to the literal "null".
//
// # Absent bodies
//
// A request without a body (a plain GET, for instance) digests the empty
// string, not "null":
//
//	canonical.BodyDigest(nil)                      // SHA-256("")
//	canonical.Digest([]byte("null"))               // SHA-256("null"), different
//
// The asymmetry is deliberate and part of the wire contract.
package canonical
