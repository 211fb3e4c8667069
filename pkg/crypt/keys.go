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

// Package crypt holds the Ed25519 key material used to sign and verify
// MoltBridge API requests.
package crypt

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"

	"github.com/moltbridge/moltbridge-go/pkg/errors"
)

// SeedSize is the exact length of a private key seed in bytes.
const SeedSize = ed25519.SeedSize

// KeyPair is an agent's immutable identity material. The public key is a pure
// function of the 32-byte seed. A KeyPair is created once per agent and is
// safe for concurrent use.
type KeyPair struct {
	priv ed25519.PrivateKey
	pub  ed25519.PublicKey
}

// Generate creates a new random key pair. The caller should persist the seed
// (SeedHex) if the identity must survive the process.
func Generate() (*KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return &KeyPair{priv: priv, pub: pub}, nil
}

// FromSeed derives a key pair from a raw 32-byte seed.
func FromSeed(seed []byte) (*KeyPair, error) {
	if len(seed) != SeedSize {
		return nil, errors.Newf(errors.CodeInvalidKeyMaterial,
			"signing seed must be exactly %d bytes, got %d", SeedSize, len(seed))
	}
	priv := ed25519.NewKeyFromSeed(seed)
	return &KeyPair{
		priv: priv,
		pub:  priv.Public().(ed25519.PublicKey),
	}, nil
}

// FromSeedHex derives a key pair from a hex-encoded 32-byte seed, the storage
// format used by the MOLTBRIDGE_SIGNING_KEY environment variable.
func FromSeedHex(seedHex string) (*KeyPair, error) {
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, errors.Newf(errors.CodeInvalidKeyMaterial, "signing seed is not valid hex: %v", err)
	}
	return FromSeed(seed)
}

// Sign signs message with the private key.
func (k *KeyPair) Sign(message []byte) []byte {
	return ed25519.Sign(k.priv, message)
}

// Public returns the raw 32-byte public key.
func (k *KeyPair) Public() ed25519.PublicKey {
	return k.pub
}

// PublicKeyBase64 returns the public key as unpadded base64url, the encoding
// submitted during registration.
func (k *KeyPair) PublicKeyBase64() string {
	return base64.RawURLEncoding.EncodeToString(k.pub)
}

// SeedHex returns the private seed as hex for persistence.
func (k *KeyPair) SeedHex() string {
	return hex.EncodeToString(k.priv.Seed())
}

// Verify reports whether sig is a valid signature of message under pub.
func Verify(pub ed25519.PublicKey, message, sig []byte) bool {
	if len(pub) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(pub, message, sig)
}

// ParsePublicKeyBase64 decodes an unpadded base64url public key and checks its
// length.
func ParsePublicKeyBase64(s string) (ed25519.PublicKey, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Newf(errors.CodeInvalidKeyMaterial, "public key is not valid base64url: %v", err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, errors.Newf(errors.CodeInvalidKeyMaterial,
			"public key must be exactly %d bytes, got %d", ed25519.PublicKeySize, len(raw))
	}
	return ed25519.PublicKey(raw), nil
}
