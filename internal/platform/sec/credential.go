// Copyright (c) 2026 Oshidora. All rights reserved.

// Package sec derives the login credentials of seeded user accounts.
//
// # Determinism
//
// Seeded accounts must hash identically on every run, otherwise the seed
// script would differ between runs. The salt is therefore derived from the
// seed and the account email instead of being drawn from crypto/rand.
// Never use [DeriveCredential] for real accounts.
package sec

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// DevPassword is the shared password of every seeded account.
	DevPassword = "password123"

	// PBKDF2Iterations matches the verifier of the application's login
	// endpoint (Web Crypto caps PBKDF2 at 100 000 iterations).
	PBKDF2Iterations = 100_000

	// saltBytes and keyBytes are the raw lengths before hex encoding.
	saltBytes = 16
	keyBytes  = 32
)

// Credential is a salt and PBKDF2-SHA256 hash pair, both hex encoded.
type Credential struct {
	Salt string
	Hash string
}

// DeriveCredential computes the credential of a seeded account.
//
// The result is a pure function of (seed, email).
func DeriveCredential(seed, email string) Credential {
	digest := sha256.Sum256([]byte(seed + ":" + email))
	salt := digest[:saltBytes]

	key := pbkdf2.Key([]byte(DevPassword), salt, PBKDF2Iterations, keyBytes, sha256.New)

	return Credential{
		Salt: hex.EncodeToString(salt),
		Hash: hex.EncodeToString(key),
	}
}
