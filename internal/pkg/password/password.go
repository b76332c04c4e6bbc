// Package password implements credential hashing and verification on top of
// bcrypt. Verification is constant-time by construction and never reports a
// malformed stored hash as anything other than a mismatch.
package password

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor used for every new hash. It is deliberately
// above bcrypt.DefaultCost and must not be lowered to speed up logins.
const Cost = 12

// Hash derives a salted hash from the plaintext. Leading and trailing
// whitespace is trimmed first so client-side padding does not change the
// credential.
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(plaintext)), Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether the plaintext matches the stored hash. It trims the
// plaintext the same way Hash does and swallows every bcrypt error, so a
// malformed or empty stored hash simply yields false.
func Verify(plaintext, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(strings.TrimSpace(plaintext))) == nil
}
