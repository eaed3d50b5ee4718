package auth

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength = 16
	keyLength  = 20
	// MinHashIterations is the lowest iteration count the hasher accepts.
	MinHashIterations = 10000
)

// ErrMalformedCredential is returned when a stored credential cannot be decoded
// into a salt and derived key. It is distinct from a password mismatch so that
// corrupt data does not masquerade as a failed login.
var ErrMalformedCredential = errors.New("malformed stored credential")

// PasswordHasher derives and verifies salted PBKDF2 password credentials.
// The encoded form is base64(salt || derivedKey) with a 16-byte salt and a
// 20-byte key; changing either length breaks verification of stored data.
type PasswordHasher struct {
	iterations int
}

// NewPasswordHasher creates a hasher with the given PBKDF2 iteration count.
// Counts below MinHashIterations are raised to the minimum.
func NewPasswordHasher(iterations int) *PasswordHasher {
	if iterations < MinHashIterations {
		iterations = MinHashIterations
	}
	return &PasswordHasher{iterations: iterations}
}

// Hash derives a credential from plaintext using a fresh random salt.
func (h *PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	key := pbkdf2.Key([]byte(password), salt, h.iterations, keyLength, sha1.New)

	combined := make([]byte, 0, saltLength+keyLength)
	combined = append(combined, salt...)
	combined = append(combined, key...)
	return base64.StdEncoding.EncodeToString(combined), nil
}

// Verify reports whether candidate matches the stored credential. It returns
// ErrMalformedCredential when encoded is not a valid salt+key blob.
func (h *PasswordHasher) Verify(encoded, candidate string) (bool, error) {
	combined, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return false, ErrMalformedCredential
	}
	if len(combined) < saltLength+keyLength {
		return false, ErrMalformedCredential
	}

	salt := combined[:saltLength]
	stored := combined[saltLength : saltLength+keyLength]

	derived := pbkdf2.Key([]byte(candidate), salt, h.iterations, keyLength, sha1.New)
	return subtle.ConstantTimeCompare(stored, derived) == 1, nil
}
