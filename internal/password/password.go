// Package password wraps the one-way hashing used for admin passwords.
// Plaintext is never stored or compared directly.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hash derives a salted bcrypt digest from a plaintext password.
func Hash(pwd string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash error: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether pwd matches the stored digest. A mismatch is a
// normal false result; only damaged digests produce an error.
func Verify(pwd, digest string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(pwd))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("verify error: %w", err)
}
