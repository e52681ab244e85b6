package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt cost matching the original deployment's salt rounds.
const bcryptCost = 10

// HashPassword derives a one-way salted hash from a plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// ComparePassword reports whether the plaintext matches the stored hash.
// A mismatch is a false return, never an error.
func ComparePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
