package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// hashCost trades login latency for brute-force resistance. 12 keeps a
// single compare well under 500ms on current hardware.
const hashCost = 12

// maxPasswordBytes is bcrypt's input limit; longer inputs are silently
// truncated by the algorithm, so reject them instead.
const maxPasswordBytes = 72

// HashPassword derives a bcrypt hash from a plaintext password.
func HashPassword(password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", fmt.Errorf("password exceeds %d bytes", maxPasswordBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether the plaintext password matches the
// stored bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
