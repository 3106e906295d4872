package util

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost applies to freshly generated hashes. Verification reads the
// cost from the hash itself, so raising this never invalidates the stored
// admin credential.
const bcryptCost = 12

// HashPassword derives a bcrypt hash suitable for the ADMIN_PASSWORD_HASH
// environment variable.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// VerifyPassword compares a candidate password against the stored hash and
// returns a non-nil error on mismatch.
func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
