package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt work factor used for stored credentials.
const HashCost = 12

// ErrPasswordMismatch is returned when a password does not match its hash.
var ErrPasswordMismatch = errors.New("cryptox: password does not match")

// HashPassword hashes a plaintext password with bcrypt. The returned string
// embeds the salt and cost, so no extra bookkeeping is needed to verify it.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a bcrypt hash.
// Returns ErrPasswordMismatch on mismatch and passes through any other
// bcrypt error (e.g. malformed hash).
func VerifyPassword(password, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}
