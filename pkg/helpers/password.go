package helpers

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt reads at most this many bytes of input.
const maxPasswordBytes = 72

// ErrPasswordTooLong is returned instead of letting bcrypt truncate or reject
// a long multi-byte password.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// HashPassword turns a user password into the stored passwordHash.
func HashPassword(plain string) (string, error) {
	if len(plain) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
