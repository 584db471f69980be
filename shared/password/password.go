package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidPIN = errors.New("invalid PIN")
)

// Hash generates a bcrypt hash of the login PIN.
func Hash(pin string) (string, error) {
	if pin == "" {
		return "", errors.New("PIN cannot be empty")
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash PIN: %w", err)
	}

	return string(bytes), nil
}

// Verify checks if the provided PIN matches the stored hash.
func Verify(pin, hash string) error {
	if pin == "" || hash == "" {
		return ErrInvalidPIN
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPIN
		}

		return fmt.Errorf("failed to verify PIN: %w", err)
	}

	return nil
}
