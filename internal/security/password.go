// Package security generates the one-shot credentials handed out by the
// admin tooling.
package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// temporaryPasswordAlphabet leaves out characters that read ambiguously
// when the password is copied by hand (0/O, 1/l/I).
const temporaryPasswordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var errNonPositiveLength = errors.New("length must be positive")

// TemporaryPassword returns an unbiased random password of the requested
// length, drawn from crypto/rand.
func TemporaryPassword(length int) (string, error) {
	if length <= 0 {
		return "", errNonPositiveLength
	}

	limit := big.NewInt(int64(len(temporaryPasswordAlphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = temporaryPasswordAlphabet[position.Int64()]
	}
	return string(value), nil
}
