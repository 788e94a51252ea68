package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	saltLen = 16
	keyLen  = 64

	// scrypt cost parameters (N, r, p).
	scryptN = 32768
	scryptR = 8
	scryptP = 1
)

// HashPassword derives a salted scrypt key from plain and returns the
// stored form "hex(key).hex(salt)".
func HashPassword(plain string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("salt: %w", err)
	}
	hexSalt := hex.EncodeToString(salt)
	key, err := scrypt.Key([]byte(plain), []byte(hexSalt), scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return "", fmt.Errorf("scrypt: %w", err)
	}
	return hex.EncodeToString(key) + "." + hexSalt, nil
}

// VerifyPassword re-derives the key with the salt from stored and compares
// in constant time. A malformed stored form returns false, never an error.
func VerifyPassword(plain, stored string) bool {
	hexKey, hexSalt, ok := strings.Cut(stored, ".")
	if !ok {
		return false
	}
	want, err := hex.DecodeString(hexKey)
	if err != nil {
		return false
	}
	got, err := scrypt.Key([]byte(plain), []byte(hexSalt), scryptN, scryptR, scryptP, keyLen)
	if err != nil {
		return false
	}
	if len(want) != len(got) {
		return false
	}
	return subtle.ConstantTimeCompare(want, got) == 1
}
