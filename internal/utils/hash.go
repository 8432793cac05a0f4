package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// SaltLength is the number of random bytes in every identity salt.
const SaltLength = 16

// GenerateSalt returns SaltLength bytes read from crypto/rand.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("error reading random salt: %w", err)
	}

	return salt, nil
}

// HashPIN computes hex(SHA-256(salt || utf8(pin))).
//
// Example usage:
//
//	pinHash := utils.HashPIN(salt, "4821")
func HashPIN(salt []byte, pin string) string {
	hasher := sha256.New()
	hasher.Write(salt)
	hasher.Write([]byte(pin))
	return hex.EncodeToString(hasher.Sum(nil))
}

// VerifyPIN recomputes the hash of pin with the hex-encoded salt and compares
// it against the stored hex-encoded hash in constant time.
//
// Returns an error only when the stored salt or hash are not valid hex.
func VerifyPIN(saltHex, pin, pinHashHex string) (bool, error) {
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false, fmt.Errorf("error decoding stored salt: %w", err)
	}

	stored, err := hex.DecodeString(pinHashHex)
	if err != nil {
		return false, fmt.Errorf("error decoding stored pin hash: %w", err)
	}

	computed := sha256.New()
	computed.Write(salt)
	computed.Write([]byte(pin))

	return subtle.ConstantTimeCompare(computed.Sum(nil), stored) == 1, nil
}
