package service

import (
	"crypto"
	"crypto/hmac"
	"encoding/hex"
	"fmt"
	"strings"

	"paybox/internal/entity"

	// Registers crypto.RIPEMD160.
	_ "golang.org/x/crypto/ripemd160"
)

type hashAlgorithm struct {
	name string
	hash crypto.Hash
}

// Strongest first. MDC2 has no implementation and is never selected.
var _hashPreference = []hashAlgorithm{
	{name: "sha512", hash: crypto.SHA512},
	{name: "sha256", hash: crypto.SHA256},
	{name: "sha384", hash: crypto.SHA384},
	{name: "ripemd160", hash: crypto.RIPEMD160},
	{name: "sha224", hash: crypto.SHA224},
	{name: "mdc2"},
}

// HashAvailability reports whether a hash is linked into the binary.
type HashAvailability func(h crypto.Hash) bool

func defaultHashAvailability(h crypto.Hash) bool {
	return h != 0 && h.Available()
}

// selectHashAlgorithm returns the uppercased platform name and the hash to sign with.
func selectHashAlgorithm(available HashAvailability) (string, crypto.Hash, error) {
	for _, candidate := range _hashPreference {
		if candidate.hash == 0 || !available(candidate.hash) {
			continue
		}
		return strings.ToUpper(candidate.name), candidate.hash, nil
	}
	return "", 0, entity.ErrHashAlgorithmUnavailable
}

func decodeSecretKey(hexKey string) ([]byte, error) {
	key, err := hex.DecodeString(strings.TrimSpace(hexKey))
	if err != nil {
		return nil, fmt.Errorf("%w: private key is not valid hexadecimal", entity.ErrConfiguration)
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: private key is empty", entity.ErrConfiguration)
	}
	return key, nil
}

// signMessage computes the keyed hash of message as uppercase hexadecimal.
func signMessage(h crypto.Hash, key []byte, message string) string {
	mac := hmac.New(h.New, key)
	mac.Write([]byte(message))
	return strings.ToUpper(hex.EncodeToString(mac.Sum(nil)))
}
