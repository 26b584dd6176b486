package utils

import (
	"crypto/sha256"

	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/blake2b"
)

// DoubleSHA256 returns SHA256(SHA256(data)).
func DoubleSHA256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Keccak256 returns the legacy Keccak-256 digest of the concatenated inputs.
func Keccak256(data ...[]byte) []byte {
	return crypto.Keccak256(data...)
}

// Blake2b512 returns the unkeyed 64-byte BLAKE2b digest of the concatenated
// inputs.
func Blake2b512(data ...[]byte) []byte {
	h, _ := blake2b.New512(nil)
	for _, b := range data {
		h.Write(b)
	}
	return h.Sum(nil)
}
