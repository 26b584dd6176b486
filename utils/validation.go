package utils

import (
	"regexp"
	"strings"
)

var (
	hexPattern    = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	base58Pattern = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]+$`)
)

// IsHexString reports whether s is a non-empty string of hex digits.
func IsHexString(s string) bool {
	return hexPattern.MatchString(s)
}

// IsBase58String reports whether s only uses the Bitcoin base58 alphabet.
func IsBase58String(s string) bool {
	return base58Pattern.MatchString(s)
}

// NormalizeNetwork upper-cases and trims a network alias for lookup.
func NormalizeNetwork(network string) string {
	return strings.ToUpper(strings.TrimSpace(network))
}

// NormalizeAddress trims surrounding whitespace from an address.
func NormalizeAddress(address string) string {
	return strings.TrimSpace(address)
}
