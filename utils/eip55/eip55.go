// Package eip55 implements the mixed-case checksum of Ethereum addresses.
package eip55

import (
	"errors"
	"strings"

	"github.com/vitwit/addrcheck/utils"
)

const hexLen = 40

// ErrInvalidAddress is returned for strings that are not 0x-prefixed 20-byte
// hex addresses.
var ErrInvalidAddress = errors.New("eip55: not a 0x-prefixed 40 digit hex address")

// IsAddress reports whether s has the 0x + 40 hex digit shape.
func IsAddress(s string) bool {
	return len(s) == hexLen+2 && strings.HasPrefix(s, "0x") && utils.IsHexString(s[2:])
}

// Checksum returns the EIP-55 mixed-case form of address.
func Checksum(address string) (string, error) {
	if !IsAddress(address) {
		return "", ErrInvalidAddress
	}

	lower := strings.ToLower(address[2:])
	hash := utils.Keccak256([]byte(lower))

	out := []byte("0x" + lower)
	for i := 0; i < hexLen; i++ {
		c := lower[i]
		if c >= 'a' && c <= 'f' && nibble(hash, i) >= 8 {
			out[i+2] = c - 'a' + 'A'
		}
	}
	return string(out), nil
}

// Verify reports whether address carries a valid EIP-55 checksum. All-lower
// and all-upper hex is accepted as unchecksummed.
func Verify(address string) bool {
	if !IsAddress(address) {
		return false
	}

	digits := address[2:]
	if digits == strings.ToLower(digits) || digits == strings.ToUpper(digits) {
		return true
	}

	hash := utils.Keccak256([]byte(strings.ToLower(digits)))
	for i := 0; i < hexLen; i++ {
		c := digits[i]
		if c >= '0' && c <= '9' {
			continue
		}
		upper := c >= 'A' && c <= 'F'
		if (nibble(hash, i) >= 8) != upper {
			return false
		}
	}
	return true
}

func nibble(hash []byte, i int) byte {
	b := hash[i/2]
	if i%2 == 0 {
		return b >> 4
	}
	return b & 0x0f
}
