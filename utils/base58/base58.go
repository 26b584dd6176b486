// Package base58 implements base58 and Base58Check encoding over arbitrary
// 58-symbol alphabets without big integer arithmetic.
package base58

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/vitwit/addrcheck/utils"
)

const checksumLen = 4

var (
	ErrEmptyInput       = errors.New("base58: empty input")
	ErrInvalidCharacter = errors.New("base58: invalid character")
	ErrTooShort         = errors.New("base58: decoded payload too short")
	ErrInvalidChecksum  = errors.New("base58: checksum mismatch")
)

// Alphabet is a 58-symbol digit ordering. The first symbol encodes a
// leading zero byte.
type Alphabet struct {
	symbols string
	digits  [128]int8
}

var (
	// BitcoinAlphabet is the alphabet shared by Bitcoin and most derived chains.
	BitcoinAlphabet = NewAlphabet("123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz")

	// RippleAlphabet is the XRP Ledger digit ordering.
	RippleAlphabet = NewAlphabet("rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz")
)

// NewAlphabet builds an alphabet from 58 distinct ASCII symbols. It panics on
// malformed input since alphabets are fixed at init time.
func NewAlphabet(symbols string) *Alphabet {
	if len(symbols) != 58 {
		panic(fmt.Sprintf("base58: alphabet must have 58 symbols, got %d", len(symbols)))
	}

	a := &Alphabet{symbols: symbols}
	for i := range a.digits {
		a.digits[i] = -1
	}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if c >= 128 || a.digits[c] != -1 {
			panic(fmt.Sprintf("base58: invalid or duplicate symbol %q", c))
		}
		a.digits[c] = int8(i)
	}
	return a
}

// Zero returns the symbol that encodes a leading zero byte.
func (a *Alphabet) Zero() byte {
	return a.symbols[0]
}

func (a *Alphabet) String() string {
	return a.symbols
}

// Decode converts a base58 string to bytes. Each leading zero symbol yields
// one leading zero byte.
func (a *Alphabet) Decode(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, ErrEmptyInput
	}

	// little-endian accumulator
	acc := make([]byte, 0, len(s)*733/1000+1)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 128 || a.digits[c] < 0 {
			return nil, fmt.Errorf("%w %q at position %d", ErrInvalidCharacter, c, i)
		}

		carry := int(a.digits[c])
		for j := range acc {
			carry += int(acc[j]) * 58
			acc[j] = byte(carry)
			carry >>= 8
		}
		for carry > 0 {
			acc = append(acc, byte(carry))
			carry >>= 8
		}
	}

	for i := 0; i < len(s) && s[i] == a.symbols[0]; i++ {
		acc = append(acc, 0)
	}

	for i, j := 0, len(acc)-1; i < j; i, j = i+1, j-1 {
		acc[i], acc[j] = acc[j], acc[i]
	}
	return acc, nil
}

// Encode converts bytes to a base58 string.
func (a *Alphabet) Encode(b []byte) string {
	zeros := 0
	for zeros < len(b) && b[zeros] == 0 {
		zeros++
	}

	// little-endian base58 digits
	digits := make([]byte, 0, len(b)*138/100+1)
	for _, v := range b[zeros:] {
		carry := int(v)
		for j := range digits {
			carry += int(digits[j]) << 8
			digits[j] = byte(carry % 58)
			carry /= 58
		}
		for carry > 0 {
			digits = append(digits, byte(carry%58))
			carry /= 58
		}
	}

	out := make([]byte, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		out[i] = a.symbols[0]
	}
	for i, d := range digits {
		out[len(out)-1-i] = a.symbols[d]
	}
	return string(out)
}

// CheckDecode decodes a Base58Check string and returns its version byte and
// the payload between the version byte and the 4-byte checksum.
func (a *Alphabet) CheckDecode(s string) (version byte, payload []byte, err error) {
	decoded, err := a.Decode(s)
	if err != nil {
		return 0, nil, err
	}
	if len(decoded) < checksumLen+1 {
		return 0, nil, fmt.Errorf("%w: %d bytes", ErrTooShort, len(decoded))
	}

	body := decoded[:len(decoded)-checksumLen]
	sum := decoded[len(decoded)-checksumLen:]
	if !bytes.Equal(utils.DoubleSHA256(body)[:checksumLen], sum) {
		return 0, nil, ErrInvalidChecksum
	}

	return body[0], body[1:], nil
}

// CheckEncode prepends version to payload, appends the double-SHA256
// checksum and encodes the result.
func (a *Alphabet) CheckEncode(payload []byte, version byte) string {
	body := make([]byte, 0, 1+len(payload)+checksumLen)
	body = append(body, version)
	body = append(body, payload...)
	body = append(body, utils.DoubleSHA256(body)[:checksumLen]...)
	return a.Encode(body)
}

// VerifyCheck reports whether s carries a valid Base58Check checksum.
func (a *Alphabet) VerifyCheck(s string) bool {
	_, _, err := a.CheckDecode(s)
	return err == nil
}

// Decode decodes s with the Bitcoin alphabet.
func Decode(s string) ([]byte, error) {
	return BitcoinAlphabet.Decode(s)
}

// Encode encodes b with the Bitcoin alphabet.
func Encode(b []byte) string {
	return BitcoinAlphabet.Encode(b)
}

// CheckDecode decodes a Base58Check string with the Bitcoin alphabet.
func CheckDecode(s string) (byte, []byte, error) {
	return BitcoinAlphabet.CheckDecode(s)
}

// CheckEncode encodes a Base58Check string with the Bitcoin alphabet.
func CheckEncode(payload []byte, version byte) string {
	return BitcoinAlphabet.CheckEncode(payload, version)
}

// VerifyCheck verifies a Base58Check string with the Bitcoin alphabet.
func VerifyCheck(s string) bool {
	return BitcoinAlphabet.VerifyCheck(s)
}
