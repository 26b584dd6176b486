// Package ss58 decodes and verifies Substrate SS58 addresses.
package ss58

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/vitwit/addrcheck/utils"
	"github.com/vitwit/addrcheck/utils/base58"
)

const checksumLen = 2

// Well-known network identifiers
const (
	PrefixPolkadot uint16 = 0
	PrefixKusama   uint16 = 2
	PrefixGeneric  uint16 = 42
)

const (
	maxSimplePrefix = 46
	maxFullPrefix   = 1<<14 - 1
)

var checksumContext = []byte("SS58PRE")

var (
	ErrInvalidPrefix   = errors.New("ss58: invalid prefix")
	ErrTooShort        = errors.New("ss58: decoded payload too short")
	ErrInvalidChecksum = errors.New("ss58: checksum mismatch")
)

// Address is a decoded SS58 address.
type Address struct {
	Prefix    uint16
	PublicKey []byte
}

// Result reports the outcome of Verify. HasPrefix is false when the prefix
// bytes could not be parsed.
type Result struct {
	Valid     bool
	Prefix    uint16
	HasPrefix bool
}

// prefix parses the network identifier at the start of decoded and returns
// it with its width in bytes.
func prefix(decoded []byte) (uint16, int, error) {
	b0 := decoded[0]
	switch {
	case b0 <= maxSimplePrefix:
		return uint16(b0), 1, nil
	case b0 >= 64 && b0 <= 127:
		if len(decoded) < 4 {
			return 0, 0, fmt.Errorf("%w: %d bytes", ErrTooShort, len(decoded))
		}
		b1 := decoded[1]
		ident := uint16(b0&0x3f)<<2 | uint16(b1>>6) | uint16(b1&0x3f)<<8
		return ident, 2, nil
	default:
		return 0, 0, fmt.Errorf("%w: leading byte %d", ErrInvalidPrefix, b0)
	}
}

func checksum(body []byte) []byte {
	return utils.Blake2b512(checksumContext, body)[:checksumLen]
}

// Decode parses and verifies an SS58 address.
func Decode(address string) (Address, error) {
	decoded, err := base58.Decode(address)
	if err != nil {
		return Address{}, err
	}
	if len(decoded) < 3 {
		return Address{}, fmt.Errorf("%w: %d bytes", ErrTooShort, len(decoded))
	}

	ident, width, err := prefix(decoded)
	if err != nil {
		return Address{}, err
	}

	body := decoded[:len(decoded)-checksumLen]
	if !bytes.Equal(checksum(body), decoded[len(decoded)-checksumLen:]) {
		return Address{Prefix: ident}, ErrInvalidChecksum
	}

	return Address{Prefix: ident, PublicKey: body[width:]}, nil
}

// Verify checks the checksum of an SS58 address and reports its prefix when
// it can be determined.
func Verify(address string) Result {
	decoded, err := Decode(address)
	switch {
	case err == nil:
		return Result{Valid: true, Prefix: decoded.Prefix, HasPrefix: true}
	case errors.Is(err, ErrInvalidChecksum):
		return Result{Prefix: decoded.Prefix, HasPrefix: true}
	default:
		return Result{}
	}
}

// Encode builds the SS58 address of publicKey under the given network
// identifier.
func Encode(ident uint16, publicKey []byte) (string, error) {
	var body []byte
	switch {
	case ident <= maxSimplePrefix:
		body = append(body, byte(ident))
	case ident >= 64 && ident <= maxFullPrefix:
		body = append(body,
			byte(ident&0xfc)>>2|0x40,
			byte(ident>>8)|byte(ident&0x03)<<6,
		)
	default:
		return "", fmt.Errorf("%w: %d", ErrInvalidPrefix, ident)
	}

	body = append(body, publicKey...)
	body = append(body, checksum(body)...)
	return base58.Encode(body), nil
}
