// Package bech32 implements the BCH checksum family used by SegWit (Bech32),
// Taproot (Bech32m), Elements confidential addresses (Blech32, Blech32m) and
// Bitcoin Cash (CashAddr).
package bech32

import (
	"errors"
	"fmt"
	"strings"
)

const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

var charsetRev = func() [128]int8 {
	var rev [128]int8
	for i := range rev {
		rev[i] = -1
	}
	for i := 0; i < len(charset); i++ {
		rev[charset[i]] = int8(i)
	}
	return rev
}()

var (
	ErrInvalidLength    = errors.New("bech32: invalid length")
	ErrInvalidSeparator = errors.New("bech32: invalid separator position")
	ErrInvalidCharacter = errors.New("bech32: invalid character")
	ErrHRPMismatch      = errors.New("bech32: human-readable part mismatch")
	ErrInvalidChecksum  = errors.New("bech32: checksum mismatch")
	ErrInvalidPadding   = errors.New("bech32: invalid padding")
)

// Variant selects the generator, width and target constant of the checksum.
type Variant int

const (
	Bech32 Variant = iota
	Bech32m
	Blech32
	Blech32m
)

func (v Variant) String() string {
	switch v {
	case Bech32:
		return "bech32"
	case Bech32m:
		return "bech32m"
	case Blech32:
		return "blech32"
	case Blech32m:
		return "blech32m"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

type params struct {
	shift       uint
	mask        uint64
	generators  [5]uint64
	constant    uint64
	checksumLen int
	maxLen      int
}

var (
	bech32Generators  = [5]uint64{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}
	blech32Generators = [5]uint64{0x7d52fba40bd886, 0x5e8dbf1a03950c, 0x1c3a3c74072a18, 0x385d72fa0e5139, 0x7093e5a608865b}
)

func (v Variant) params() params {
	switch v {
	case Bech32m:
		return params{shift: 25, mask: 0x1ffffff, generators: bech32Generators, constant: 0x2bc830a3, checksumLen: 6, maxLen: 90}
	case Blech32:
		return params{shift: 55, mask: 0x7fffffffffffff, generators: blech32Generators, constant: 1, checksumLen: 12, maxLen: 1000}
	case Blech32m:
		return params{shift: 55, mask: 0x7fffffffffffff, generators: blech32Generators, constant: 0x455972a3350f7a1, checksumLen: 12, maxLen: 1000}
	default:
		return params{shift: 25, mask: 0x1ffffff, generators: bech32Generators, constant: 1, checksumLen: 6, maxLen: 90}
	}
}

// MaxLength is the default upper bound on the encoded length for v.
func (v Variant) MaxLength() int {
	return v.params().maxLen
}

// ChecksumLength is the number of checksum symbols for v.
func (v Variant) ChecksumLength() int {
	return v.params().checksumLen
}

func polymod(p params, groups ...[]byte) uint64 {
	chk := uint64(1)
	for _, values := range groups {
		for _, value := range values {
			top := chk >> p.shift
			chk = (chk&p.mask)<<5 ^ uint64(value)
			for i, g := range p.generators {
				if (top>>uint(i))&1 == 1 {
					chk ^= g
				}
			}
		}
	}
	return chk
}

func expandHRP(hrp string) []byte {
	out := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]>>5)
	}
	out = append(out, 0)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]&31)
	}
	return out
}

// split lowercases s and separates it at the last '1' into the hrp and the
// 5-bit values of the data and checksum symbols.
func split(s string, checksumLen, maxLen int) (string, []byte, error) {
	if len(s) > maxLen {
		return "", nil, fmt.Errorf("%w: %d exceeds %d", ErrInvalidLength, len(s), maxLen)
	}

	lower := strings.ToLower(s)
	pos := strings.LastIndexByte(lower, '1')
	if pos < 1 {
		return "", nil, ErrInvalidSeparator
	}
	if len(lower)-pos-1 < checksumLen {
		return "", nil, fmt.Errorf("%w: data part shorter than checksum", ErrInvalidLength)
	}

	values := make([]byte, 0, len(lower)-pos-1)
	for i := pos + 1; i < len(lower); i++ {
		c := lower[i]
		if c >= 128 || charsetRev[c] < 0 {
			return "", nil, fmt.Errorf("%w %q at position %d", ErrInvalidCharacter, c, i)
		}
		values = append(values, byte(charsetRev[c]))
	}

	return lower[:pos], values, nil
}

// DecodeWithLimit decodes s as variant v, allowing encodings up to maxLen
// characters. It returns the lowercase hrp and the 5-bit data values without
// the checksum.
func DecodeWithLimit(s string, v Variant, maxLen int) (string, []byte, error) {
	p := v.params()
	hrp, values, err := split(s, p.checksumLen, maxLen)
	if err != nil {
		return "", nil, err
	}
	if polymod(p, expandHRP(hrp), values) != p.constant {
		return "", nil, fmt.Errorf("%w (%s)", ErrInvalidChecksum, v)
	}
	return hrp, values[:len(values)-p.checksumLen], nil
}

// DecodeAs decodes s as variant v under the variant's default length limit.
func DecodeAs(s string, v Variant) (string, []byte, error) {
	return DecodeWithLimit(s, v, v.MaxLength())
}

// Decode decodes s as Bech32, falling back to Bech32m, and reports which
// variant matched.
func Decode(s string) (string, []byte, Variant, error) {
	hrp, data, err := DecodeAs(s, Bech32)
	if err == nil {
		return hrp, data, Bech32, nil
	}
	if !errors.Is(err, ErrInvalidChecksum) {
		return "", nil, Bech32, err
	}

	hrp, data, err = DecodeAs(s, Bech32m)
	if err != nil {
		return "", nil, Bech32m, err
	}
	return hrp, data, Bech32m, nil
}

// VerifyWithLimit reports whether s is a valid v encoding with the expected
// human-readable part, allowing encodings up to maxLen characters.
func VerifyWithLimit(s, expectedHRP string, v Variant, maxLen int) bool {
	hrp, _, err := DecodeWithLimit(s, v, maxLen)
	if err != nil {
		return false
	}
	return hrp == strings.ToLower(expectedHRP)
}

// Verify reports whether s is a valid v encoding with the expected
// human-readable part.
func Verify(s, expectedHRP string, v Variant) bool {
	return VerifyWithLimit(s, expectedHRP, v, v.MaxLength())
}

// Encode builds the lowercase v encoding of hrp and 5-bit data values.
func Encode(hrp string, data []byte, v Variant) (string, error) {
	p := v.params()
	if len(hrp) == 0 {
		return "", fmt.Errorf("%w: empty human-readable part", ErrInvalidLength)
	}
	hrp = strings.ToLower(hrp)
	for i := 0; i < len(hrp); i++ {
		if hrp[i] < 33 || hrp[i] > 126 {
			return "", fmt.Errorf("%w %q in human-readable part", ErrInvalidCharacter, hrp[i])
		}
	}
	for _, d := range data {
		if d > 31 {
			return "", fmt.Errorf("%w: data value %d exceeds 5 bits", ErrInvalidCharacter, d)
		}
	}

	mod := polymod(p, expandHRP(hrp), data, make([]byte, p.checksumLen)) ^ p.constant

	var sb strings.Builder
	sb.Grow(len(hrp) + 1 + len(data) + p.checksumLen)
	sb.WriteString(hrp)
	sb.WriteByte('1')
	for _, d := range data {
		sb.WriteByte(charset[d])
	}
	for i := 0; i < p.checksumLen; i++ {
		sb.WriteByte(charset[(mod>>(5*uint(p.checksumLen-1-i)))&31])
	}

	if sb.Len() > p.maxLen {
		return "", fmt.Errorf("%w: %d exceeds %d", ErrInvalidLength, sb.Len(), p.maxLen)
	}
	return sb.String(), nil
}

// ConvertBits regroups a slice of fromBits-wide values into toBits-wide
// values. With pad set, a trailing partial group is zero padded; otherwise
// it must be empty and all-zero.
func ConvertBits(data []byte, fromBits, toBits uint, pad bool) ([]byte, error) {
	var acc uint32
	var bits uint
	maxv := uint32(1)<<toBits - 1
	out := make([]byte, 0, len(data)*int(fromBits)/int(toBits)+1)

	for _, value := range data {
		if uint32(value)>>fromBits != 0 {
			return nil, fmt.Errorf("%w: value %d exceeds %d bits", ErrInvalidCharacter, value, fromBits)
		}
		acc = acc<<fromBits | uint32(value)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			out = append(out, byte(acc>>bits&maxv))
		}
	}

	if pad {
		if bits > 0 {
			out = append(out, byte(acc<<(toBits-bits)&maxv))
		}
	} else if bits >= fromBits || acc<<(toBits-bits)&maxv != 0 {
		return nil, ErrInvalidPadding
	}
	return out, nil
}
