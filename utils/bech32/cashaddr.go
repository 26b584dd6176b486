package bech32

import (
	"fmt"
	"strings"
)

var cashAddrParams = params{
	shift:       35,
	mask:        0x07ffffffff,
	generators:  [5]uint64{0x98f2bc8e61, 0x79b76d99e2, 0xf33e5fb3c4, 0xae2eabe2a8, 0x1e4f43e470},
	constant:    1,
	checksumLen: 8,
	maxLen:      112,
}

// CashAddr prefixes
const (
	CashAddrMainnet = "bitcoincash"
	CashAddrTestnet = "bchtest"
)

func expandCashAddrPrefix(prefix string) []byte {
	out := make([]byte, 0, len(prefix)+1)
	for i := 0; i < len(prefix); i++ {
		out = append(out, prefix[i]&31)
	}
	return append(out, 0)
}

// DecodeCashAddr verifies a CashAddr string and returns its prefix. Payloads
// without an explicit "prefix:" are checked against defaultPrefix.
func DecodeCashAddr(s, defaultPrefix string) (string, []byte, error) {
	lower := strings.ToLower(s)
	if lower != s && strings.ToUpper(s) != s {
		return "", nil, fmt.Errorf("%w: mixed case", ErrInvalidCharacter)
	}

	prefix, payload := defaultPrefix, lower
	if i := strings.IndexByte(lower, ':'); i >= 0 {
		prefix, payload = lower[:i], lower[i+1:]
	}
	if prefix == "" {
		return "", nil, ErrInvalidSeparator
	}
	if len(payload) <= cashAddrParams.checksumLen || len(payload) > cashAddrParams.maxLen {
		return "", nil, fmt.Errorf("%w: payload of %d symbols", ErrInvalidLength, len(payload))
	}

	values := make([]byte, 0, len(payload))
	for i := 0; i < len(payload); i++ {
		c := payload[i]
		if c >= 128 || charsetRev[c] < 0 {
			return "", nil, fmt.Errorf("%w %q at position %d", ErrInvalidCharacter, c, i)
		}
		values = append(values, byte(charsetRev[c]))
	}

	if polymod(cashAddrParams, expandCashAddrPrefix(prefix), values)^1 != 0 {
		return "", nil, fmt.Errorf("%w (cashaddr)", ErrInvalidChecksum)
	}
	return prefix, values[:len(values)-cashAddrParams.checksumLen], nil
}

// VerifyCashAddr reports whether s is a valid CashAddr under its own prefix
// or, when it has none, under defaultPrefix.
func VerifyCashAddr(s, defaultPrefix string) bool {
	_, _, err := DecodeCashAddr(s, defaultPrefix)
	return err == nil
}
