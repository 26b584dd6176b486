// Package classifiers recognises the address formats of each supported chain
// and maps them to a network variant and label.
package classifiers

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/vitwit/addrcheck/types"
	"github.com/vitwit/addrcheck/utils/base58"
	"github.com/vitwit/addrcheck/utils/bech32"
	"github.com/vitwit/addrcheck/utils/ss58"
)

// Classifier validates addresses of a single chain. Classify never panics on
// malformed input; when the result is invalid the error is a
// *types.AddrError describing why.
type Classifier interface {
	Chain() types.Chain
	Classify(address string) (types.ValidationResult, error)
}

// Options tunes classifier behaviour.
type Options struct {
	// Strict enables checksum verification for formats that are otherwise
	// accepted on shape alone (Polkadot, Tron, Cardano Byron, CashAddr).
	Strict bool
}

// For returns the classifier for chain.
func For(chain types.Chain, opts Options) (Classifier, bool) {
	switch chain {
	case types.ChainBitcoin:
		return &Bitcoin{}, true
	case types.ChainBitcoinCash:
		return &BitcoinCash{Strict: opts.Strict}, true
	case types.ChainLitecoin:
		return &Litecoin{}, true
	case types.ChainDogecoin:
		return &Dogecoin{}, true
	case types.ChainLiquid:
		return &Liquid{}, true
	case types.ChainEthereum:
		return &Ethereum{}, true
	case types.ChainPolygon:
		return &Polygon{}, true
	case types.ChainRipple:
		return &Ripple{}, true
	case types.ChainCardano:
		return &Cardano{Strict: opts.Strict}, true
	case types.ChainSolana:
		return &Solana{}, true
	case types.ChainTron:
		return &Tron{Strict: opts.Strict}, true
	case types.ChainPolkadot:
		return &Polkadot{Strict: opts.Strict}, true
	default:
		return nil, false
	}
}

// base58 symbol class shared by the shape patterns
const b58 = `[1-9A-HJ-NP-Za-km-z]`

// hash160Len is the length of the hash carried by legacy Base58Check
// addresses.
const hash160Len = 20

type label struct {
	network types.NetworkType
	name    string
}

func accept(network types.NetworkType, name string) (types.ValidationResult, error) {
	return types.Valid(network, name), nil
}

func addrError(code, format string, args ...any) error {
	return &types.AddrError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

func reject(code, format string, args ...any) (types.ValidationResult, error) {
	return types.Invalid(), addrError(code, format, args...)
}

func noMatch(chain types.Chain) (types.ValidationResult, error) {
	return reject(types.ErrShapeMismatch, "address does not match any %s format", chain)
}

// rejectDecode maps a codec error to a checksum or decode failure.
func rejectDecode(err error) (types.ValidationResult, error) {
	code := types.ErrDecodeFailure
	if errors.Is(err, base58.ErrInvalidChecksum) ||
		errors.Is(err, bech32.ErrInvalidChecksum) ||
		errors.Is(err, ss58.ErrInvalidChecksum) {
		code = types.ErrChecksumFailure
	}
	return reject(code, "%v", err)
}

// classifyBase58Check verifies a legacy Base58Check address carrying a
// 20-byte hash and labels it by version byte.
func classifyBase58Check(address string, alphabet *base58.Alphabet, versions map[byte]label) (types.ValidationResult, error) {
	version, payload, err := alphabet.CheckDecode(address)
	if err != nil {
		return rejectDecode(err)
	}
	if len(payload) != hash160Len {
		return reject(types.ErrDecodeFailure, "expected %d byte hash, got %d", hash160Len, len(payload))
	}

	l, ok := versions[version]
	if !ok {
		return reject(types.ErrShapeMismatch, "unexpected version byte 0x%02x", version)
	}
	return accept(l.network, l.name)
}

// segwitRule is a Bech32-family shape bound to a checksum variant.
type segwitRule struct {
	pattern *regexp.Regexp
	hrp     string
	variant bech32.Variant
	label
}

// classifySegwit evaluates rules in order. The first matching shape decides
// the outcome.
func classifySegwit(address string, rules []segwitRule) (res types.ValidationResult, matched bool, err error) {
	for _, r := range rules {
		if !r.pattern.MatchString(address) {
			continue
		}
		if !bech32.Verify(address, r.hrp, r.variant) {
			res, err = reject(types.ErrChecksumFailure, "invalid %s checksum for hrp %q", r.variant, r.hrp)
			return res, true, err
		}
		res, err = accept(r.network, r.name)
		return res, true, err
	}
	return types.Invalid(), false, nil
}
