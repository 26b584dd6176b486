package classifiers

import (
	"github.com/vitwit/addrcheck/types"
	"github.com/vitwit/addrcheck/utils/base58"
)

const (
	rippleMinLen = 25
	rippleMaxLen = 35
)

var rippleVersions = map[byte]label{
	0x00: {types.NetworkMainnet, "Ripple Mainnet"},
}

// Ripple accepts classic XRP Ledger account addresses encoded with the
// Ripple base58 alphabet.
type Ripple struct{}

var _ Classifier = (*Ripple)(nil)

func (*Ripple) Chain() types.Chain {
	return types.ChainRipple
}

func (*Ripple) Classify(address string) (types.ValidationResult, error) {
	if len(address) < rippleMinLen || len(address) > rippleMaxLen || address[0] != 'r' {
		return noMatch(types.ChainRipple)
	}
	return classifyBase58Check(address, base58.RippleAlphabet, rippleVersions)
}
