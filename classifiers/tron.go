package classifiers

import (
	"regexp"

	"github.com/vitwit/addrcheck/types"
	"github.com/vitwit/addrcheck/utils/base58"
)

var tronPattern = regexp.MustCompile(`^T` + b58 + `{33}$`)

var tronVersions = map[byte]label{
	0x41: {types.NetworkMainnet, "Tron Mainnet"},
}

// Tron accepts base58 account addresses. Only the shape is checked unless
// Strict is set, in which case the Base58Check checksum and the 0x41
// version byte are verified.
type Tron struct {
	Strict bool
}

var _ Classifier = (*Tron)(nil)

func (*Tron) Chain() types.Chain {
	return types.ChainTron
}

func (t *Tron) Classify(address string) (types.ValidationResult, error) {
	if !tronPattern.MatchString(address) {
		return noMatch(types.ChainTron)
	}
	if t.Strict {
		return classifyBase58Check(address, base58.BitcoinAlphabet, tronVersions)
	}
	return accept(types.NetworkMainnet, "Tron Mainnet")
}
