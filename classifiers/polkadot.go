package classifiers

import (
	"regexp"

	"github.com/vitwit/addrcheck/types"
	"github.com/vitwit/addrcheck/utils/ss58"
)

var polkadotPattern = regexp.MustCompile(`^1` + b58 + `{46,47}$`)

// Polkadot accepts relay chain SS58 addresses. Only the shape is checked
// unless Strict is set, in which case the SS58 checksum and the Polkadot
// network prefix are verified.
type Polkadot struct {
	Strict bool
}

var _ Classifier = (*Polkadot)(nil)

func (*Polkadot) Chain() types.Chain {
	return types.ChainPolkadot
}

func (p *Polkadot) Classify(address string) (types.ValidationResult, error) {
	if !polkadotPattern.MatchString(address) {
		return noMatch(types.ChainPolkadot)
	}

	if p.Strict {
		addr, err := ss58.Decode(address)
		if err != nil {
			return rejectDecode(err)
		}
		if addr.Prefix != ss58.PrefixPolkadot {
			return reject(types.ErrShapeMismatch, "ss58 prefix %d is not polkadot", addr.Prefix)
		}
	}
	return accept(types.NetworkMainnet, "Polkadot Mainnet")
}
