package classifiers

import (
	"regexp"

	"github.com/gagliardetto/solana-go"

	"github.com/vitwit/addrcheck/types"
)

var solanaPattern = regexp.MustCompile(`^` + b58 + `{32,44}$`)

// Solana accepts base58 encoded 32-byte public keys.
type Solana struct{}

var _ Classifier = (*Solana)(nil)

func (*Solana) Chain() types.Chain {
	return types.ChainSolana
}

func (*Solana) Classify(address string) (types.ValidationResult, error) {
	if !solanaPattern.MatchString(address) {
		return noMatch(types.ChainSolana)
	}

	if _, err := solana.PublicKeyFromBase58(address); err != nil {
		return reject(types.ErrDecodeFailure, "invalid solana public key: %v", err)
	}
	return accept(types.NetworkMainnet, "Solana Mainnet")
}
