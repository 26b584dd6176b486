package classifiers

import (
	"regexp"

	"github.com/vitwit/addrcheck/types"
	"github.com/vitwit/addrcheck/utils/base58"
)

var dogecoinPattern = regexp.MustCompile(`^(?:D[5-9A-HJ-NP-U]|n` + b58 + `)[a-km-zA-HJ-NP-Z1-9]{32}$`)

var dogecoinVersions = map[byte]label{
	0x1e: {types.NetworkMainnet, "Dogecoin Mainnet"},
	0x71: {types.NetworkTestnet, "Dogecoin Testnet"},
}

// Dogecoin accepts P2PKH Base58Check addresses.
type Dogecoin struct{}

var _ Classifier = (*Dogecoin)(nil)

func (*Dogecoin) Chain() types.Chain {
	return types.ChainDogecoin
}

func (*Dogecoin) Classify(address string) (types.ValidationResult, error) {
	if !dogecoinPattern.MatchString(address) {
		return noMatch(types.ChainDogecoin)
	}
	return classifyBase58Check(address, base58.BitcoinAlphabet, dogecoinVersions)
}
