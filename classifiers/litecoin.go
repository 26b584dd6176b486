package classifiers

import (
	"regexp"

	"github.com/vitwit/addrcheck/types"
	"github.com/vitwit/addrcheck/utils/base58"
	"github.com/vitwit/addrcheck/utils/bech32"
)

var litecoinLegacyPattern = regexp.MustCompile(`^[LM3mn2][a-km-zA-HJ-NP-Z1-9]{26,33}$`)

var litecoinVersions = map[byte]label{
	0x30: {types.NetworkMainnet, "Litecoin Mainnet"},
	0x32: {types.NetworkMainnet, "Litecoin Mainnet"},
	0x05: {types.NetworkMainnet, "Litecoin Mainnet"},
	0x6f: {types.NetworkTestnet, "Litecoin Testnet"},
	0xc4: {types.NetworkTestnet, "Litecoin Testnet"},
}

// Witness v0 programs use Bech32; any later version uses Bech32m.
var litecoinSegwitRules = []segwitRule{
	{regexp.MustCompile(`(?i)^ltc1q[a-z0-9]{38,86}$`), "ltc", bech32.Bech32, label{types.NetworkMainnet, "Litecoin Mainnet (SegWit)"}},
	{regexp.MustCompile(`(?i)^ltc1[a-z0-9]{39,87}$`), "ltc", bech32.Bech32m, label{types.NetworkMainnet, "Litecoin Mainnet (Taproot)"}},
	{regexp.MustCompile(`(?i)^tltc1q[a-z0-9]{38,86}$`), "tltc", bech32.Bech32, label{types.NetworkTestnet, "Litecoin Testnet (SegWit)"}},
	{regexp.MustCompile(`(?i)^tltc1[a-z0-9]{39,87}$`), "tltc", bech32.Bech32m, label{types.NetworkTestnet, "Litecoin Testnet (Taproot)"}},
}

// Litecoin accepts legacy Base58Check addresses and native SegWit addresses.
type Litecoin struct{}

var _ Classifier = (*Litecoin)(nil)

func (*Litecoin) Chain() types.Chain {
	return types.ChainLitecoin
}

func (*Litecoin) Classify(address string) (types.ValidationResult, error) {
	if litecoinLegacyPattern.MatchString(address) {
		return classifyBase58Check(address, base58.BitcoinAlphabet, litecoinVersions)
	}

	if res, ok, err := classifySegwit(address, litecoinSegwitRules); ok {
		return res, err
	}

	return noMatch(types.ChainLitecoin)
}
