package classifiers

import (
	"regexp"

	"github.com/vitwit/addrcheck/types"
	"github.com/vitwit/addrcheck/utils/base58"
	"github.com/vitwit/addrcheck/utils/bech32"
)

var bitcoinLegacyPattern = regexp.MustCompile(`^[13mn2][a-km-zA-HJ-NP-Z1-9]{25,34}$`)

var bitcoinVersions = map[byte]label{
	0x00: {types.NetworkMainnet, "Bitcoin Mainnet"},
	0x05: {types.NetworkMainnet, "Bitcoin Mainnet"},
	0x6f: {types.NetworkTestnet, "Bitcoin Testnet"},
	0xc4: {types.NetworkTestnet, "Bitcoin Testnet"},
}

var bitcoinSegwitRules = []segwitRule{
	{regexp.MustCompile(`(?i)^bc1q[a-z0-9]{38,58}$`), "bc", bech32.Bech32, label{types.NetworkMainnet, "Bitcoin Mainnet (SegWit)"}},
	{regexp.MustCompile(`(?i)^bc1p[a-z0-9]{58}$`), "bc", bech32.Bech32m, label{types.NetworkMainnet, "Bitcoin Mainnet (Taproot)"}},
	{regexp.MustCompile(`(?i)^tb1q[a-z0-9]{38,58}$`), "tb", bech32.Bech32, label{types.NetworkTestnet, "Bitcoin Testnet (SegWit)"}},
	{regexp.MustCompile(`(?i)^tb1p[a-z0-9]{58}$`), "tb", bech32.Bech32m, label{types.NetworkTestnet, "Bitcoin Testnet (Taproot)"}},
}

// Bitcoin accepts P2PKH and P2SH Base58Check addresses, Bech32 SegWit v0
// and Bech32m Taproot addresses on mainnet and testnet.
type Bitcoin struct{}

var _ Classifier = (*Bitcoin)(nil)

func (*Bitcoin) Chain() types.Chain {
	return types.ChainBitcoin
}

func (*Bitcoin) Classify(address string) (types.ValidationResult, error) {
	if bitcoinLegacyPattern.MatchString(address) {
		return classifyBase58Check(address, base58.BitcoinAlphabet, bitcoinVersions)
	}

	if res, ok, err := classifySegwit(address, bitcoinSegwitRules); ok {
		return res, err
	}

	return noMatch(types.ChainBitcoin)
}
