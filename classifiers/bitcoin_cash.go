package classifiers

import (
	"regexp"
	"strings"

	"github.com/vitwit/addrcheck/types"
	"github.com/vitwit/addrcheck/utils/base58"
	"github.com/vitwit/addrcheck/utils/bech32"
)

var cashAddrPattern = regexp.MustCompile(`(?i)^(bitcoincash:|bchtest:)?[qp][a-z0-9]{41}$`)

var bitcoinCashVersions = map[byte]label{
	0x00: {types.NetworkMainnet, "Bitcoin Cash Mainnet (Legacy)"},
	0x05: {types.NetworkMainnet, "Bitcoin Cash Mainnet (Legacy)"},
	0x6f: {types.NetworkTestnet, "Bitcoin Cash Testnet (Legacy)"},
	0xc4: {types.NetworkTestnet, "Bitcoin Cash Testnet (Legacy)"},
}

// BitcoinCash accepts CashAddr and legacy Base58Check addresses. CashAddr
// is checked for shape only unless Strict is set.
type BitcoinCash struct {
	Strict bool
}

var _ Classifier = (*BitcoinCash)(nil)

func (*BitcoinCash) Chain() types.Chain {
	return types.ChainBitcoinCash
}

func (b *BitcoinCash) Classify(address string) (types.ValidationResult, error) {
	if cashAddrPattern.MatchString(address) {
		return b.classifyCashAddr(address)
	}

	if bitcoinLegacyPattern.MatchString(address) {
		return classifyBase58Check(address, base58.BitcoinAlphabet, bitcoinCashVersions)
	}

	return noMatch(types.ChainBitcoinCash)
}

func (b *BitcoinCash) classifyCashAddr(address string) (types.ValidationResult, error) {
	prefix := bech32.CashAddrMainnet
	if b.Strict {
		p, _, err := bech32.DecodeCashAddr(address, bech32.CashAddrMainnet)
		if err != nil {
			return rejectDecode(err)
		}
		prefix = p
	} else if strings.HasPrefix(strings.ToLower(address), bech32.CashAddrTestnet+":") {
		prefix = bech32.CashAddrTestnet
	}

	if prefix == bech32.CashAddrTestnet {
		return accept(types.NetworkTestnet, "Bitcoin Cash Testnet")
	}
	return accept(types.NetworkMainnet, "Bitcoin Cash Mainnet")
}
