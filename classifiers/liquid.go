package classifiers

import (
	"regexp"

	"github.com/vitwit/addrcheck/types"
	"github.com/vitwit/addrcheck/utils/base58"
	"github.com/vitwit/addrcheck/utils/bech32"
)

const (
	liquidMainnet = "Liquid Network Mainnet"
	liquidTestnet = "Liquid Network Testnet"
	confidential  = " (Confidential)"
)

type liquidRule struct {
	pattern *regexp.Regexp
	hrp     string
	label
}

var liquidSegwitRules = []liquidRule{
	{regexp.MustCompile(`(?i)^lq1[a-z0-9]{38,120}$`), "lq", label{types.NetworkMainnet, liquidMainnet}},
	{regexp.MustCompile(`(?i)^tlq1[a-z0-9]{38,120}$`), "tlq", label{types.NetworkTestnet, liquidTestnet}},
}

var liquidConfidentialRules = []liquidRule{
	{pattern: regexp.MustCompile(`^VJ` + b58 + `{77,79}$`), label: label{types.NetworkMainnet, liquidMainnet + confidential}},
	{pattern: regexp.MustCompile(`^VT` + b58 + `{77,79}$`), label: label{types.NetworkMainnet, liquidMainnet + confidential}},
	{pattern: regexp.MustCompile(`^CTEp` + b58 + `{74,77}$`), label: label{types.NetworkTestnet, liquidTestnet + confidential}},
	{pattern: regexp.MustCompile(`^CTET` + b58 + `{74,77}$`), label: label{types.NetworkTestnet, liquidTestnet + confidential}},
}

var liquidLegacyPattern = regexp.MustCompile(`^[QH]` + b58 + `{25,34}$`)

var liquidVersions = map[byte]label{
	0x39: {types.NetworkMainnet, liquidMainnet},
	0x27: {types.NetworkMainnet, liquidMainnet},
}

// Liquid accepts Blech32 confidential and Bech32 unconfidential segwit
// addresses, Base58Check confidential addresses and legacy P2PKH/P2SH
// addresses.
type Liquid struct{}

var _ Classifier = (*Liquid)(nil)

func (*Liquid) Chain() types.Chain {
	return types.ChainLiquid
}

func (*Liquid) Classify(address string) (types.ValidationResult, error) {
	for _, r := range liquidSegwitRules {
		if !r.pattern.MatchString(address) {
			continue
		}

		switch {
		case bech32.Verify(address, r.hrp, bech32.Blech32), bech32.Verify(address, r.hrp, bech32.Blech32m):
			return accept(r.network, r.name+confidential)
		case bech32.Verify(address, r.hrp, bech32.Bech32), bech32.Verify(address, r.hrp, bech32.Bech32m):
			return accept(r.network, r.name)
		}
		return reject(types.ErrChecksumFailure, "no blech32 or bech32 checksum matches hrp %q", r.hrp)
	}

	for _, r := range liquidConfidentialRules {
		if !r.pattern.MatchString(address) {
			continue
		}
		if _, _, err := base58.CheckDecode(address); err != nil {
			return rejectDecode(err)
		}
		return accept(r.network, r.name)
	}

	if liquidLegacyPattern.MatchString(address) {
		return classifyBase58Check(address, base58.BitcoinAlphabet, liquidVersions)
	}

	return noMatch(types.ChainLiquid)
}
