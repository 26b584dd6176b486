package addrcheck

import (
	"sort"

	"github.com/vitwit/addrcheck/types"
)

// maxListedAliasLen hides the long-form aliases (ETHEREUM, BITCOINCASH, ...)
// from SupportedNetworks.
const maxListedAliasLen = 7

// networkAliases maps upper-case network identifiers to chains. It is never
// written after initialisation.
var networkAliases = map[string]types.Chain{
	"BTC":     types.ChainBitcoin,
	"BITCOIN": types.ChainBitcoin,

	// EVM networks share the Ethereum address format
	"ETH":      types.ChainEthereum,
	"ETHEREUM": types.ChainEthereum,
	"ERC20":    types.ChainEthereum,
	"BSC":      types.ChainEthereum,
	"BNB":      types.ChainEthereum,
	"AVAX":     types.ChainEthereum,
	"AVAXC":    types.ChainEthereum,
	"BASE":     types.ChainEthereum,
	"OPTIMISM": types.ChainEthereum,
	"OP":       types.ChainEthereum,
	"ARBITRUM": types.ChainEthereum,
	"ARB":      types.ChainEthereum,

	"MATIC":   types.ChainPolygon,
	"POLYGON": types.ChainPolygon,
	"POL":     types.ChainPolygon,

	"LTC":      types.ChainLitecoin,
	"LITECOIN": types.ChainLitecoin,

	"LBTC":   types.ChainLiquid,
	"LIQUID": types.ChainLiquid,

	"DOGE":     types.ChainDogecoin,
	"DOGECOIN": types.ChainDogecoin,

	"XRP":    types.ChainRipple,
	"RIPPLE": types.ChainRipple,
	"XRPL":   types.ChainRipple,

	"ADA":     types.ChainCardano,
	"CARDANO": types.ChainCardano,

	"SOL":    types.ChainSolana,
	"SOLANA": types.ChainSolana,
	"SPL":    types.ChainSolana,

	"TRX":   types.ChainTron,
	"TRON":  types.ChainTron,
	"TRC20": types.ChainTron,

	"BCH":         types.ChainBitcoinCash,
	"BITCOINCASH": types.ChainBitcoinCash,

	"DOT":      types.ChainPolkadot,
	"POLKADOT": types.ChainPolkadot,
}

var listedNetworks = func() []string {
	out := make([]string, 0, len(networkAliases))
	for alias := range networkAliases {
		if len(alias) <= maxListedAliasLen {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}()

// lookupChain resolves a normalised alias.
func lookupChain(alias string) (types.Chain, bool) {
	c, ok := networkAliases[alias]
	return c, ok
}

// supportedNetworks returns a copy of the listed aliases.
func supportedNetworks() []string {
	return append([]string(nil), listedNetworks...)
}
