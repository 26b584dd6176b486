package types

// Chain identifies one of the supported address classifiers.
type Chain string

const (
	ChainBitcoin     Chain = "bitcoin"
	ChainBitcoinCash Chain = "bitcoincash"
	ChainLitecoin    Chain = "litecoin"
	ChainDogecoin    Chain = "dogecoin"
	ChainLiquid      Chain = "liquid"
	ChainEthereum    Chain = "ethereum"
	ChainPolygon     Chain = "polygon"
	ChainRipple      Chain = "ripple"
	ChainCardano     Chain = "cardano"
	ChainSolana      Chain = "solana"
	ChainTron        Chain = "tron"
	ChainPolkadot    Chain = "polkadot"
)

// Chains lists every supported chain in a stable order.
func Chains() []Chain {
	return []Chain{
		ChainBitcoin,
		ChainBitcoinCash,
		ChainLitecoin,
		ChainDogecoin,
		ChainLiquid,
		ChainEthereum,
		ChainPolygon,
		ChainRipple,
		ChainCardano,
		ChainSolana,
		ChainTron,
		ChainPolkadot,
	}
}

// ChainFamily classifies a chain by its address model.
type ChainFamily string

const (
	FamilyUTXO      ChainFamily = "utxo"
	FamilyEVM       ChainFamily = "evm"
	FamilyAccount   ChainFamily = "account"
	FamilySubstrate ChainFamily = "substrate"
)

// Family returns the family a chain belongs to, or "" for unknown chains.
func (c Chain) Family() ChainFamily {
	switch c {
	case ChainBitcoin, ChainBitcoinCash, ChainLitecoin, ChainDogecoin, ChainLiquid, ChainCardano:
		return FamilyUTXO
	case ChainEthereum, ChainPolygon:
		return FamilyEVM
	case ChainRipple, ChainSolana, ChainTron:
		return FamilyAccount
	case ChainPolkadot:
		return FamilySubstrate
	default:
		return ""
	}
}

// IsEVM reports whether addresses on the chain use EIP-55 casing.
func (c Chain) IsEVM() bool {
	return c.Family() == FamilyEVM
}

func (c Chain) String() string {
	return string(c)
}
