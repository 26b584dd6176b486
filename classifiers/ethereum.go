package classifiers

import (
	"github.com/vitwit/addrcheck/types"
	"github.com/vitwit/addrcheck/utils/eip55"
)

// Ethereum accepts 0x-prefixed 20-byte hex addresses with valid EIP-55
// casing. It serves every EVM network aliased to it (BSC, Avalanche C-Chain,
// Base, Arbitrum, Optimism).
type Ethereum struct{}

var _ Classifier = (*Ethereum)(nil)

func (*Ethereum) Chain() types.Chain {
	return types.ChainEthereum
}

func (*Ethereum) Classify(address string) (types.ValidationResult, error) {
	return classifyEVM(address, types.ChainEthereum, "Ethereum Mainnet")
}

func classifyEVM(address string, chain types.Chain, name string) (types.ValidationResult, error) {
	if !eip55.IsAddress(address) {
		return noMatch(chain)
	}
	if !eip55.Verify(address) {
		return reject(types.ErrChecksumFailure, "EIP-55 checksum casing mismatch")
	}
	return accept(types.NetworkMainnet, name)
}
