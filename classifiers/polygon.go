package classifiers

import "github.com/vitwit/addrcheck/types"

// Polygon uses the same address format as Ethereum.
type Polygon struct{}

var _ Classifier = (*Polygon)(nil)

func (*Polygon) Chain() types.Chain {
	return types.ChainPolygon
}

func (*Polygon) Classify(address string) (types.ValidationResult, error) {
	return classifyEVM(address, types.ChainPolygon, "Polygon Mainnet")
}
