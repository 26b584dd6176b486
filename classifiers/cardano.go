package classifiers

import (
	"hash/crc32"
	"regexp"

	"github.com/fxamacker/cbor/v2"

	"github.com/vitwit/addrcheck/types"
	"github.com/vitwit/addrcheck/utils/base58"
	"github.com/vitwit/addrcheck/utils/bech32"
)

// Shelley addresses routinely exceed the 90 character Bech32 limit.
const cardanoMaxLen = 1023

// CBOR tag for an embedded encoded data item
const cborTagEncoded = 24

var (
	cardanoMainnetPattern = regexp.MustCompile(`(?i)^addr1[a-z0-9]{53,}$`)
	cardanoTestnetPattern = regexp.MustCompile(`(?i)^addr_test1[a-z0-9]{53,}$`)
	byronPattern          = regexp.MustCompile(`^(Ae2|DdzFF)` + b58 + `{50,200}$`)
)

// byronAddress is the outer CBOR envelope of a Byron address:
// [tag 24(bytes), crc32(bytes)].
type byronAddress struct {
	_       struct{} `cbor:",toarray"`
	Payload cbor.RawTag
	CRC     uint32
}

// Cardano accepts Shelley Bech32 addresses and legacy Byron base58
// addresses. Byron addresses are matched on shape alone unless Strict is
// set, in which case the CBOR envelope and its CRC-32 are verified.
type Cardano struct {
	Strict bool
}

var _ Classifier = (*Cardano)(nil)

func (*Cardano) Chain() types.Chain {
	return types.ChainCardano
}

func (c *Cardano) Classify(address string) (types.ValidationResult, error) {
	switch {
	case cardanoMainnetPattern.MatchString(address):
		return classifyShelley(address, "addr", types.NetworkMainnet, "Cardano Mainnet")
	case cardanoTestnetPattern.MatchString(address):
		return classifyShelley(address, "addr_test", types.NetworkTestnet, "Cardano Testnet")
	case byronPattern.MatchString(address):
		if c.Strict {
			if err := verifyByron(address); err != nil {
				return types.Invalid(), err
			}
		}
		return accept(types.NetworkMainnet, "Cardano Mainnet (Byron)")
	}

	return noMatch(types.ChainCardano)
}

func classifyShelley(address, hrp string, network types.NetworkType, name string) (types.ValidationResult, error) {
	if !bech32.VerifyWithLimit(address, hrp, bech32.Bech32, cardanoMaxLen) {
		return reject(types.ErrChecksumFailure, "invalid bech32 checksum for hrp %q", hrp)
	}
	return accept(network, name)
}

func verifyByron(address string) error {
	raw, err := base58.Decode(address)
	if err != nil {
		return addrError(types.ErrDecodeFailure, "%v", err)
	}

	var env byronAddress
	if err := cbor.Unmarshal(raw, &env); err != nil {
		return addrError(types.ErrDecodeFailure, "malformed byron envelope: %v", err)
	}
	if env.Payload.Number != cborTagEncoded {
		return addrError(types.ErrDecodeFailure, "unexpected byron payload tag %d", env.Payload.Number)
	}

	var payload []byte
	if err := cbor.Unmarshal(env.Payload.Content, &payload); err != nil {
		return addrError(types.ErrDecodeFailure, "malformed byron payload: %v", err)
	}
	if crc32.ChecksumIEEE(payload) != env.CRC {
		return addrError(types.ErrChecksumFailure, "byron crc32 mismatch")
	}
	return nil
}
