package eip55

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var checksummed = []string{
	"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
	"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
	"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	"0xfE4bF92DBa94090E64f5EC571182721B7f16d859",
	"0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
}

func TestVerify(t *testing.T) {
	t.Parallel()

	for _, addr := range checksummed {
		assert.True(t, Verify(addr), addr)
		assert.True(t, Verify(strings.ToLower(addr)), "lowercase %s", addr)
		assert.True(t, Verify("0x"+strings.ToUpper(addr[2:])), "uppercase %s", addr)
	}

	tests := []struct {
		name    string
		address string
	}{
		{name: "wrong casing", address: "0x5aAeb6053f3E94C9b9A09f33669435E7Ef1BeAed"},
		{name: "swapped casing", address: "0x5AaEB6053f3e94c9B9a09F33669435e7eF1bEaED"},
		{name: "missing prefix", address: "5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"},
		{name: "uppercase prefix", address: "0X5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"},
		{name: "too short", address: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAe"},
		{name: "non hex", address: "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeg"},
		{name: "empty", address: ""},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.False(t, Verify(tc.address))
		})
	}
}

func TestChecksumMatchesGoEthereum(t *testing.T) {
	t.Parallel()

	for _, addr := range checksummed {
		got, err := Checksum(strings.ToLower(addr))
		require.NoError(t, err)
		assert.Equal(t, addr, got)
		assert.Equal(t, common.HexToAddress(addr).Hex(), got)
	}

	_, err := Checksum("0x1234")
	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestSingleCaseFlipFails(t *testing.T) {
	t.Parallel()

	addr := checksummed[0]
	for i := 2; i < len(addr); i++ {
		c := addr[i]
		var flipped byte
		switch {
		case c >= 'a' && c <= 'f':
			flipped = c - 'a' + 'A'
		case c >= 'A' && c <= 'F':
			flipped = c - 'A' + 'a'
		default:
			continue
		}
		mutated := []byte(addr)
		mutated[i] = flipped
		assert.False(t, Verify(string(mutated)), "flip at %d verified", i)
	}
}
