package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationResultJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Invalid())
	require.NoError(t, err)
	assert.JSONEq(t, `{"isValid":false,"network":null,"network_name":null}`, string(data))

	data, err = json.Marshal(Valid(NetworkTestnet, "Bitcoin Testnet (SegWit)"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"isValid":true,"network":"testnet","network_name":"Bitcoin Testnet (SegWit)"}`, string(data))

	var decoded ValidationResult
	require.NoError(t, json.Unmarshal([]byte(`{"isValid":false,"network":null,"network_name":null}`), &decoded))
	assert.Equal(t, Invalid(), decoded)

	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, Valid(NetworkTestnet, "Bitcoin Testnet (SegWit)"), decoded)
}

func TestChainFamily(t *testing.T) {
	t.Parallel()

	for _, c := range Chains() {
		assert.NotEmpty(t, c.Family(), c.String())
	}
	assert.True(t, ChainPolygon.IsEVM())
	assert.False(t, ChainTron.IsEVM())
	assert.Empty(t, Chain("cosmos").Family())
}

func TestAddrError(t *testing.T) {
	t.Parallel()

	err := &AddrError{Code: ErrChecksumFailure, Message: "bad checksum"}
	assert.EqualError(t, err, "CHECKSUM_FAILURE: bad checksum")
}
