package ss58

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitwit/addrcheck/utils/base58"
)

const alicePublicKey = "d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"

func TestVerify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		address    string
		want       Result
		wantKeyLen int
	}{
		{name: "polkadot alice", address: "15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5", want: Result{Valid: true, Prefix: PrefixPolkadot, HasPrefix: true}, wantKeyLen: 32},
		{name: "polkadot 47 chars", address: "1j8NkQM7pqpdzPTjvXQ7aG7kq2FNtPgnXdHuSLCLojij8mD", want: Result{Valid: true, Prefix: PrefixPolkadot, HasPrefix: true}, wantKeyLen: 32},
		{name: "kusama", address: "DJStjV9tQbGx7CPYzHSsNny3oJqVFejAQjZ8ocoGWvhHoSv", want: Result{Valid: true, Prefix: PrefixKusama, HasPrefix: true}, wantKeyLen: 32},
		{name: "generic substrate", address: "5CnqER9HG3aMCTNwnHUPyRRxuD2bgaqYi2tok9LqniiCYtob", want: Result{Valid: true, Prefix: PrefixGeneric, HasPrefix: true}, wantKeyLen: 32},
		{name: "generic alice", address: "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY", want: Result{Valid: true, Prefix: PrefixGeneric, HasPrefix: true}, wantKeyLen: 32},
		{name: "two byte prefix 255", address: "yGDTdrBTt8mn6VgnamptBLMoEFbirJYuumTFEUgzvuKzYhmye", want: Result{Valid: true, Prefix: 255, HasPrefix: true}, wantKeyLen: 32},
		{name: "two byte prefix 1284", address: "VdrFer9aFEYZvL37wdsTkMzxBNPGhvR9JYakjTL6nHc61B991", want: Result{Valid: true, Prefix: 1284, HasPrefix: true}, wantKeyLen: 32},
		{name: "bad checksum keeps prefix", address: "1j8NkQM7pqpdzPTjvXQ7aG7kq2FNtPgnXdHuSLCLojij8mE", want: Result{Prefix: PrefixPolkadot, HasPrefix: true}},
		{name: "bad checksum alice", address: "15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp6", want: Result{Prefix: PrefixPolkadot, HasPrefix: true}},
		{name: "not base58", address: "0xdeadbeef", want: Result{}},
		{name: "empty", address: "", want: Result{}},
		{name: "too short", address: "1", want: Result{}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, Verify(tc.address))

			addr, err := Decode(tc.address)
			if !tc.want.Valid {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, addr.PublicKey, tc.wantKeyLen)
		})
	}
}

func TestDecodeReservedPrefix(t *testing.T) {
	t.Parallel()

	for _, lead := range []byte{47, 63, 128, 255} {
		body := append([]byte{lead}, make([]byte, 34)...)
		_, err := Decode(base58.Encode(body))
		require.ErrorIs(t, err, ErrInvalidPrefix, "leading byte %d", lead)
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	key, err := hex.DecodeString(alicePublicKey)
	require.NoError(t, err)

	got, err := Encode(PrefixPolkadot, key)
	require.NoError(t, err)
	assert.Equal(t, "15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5", got)

	got, err = Encode(PrefixGeneric, key)
	require.NoError(t, err)
	assert.Equal(t, "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY", got)

	for _, ident := range []uint16{0, 2, 42, 46, 64, 255, 1284, 16383} {
		encoded, err := Encode(ident, key)
		require.NoError(t, err)

		decoded, err := Decode(encoded)
		require.NoError(t, err, "ident %d", ident)
		assert.Equal(t, ident, decoded.Prefix)
		assert.Equal(t, key, decoded.PublicKey)
	}

	_, err = Encode(50, key)
	require.ErrorIs(t, err, ErrInvalidPrefix)

	_, err = Encode(16384, key)
	require.ErrorIs(t, err, ErrInvalidPrefix)
}

func TestChecksumSensitivity(t *testing.T) {
	t.Parallel()

	alphabet := base58.BitcoinAlphabet.String()
	for _, addr := range []string{
		"1j8NkQM7pqpdzPTjvXQ7aG7kq2FNtPgnXdHuSLCLojij8mD",
		"15oF4uVJwmo4TdGW7VfQxNLavjCXviqxT9S1MgbjMNHr6Sp5",
	} {
		for i := 0; i < len(addr); i++ {
			idx := indexByte(alphabet, addr[i])
			mutated := []byte(addr)
			mutated[i] = alphabet[(idx+1)%58]
			assert.False(t, Verify(string(mutated)).Valid, "mutation at %d of %s verified", i, addr)
		}
	}
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}
