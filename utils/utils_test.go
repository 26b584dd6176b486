package utils

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitwit/addrcheck/types"
)

func TestHashes(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"9595c9df90075148eb06860365df33584b75bff782a510c6cd4883a419833d50",
		hex.EncodeToString(DoubleSHA256([]byte("hello"))))

	assert.Equal(t,
		"c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		hex.EncodeToString(Keccak256(nil)))

	assert.Equal(t,
		"ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d17d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923",
		hex.EncodeToString(Blake2b512([]byte("a"), []byte("bc"))))
}

func TestShapeHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, IsHexString("deadBEEF09"))
	assert.False(t, IsHexString(""))
	assert.False(t, IsHexString("0xdead"))

	assert.True(t, IsBase58String("1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"))
	assert.False(t, IsBase58String("0OIl"))
	assert.False(t, IsBase58String(""))

	assert.Equal(t, "BTC", NormalizeNetwork("  btc\t"))
	assert.Equal(t, "addr", NormalizeAddress("\n addr "))
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		data     string
		format   ConfigFormat
		wantErr  bool
		validate func(t *testing.T, cfg *types.Config)
	}{
		{
			name:   "json overrides defaults",
			data:   `{"logLevel":"debug","strict":true,"server":{"listen":"0.0.0.0:9090"}}`,
			format: FormatJSON,
			validate: func(t *testing.T, cfg *types.Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.True(t, cfg.Strict)
				assert.Equal(t, "0.0.0.0:9090", cfg.Server.Listen)
				assert.Equal(t, 8, cfg.MaxConcurrency)
				assert.Equal(t, 10, cfg.Server.ReadTimeoutSeconds)
			},
		},
		{
			name:   "yaml",
			data:   "logLevel: warn\nenableMetrics: true\nmaxConcurrency: 32\nserver:\n  listen: localhost:8081\n",
			format: FormatYAML,
			validate: func(t *testing.T, cfg *types.Config) {
				assert.Equal(t, "warn", cfg.LogLevel)
				assert.True(t, cfg.EnableMetrics)
				assert.Equal(t, 32, cfg.MaxConcurrency)
				assert.Equal(t, "localhost:8081", cfg.Server.Listen)
			},
		},
		{
			name:   "empty document keeps defaults",
			data:   "",
			format: FormatYAML,
			validate: func(t *testing.T, cfg *types.Config) {
				assert.Equal(t, types.DefaultConfig(), cfg)
			},
		},
		{name: "unknown log level", data: `{"logLevel":"trace"}`, format: FormatJSON, wantErr: true},
		{name: "negative concurrency", data: "maxConcurrency: -1\n", format: FormatYAML, wantErr: true},
		{name: "bad listen address", data: `{"server":{"listen":"nope"}}`, format: FormatJSON, wantErr: true},
		{name: "unknown field", data: `{"retries":3}`, format: FormatJSON, wantErr: true},
		{name: "malformed", data: `{`, format: FormatJSON, wantErr: true},
		{name: "unsupported format", data: `a=b`, format: "toml", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := ParseConfig([]byte(tc.data), tc.format)
			if tc.wantErr {
				require.Error(t, err)
				var addrErr *types.AddrError
				require.ErrorAs(t, err, &addrErr)
				assert.Equal(t, types.ErrConfigError, addrErr.Code)
				return
			}
			require.NoError(t, err)
			tc.validate(t, cfg)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "addrcheck.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"strict":true}`), 0o600))
	cfg, err := LoadConfig(jsonPath)
	require.NoError(t, err)
	assert.True(t, cfg.Strict)

	yamlPath := filepath.Join(dir, "addrcheck.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("logLevel: error\n"), 0o600))
	cfg, err = LoadConfig(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestSerializeValidationResult(t *testing.T) {
	t.Parallel()

	data, err := SerializeValidationResult(types.Invalid())
	require.NoError(t, err)
	assert.JSONEq(t, `{"isValid":false,"network":null,"network_name":null}`, string(data))

	data, err = SerializeValidationResult(types.Valid(types.NetworkMainnet, "Bitcoin Mainnet"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"isValid":true,"network":"mainnet","network_name":"Bitcoin Mainnet"}`, string(data))
}
