package types

import (
	"encoding/json"
	"fmt"
)

// NetworkType is the network variant an address belongs to.
type NetworkType string

const (
	NetworkNone    NetworkType = ""
	NetworkMainnet NetworkType = "mainnet"
	NetworkTestnet NetworkType = "testnet"
)

func (n NetworkType) String() string {
	return string(n)
}

// ValidationResult is the outcome of validating a single address.
//
// When IsValid is false both Network and NetworkName are empty and
// serialize as null.
type ValidationResult struct {
	IsValid     bool        `json:"isValid"`
	Network     NetworkType `json:"network"`
	NetworkName string      `json:"network_name"`
}

// Invalid returns the invalid sentinel result.
func Invalid() ValidationResult {
	return ValidationResult{}
}

// Valid returns a positive result for the given network variant and label.
func Valid(network NetworkType, name string) ValidationResult {
	return ValidationResult{
		IsValid:     true,
		Network:     network,
		NetworkName: name,
	}
}

// MarshalJSON renders empty network fields as null.
func (r ValidationResult) MarshalJSON() ([]byte, error) {
	var network, name *string
	if r.Network != NetworkNone {
		s := string(r.Network)
		network = &s
	}
	if r.NetworkName != "" {
		name = &r.NetworkName
	}

	return json.Marshal(struct {
		IsValid     bool    `json:"isValid"`
		Network     *string `json:"network"`
		NetworkName *string `json:"network_name"`
	}{
		IsValid:     r.IsValid,
		Network:     network,
		NetworkName: name,
	})
}

// ValidationRequest pairs an address with the network alias it should be
// validated against.
type ValidationRequest struct {
	Address string `json:"address" yaml:"address"`
	Network string `json:"network" yaml:"network"`
}

// Config contains global configuration for the validator, its server and CLI.
type Config struct {
	LogLevel       string       `json:"logLevel,omitempty" yaml:"logLevel" validate:"omitempty,oneof=debug info warn error"`
	Strict         bool         `json:"strict,omitempty" yaml:"strict"`
	EnableMetrics  bool         `json:"enableMetrics,omitempty" yaml:"enableMetrics"`
	MaxConcurrency int          `json:"maxConcurrency,omitempty" yaml:"maxConcurrency" validate:"gte=0,lte=1024"`
	Server         ServerConfig `json:"server" yaml:"server"`
}

// ServerConfig configures the HTTP facade.
type ServerConfig struct {
	Listen              string `json:"listen,omitempty" yaml:"listen" validate:"omitempty,hostname_port"`
	ReadTimeoutSeconds  int    `json:"readTimeoutSeconds,omitempty" yaml:"readTimeoutSeconds" validate:"gte=0"`
	WriteTimeoutSeconds int    `json:"writeTimeoutSeconds,omitempty" yaml:"writeTimeoutSeconds" validate:"gte=0"`
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:       "info",
		MaxConcurrency: 8,
		Server: ServerConfig{
			Listen:              "127.0.0.1:8080",
			ReadTimeoutSeconds:  10,
			WriteTimeoutSeconds: 10,
		},
	}
}

// AddrError carries a diagnostic code explaining why an address was rejected.
type AddrError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e AddrError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Diagnostic error codes
const (
	ErrMalformedInput  = "MALFORMED_INPUT"
	ErrUnknownNetwork  = "UNKNOWN_NETWORK"
	ErrShapeMismatch   = "SHAPE_MISMATCH"
	ErrChecksumFailure = "CHECKSUM_FAILURE"
	ErrDecodeFailure   = "DECODE_FAILURE"
	ErrInternal        = "INTERNAL_ERROR"
	ErrConfigError     = "CONFIG_ERROR"
)
