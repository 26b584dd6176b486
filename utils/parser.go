package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/vitwit/addrcheck/types"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// ConfigFormat selects the encoding of a configuration document.
type ConfigFormat string

const (
	FormatJSON ConfigFormat = "json"
	FormatYAML ConfigFormat = "yaml"
)

// ParseConfig decodes a configuration document on top of the defaults and
// validates it using struct tags.
func ParseConfig(data []byte, format ConfigFormat) (*types.Config, error) {
	cfg := types.DefaultConfig()

	var err error
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(cfg)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(cfg)
	default:
		return nil, &types.AddrError{
			Code:    types.ErrConfigError,
			Message: fmt.Sprintf("unsupported config format: %q", format),
		}
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, &types.AddrError{
			Code:    types.ErrConfigError,
			Message: fmt.Sprintf("failed to parse config: %v", err),
		}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ValidateConfig checks a configuration against its struct tags.
func ValidateConfig(cfg *types.Config) error {
	if err := validate.Struct(cfg); err != nil {
		return &types.AddrError{
			Code:    types.ErrConfigError,
			Message: fmt.Sprintf("validation failed: %v", err),
		}
	}
	return nil
}

// LoadConfig reads a configuration file, picking the format from its
// extension. Files without a .json extension are treated as YAML.
func LoadConfig(path string) (*types.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &types.AddrError{
			Code:    types.ErrConfigError,
			Message: fmt.Sprintf("failed to read config: %v", err),
		}
	}

	format := FormatYAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = FormatJSON
	}

	return ParseConfig(data, format)
}

// SerializeValidationResult converts a ValidationResult to JSON.
func SerializeValidationResult(result types.ValidationResult) ([]byte, error) {
	return json.Marshal(result)
}
