// Package addrcheck validates cryptocurrency addresses for a fixed set of
// networks including Bitcoin, Ethereum, Solana, Cardano and Polkadot.
package addrcheck

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vitwit/addrcheck/classifiers"
	"github.com/vitwit/addrcheck/logger"
	"github.com/vitwit/addrcheck/metrics"
	"github.com/vitwit/addrcheck/types"
	"github.com/vitwit/addrcheck/utils"
)

const defaultConcurrency = 8

// maxAddressLen is the longest address any classifier accepts (Cardano
// Shelley). Longer input is rejected before classification.
const maxAddressLen = 1023

// Validator is the main struct that provides address validation. It is safe
// for concurrent use.
type Validator struct {
	classifiers map[types.Chain]classifiers.Classifier
	logger      logger.Logger
	metrics     metrics.Recorder
	strict      bool
	concurrency int
}

// New creates a Validator with the given options
func New(opts ...Option) *Validator {
	v := &Validator{
		logger:      logger.NoopLogger{},
		metrics:     metrics.NoopRecorder{},
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(v)
	}

	v.classifiers = make(map[types.Chain]classifiers.Classifier, len(types.Chains()))
	for _, chain := range types.Chains() {
		c, _ := classifiers.For(chain, classifiers.Options{Strict: v.strict})
		v.classifiers[chain] = c
	}
	return v
}

// NewFromConfig creates a Validator from cfg. Options are applied after the
// config so they take precedence.
func NewFromConfig(cfg *types.Config, opts ...Option) *Validator {
	if cfg == nil {
		cfg = types.DefaultConfig()
	}
	base := []Option{
		WithStrict(cfg.Strict),
		WithConcurrency(cfg.MaxConcurrency),
	}
	return New(append(base, opts...)...)
}

// Validate reports whether address is a valid address on network. Network
// is matched case-insensitively against the alias table. Any failure,
// including an unknown network, yields the invalid result.
func (v *Validator) Validate(address, network string) types.ValidationResult {
	res, _ := v.Diagnose(address, network)
	return res
}

// Diagnose behaves like Validate and additionally returns a
// *types.AddrError explaining why the result is invalid.
func (v *Validator) Diagnose(address, network string) (types.ValidationResult, error) {
	address = utils.NormalizeAddress(address)
	if address == "" {
		return v.fail("", &types.AddrError{Code: types.ErrMalformedInput, Message: "address is empty"})
	}
	if len(address) > maxAddressLen {
		return v.fail("", &types.AddrError{
			Code:    types.ErrMalformedInput,
			Message: fmt.Sprintf("address length %d exceeds %d", len(address), maxAddressLen),
		})
	}
	alias := utils.NormalizeNetwork(network)
	if alias == "" {
		return v.fail("", &types.AddrError{Code: types.ErrMalformedInput, Message: "network is empty"})
	}

	chain, ok := lookupChain(alias)
	if !ok {
		return v.fail("", &types.AddrError{
			Code:    types.ErrUnknownNetwork,
			Message: fmt.Sprintf("unsupported network: %s", network),
		})
	}

	start := time.Now()
	res, err := v.classify(chain, address)
	v.metrics.ObserveLatency("classify", time.Since(start), map[string]string{
		metrics.LabelChain: chain.String(),
	})

	if err != nil {
		v.logger.Debug("address rejected", map[string]any{
			"network": alias,
			"chain":   chain.String(),
			"error":   err.Error(),
		})
		return v.fail(chain, err)
	}

	v.metrics.IncCounter("validation", map[string]string{
		metrics.LabelChain:  chain.String(),
		metrics.LabelResult: "valid",
	})
	return res, nil
}

// classify runs the chain classifier, converting a panic into an internal
// error.
func (v *Validator) classify(chain types.Chain, address string) (res types.ValidationResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			v.logger.Error("classifier panicked", map[string]any{
				"chain": chain.String(),
				"panic": fmt.Sprint(r),
			})
			res = types.Invalid()
			err = &types.AddrError{
				Code:    types.ErrInternal,
				Message: fmt.Sprintf("%s classifier failed", chain),
			}
		}
	}()

	c, ok := v.classifiers[chain]
	if !ok {
		return types.Invalid(), &types.AddrError{
			Code:    types.ErrUnknownNetwork,
			Message: fmt.Sprintf("no classifier for %s", chain),
		}
	}

	res, err = c.Classify(address)
	if err == nil && !res.IsValid {
		err = &types.AddrError{Code: types.ErrInternal, Message: "classifier returned an invalid result without a reason"}
	}
	return res, err
}

func (v *Validator) fail(chain types.Chain, err error) (types.ValidationResult, error) {
	result := types.ErrInternal
	var addrErr *types.AddrError
	if errors.As(err, &addrErr) {
		result = addrErr.Code
	}
	v.metrics.IncCounter("validation", map[string]string{
		metrics.LabelChain:  chain.String(),
		metrics.LabelResult: result,
	})
	return types.Invalid(), err
}

// BatchValidate validates requests concurrently. Results are returned in
// request order. The only error is a cancelled or expired ctx.
func (v *Validator) BatchValidate(
	ctx context.Context,
	requests []types.ValidationRequest,
) ([]types.ValidationResult, error) {
	results := make([]types.ValidationResult, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.concurrency)

	for i, req := range requests {
		i, req := i, req
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = v.Validate(req.Address, req.Network)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// SupportedNetworks lists the short network aliases in sorted order.
func (v *Validator) SupportedNetworks() []string {
	return supportedNetworks()
}

// Chain resolves a network alias to its chain.
func (v *Validator) Chain(network string) (types.Chain, bool) {
	return lookupChain(utils.NormalizeNetwork(network))
}

// Strict reports whether checksum verification is enabled for the
// shape-only formats.
func (v *Validator) Strict() bool {
	return v.strict
}

var defaultValidator = New()

// Validate validates address on network with the default Validator.
func Validate(address, network string) types.ValidationResult {
	return defaultValidator.Validate(address, network)
}

// SupportedNetworks lists the short network aliases in sorted order.
func SupportedNetworks() []string {
	return defaultValidator.SupportedNetworks()
}

// Version information
const Version = "1.0.0"

// GetVersion returns version information
func GetVersion() map[string]any {
	chains := make([]string, 0, len(types.Chains()))
	for _, c := range types.Chains() {
		chains = append(chains, c.String())
	}
	return map[string]any{
		"library_version":    Version,
		"supported_chains":   chains,
		"supported_networks": SupportedNetworks(),
		"checksum_schemes": []string{
			"base58check", "bech32", "bech32m", "blech32", "blech32m", "cashaddr", "ss58", "eip55",
		},
	}
}
