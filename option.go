package addrcheck

import (
	"github.com/vitwit/addrcheck/logger"
	"github.com/vitwit/addrcheck/metrics"
)

type Option func(*Validator)

func WithLogger(l logger.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

func WithMetrics(r metrics.Recorder) Option {
	return func(v *Validator) {
		if r != nil {
			v.metrics = r
		}
	}
}

// WithStrict enables checksum verification for the formats that are
// otherwise accepted on shape alone.
func WithStrict(strict bool) Option {
	return func(v *Validator) {
		v.strict = strict
	}
}

// WithConcurrency bounds the number of addresses BatchValidate classifies
// at once. Values below one keep the default.
func WithConcurrency(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.concurrency = n
		}
	}
}
