// Package metrics records validation counters and latencies.
package metrics

import "time"

// Label keys understood by recorders.
const (
	LabelChain  = "chain"
	LabelResult = "result"
)

type Recorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}
