package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewZapLogger(t *testing.T) {
	t.Parallel()

	l, err := NewZapLogger("debug")
	require.NoError(t, err)
	require.NotNil(t, l)
	l.Debug("hello", map[string]any{"k": "v"})
}

func TestZapLoggerFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core)).With(map[string]any{"request_id": "abc"})

	l.Info("validated", map[string]any{"chain": "bitcoin", "valid": true})
	l.Debug("rejected", nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "validated", entries[0].Message)
	assert.Equal(t, map[string]any{"request_id": "abc", "chain": "bitcoin", "valid": true}, entries[0].ContextMap())
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
}

func TestNoopLogger(t *testing.T) {
	t.Parallel()

	var l Logger = NoopLogger{}
	l.Error("ignored", map[string]any{"x": 1})
	assert.Equal(t, l, l.With(map[string]any{"y": 2}))
	assert.NoError(t, l.Sync())
}
