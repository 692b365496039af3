package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(t *testing.T) (*Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return FromZap(zap.New(core)), logs
}

func TestLogger_MasksSecrets(t *testing.T) {
	log, logs := observed(t)

	log.Info("calling model", "api_key", "abc123", "model", "gemini")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "[REDACTED]", fields["api_key"])
	assert.Equal(t, "gemini", fields["model"])
}

func TestLogger_HashesUserIDOnlyWhenRedacting(t *testing.T) {
	log, logs := observed(t)

	log.Info("plain", "user_id", "alice")
	log.WithRedaction(true).Info("redacted", "user_id", "alice")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "alice", entries[0].ContextMap()["user_id"])
	hashed := entries[1].ContextMap()["user_id"]
	assert.NotEqual(t, "alice", hashed)
	assert.Contains(t, hashed, "u_")
}

func TestLogger_WithKeepsRedaction(t *testing.T) {
	log, logs := observed(t)

	child := log.WithRedaction(true).With("component", "booking")
	child.Warn("put failed", "user_id", "bob", "authorization", "Bearer x")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "booking", fields["component"])
	assert.Equal(t, "[REDACTED]", fields["authorization"])
	assert.NotEqual(t, "bob", fields["user_id"])
}

func TestNew_Modes(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "quiet"} {
		l, err := New(mode)
		require.NoError(t, err, mode)
		l.Debug("hello")
	}
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Error("ignored", "k", 1) })
}
