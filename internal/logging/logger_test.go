package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func withObserver(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	mu.Lock()
	prev := logger
	logger = zap.New(core)
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		logger = prev
		mu.Unlock()
	})
	return logs
}

func TestInfo_FieldsAreSorted(t *testing.T) {
	logs := withObserver(t)

	Info("battle finished", Fields{"winner": "hero", "rounds": 4})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "battle finished", entry.Message)
	require.Len(t, entry.Context, 2)
	assert.Equal(t, "rounds", entry.Context[0].Key)
	assert.Equal(t, "winner", entry.Context[1].Key)
}

func TestError_IncludesError(t *testing.T) {
	logs := withObserver(t)

	Error("save failed", errors.New("disk full"), nil)

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "disk full", ctx["error"])
}

func TestInit_RejectsBadInput(t *testing.T) {
	assert.Error(t, Init("loud", "json"))
	assert.Error(t, Init("info", "xml"))

	prev := L()
	t.Cleanup(func() {
		mu.Lock()
		logger = prev
		mu.Unlock()
	})
	assert.NoError(t, Init("debug", "console"))
	assert.True(t, L().Core().Enabled(zap.DebugLevel))
}
