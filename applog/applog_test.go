package applog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestHelpersWriteThroughInstalledLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Use(zap.New(core))

	Info("started %s", "paibi")
	Error("seed failed: %v", "boom")
	Event("query", "topic=%s", "employee")

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "started paibi", entries[0].Message)

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "seed failed: boom", entries[1].Message)

	assert.Equal(t, "topic=employee", entries[2].Message)
	assert.Equal(t, "query", entries[2].ContextMap()["category"])

	Close()
}
