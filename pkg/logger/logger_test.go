package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"syscall"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

const mockLogLevel int8 = 0 // zapcore.InfoLevel

func TestGetReturnsSameInstanceOnSubsequentCalls(t *testing.T) {
	logger1 := Get(mockLogLevel)
	logger2 := Get(DebugLevel)
	require.NotNil(t, logger1)
	assert.Same(t, logger1, logger2)
}

func TestGetReturnsNoopLoggerIfGlobalLoggerNil(t *testing.T) {
	Get(mockLogLevel)
	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()

	assert.Same(t, &defaultNoopLogger, Get(mockLogLevel))
}

func TestNewWritesJSONWithBuildFields(t *testing.T) {
	var buf bytes.Buffer
	lgr := New(mockLogLevel, zapcore.AddSync(&buf))

	lgr.Info("dispatched", CommandKey, "create")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "dispatched", entry[MessageKey])
	assert.Equal(t, "create", entry[CommandKey])
	assert.Contains(t, entry, CommitKey)
	assert.Contains(t, entry, VersionKey)
	assert.Contains(t, entry, TimeStampKey)
}

func TestNewHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	lgr := New(mockLogLevel, zapcore.AddSync(&buf))
	lgr.V(1).Info("hidden")
	assert.Empty(t, buf.String())

	lgr = New(DebugLevel, zapcore.AddSync(&buf))
	lgr.V(1).Info("shown")
	assert.True(t, strings.Contains(buf.String(), "shown"))
}

func TestWithLoggerAndFromContext(t *testing.T) {
	ctx := context.Background()
	lgr := logr.Discard()

	newCtx := WithLogger(ctx, &lgr)
	assert.Same(t, &lgr, FromContext(newCtx))

	// Same instance leaves the context untouched.
	assert.Equal(t, newCtx, WithLogger(newCtx, &lgr))

	other := logr.Discard()
	assert.Same(t, &other, FromContext(WithLogger(newCtx, &other)))
}

func TestFromContextFallbacks(t *testing.T) {
	global := Get(mockLogLevel)
	assert.Same(t, global, FromContext(context.Background()))

	orig := globalLogrLogger
	globalLogrLogger = nil
	defer func() { globalLogrLogger = orig }()
	assert.Same(t, &defaultNoopLogger, FromContext(context.Background()))
}

func TestSyncDoesNotPanicWhenGlobalZapLoggerIsNil(t *testing.T) {
	orig := globalZapLogger
	globalZapLogger = nil
	defer func() { globalZapLogger = orig }()

	assert.NotPanics(t, Sync)
}

func TestIsIgnorableSyncError(t *testing.T) {
	assert.True(t, isIgnorableSyncError(syscall.ENOTTY))
	assert.True(t, isIgnorableSyncError(syscall.EINVAL))
	assert.True(t, isIgnorableSyncError(errors.New("sync /dev/stderr: The handle is invalid.")))
	assert.False(t, isIgnorableSyncError(errors.New("disk full")))
}

func TestWithValuesReturnsNewLogger(t *testing.T) {
	lgr := Get(mockLogLevel)
	newLogger := WithValues(lgr, "key", "value")
	require.NotNil(t, newLogger)
	assert.NotSame(t, lgr, newLogger)
}
