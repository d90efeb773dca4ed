// Package logger configures the process-wide structured logger: a zap JSON
// core on stderr exposed through the logr facade and carried in contexts.
package logger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"syscall"

	"github.com/oakwood-commons/zksim/pkg/settings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerContextKey struct{}

// Structured field keys.
const (
	RootCommandKey = "root_command"
	SubCommandKey  = "sub_command"
	CommandKey     = "command"
	ArgCountKey    = "arg_count"
	OutcomeKey     = "outcome"
	CommitKey      = "commit"
	VersionKey     = "version"
	BuildTimeKey   = "build_time"
	GoVersionKey   = "go_version"
	TimeStampKey   = "timestamp"
	MessageKey     = "message"
)

// DebugLevel is the minimum level passed to Get when --debug is set; logr
// V(1) messages become visible at this level.
const DebugLevel int8 = -1

var (
	once sync.Once

	// globalZapLogger is kept for Sync.
	globalZapLogger *zap.Logger

	globalLogrLogger *logr.Logger

	defaultNoopLogger logr.Logger = logr.Discard()
)

// Get initializes the global logger on first use and returns it. Later calls
// ignore logLevel and return the same instance.
func Get(logLevel int8) *logr.Logger {
	once.Do(func() {
		globalZapLogger = newZap(logLevel, zapcore.Lock(os.Stderr))
		gl := zapr.NewLogger(globalZapLogger)
		globalLogrLogger = &gl
	})
	if globalLogrLogger == nil {
		return &defaultNoopLogger
	}
	return globalLogrLogger
}

// New builds an independent logger writing JSON to w. It does not touch the
// global instance.
func New(logLevel int8, w zapcore.WriteSyncer) logr.Logger {
	return zapr.NewLogger(newZap(logLevel, w))
}

func newZap(logLevel int8, w zapcore.WriteSyncer) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = TimeStampKey
	encoderCfg.MessageKey = MessageKey

	goVersion := "unknown"
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		goVersion = buildInfo.GoVersion
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		w,
		zap.NewAtomicLevelAt(zapcore.Level(logLevel)),
	).With(
		[]zapcore.Field{
			zap.String(CommitKey, settings.VersionInformation.Commit),
			zap.String(VersionKey, settings.VersionInformation.BuildVersion),
			zap.String(BuildTimeKey, settings.VersionInformation.BuildTime),
			zap.String(GoVersionKey, goVersion),
		},
	)

	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
		zap.WithFatalHook(zapcore.WriteThenPanic),
	)
}

// WithLogger returns a new context with the provided logr.Logger attached.
// If the context already contains the same logger instance, it returns the original context.
func WithLogger(ctx context.Context, log *logr.Logger) context.Context {
	if lp, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok {
		if lp == log {
			return ctx
		}
	}
	return context.WithValue(ctx, loggerContextKey{}, log)
}

// FromContext retrieves the logr.Logger from the context, falling back to the
// global logger and then to a no-op logger.
func FromContext(ctx context.Context) *logr.Logger {
	if log, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok {
		return log
	} else if log := globalLogrLogger; log != nil {
		return log
	}
	return &defaultNoopLogger
}

// Sync flushes any buffered log entries. Call it from main before exit.
func Sync() {
	if globalZapLogger != nil {
		if err := globalZapLogger.Sync(); err != nil {
			if isIgnorableSyncError(err) {
				return
			}
			fmt.Fprintf(os.Stderr, "WARNING: failed to sync zap logger: %v\n", err)
		}
	}
}

// isIgnorableSyncError returns true for common Sync errors on pipes/TTYs.
// Windows consoles can return ERROR_INVALID_HANDLE wrapped in *os.PathError,
// which does not compare equal to syscall.EINVAL, so we also string-match.
func isIgnorableSyncError(err error) bool {
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.EIO) || errors.Is(err, syscall.EBADF) {
		return true
	}
	return strings.Contains(err.Error(), "The handle is invalid")
}

// WithValues returns a new logr.Logger with additional key-value pairs.
func WithValues(lgr *logr.Logger, keysAndValues ...any) *logr.Logger {
	nlgr := lgr.WithValues(keysAndValues...)
	return &nlgr
}
