// Package logger provides a global, Sugared Zap logger with optional
// OpenTelemetry integration. Log calls take a context: loggers derived with
// Derive travel inside it, and the active span's trace and span ids are
// attached to every entry. Logs are emitted as JSON to stdout and, when a
// telemetry LoggerProvider is registered, bridged to the OTEL backend.
package logger

import (
	"context"
	"os"
	"sync"

	"github.com/gabapcia/txledger/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKeyType struct{}

// ctxKey stores a derived *zap.SugaredLogger inside a context.
var ctxKey ctxKeyType

var (
	// baseLogger is the global SugaredLogger instance. It is initialized once by Init.
	baseLogger *zap.SugaredLogger

	// initBaseLoggerOnce ensures the logger is only configured a single time.
	initBaseLoggerOnce sync.Once

	// nop is used when Init has not been called, so library code and tests
	// never dereference a nil logger.
	nop = zap.NewNop().Sugar()
)

// Init configures the global logger at the given level ("debug", "info",
// "warn", "error", "panic", "fatal"). Calling Init more than once has no
// effect after the first successful call.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				lvl,
			),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore("github.com/gabapcia/txledger", otelzap.WithLoggerProvider(lp)))
		}

		baseLogger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. Call it on shutdown.
func Sync() error {
	if baseLogger == nil {
		return nil
	}

	return baseLogger.Sync()
}

// root returns the initialized logger or a no-op one.
func root() *zap.SugaredLogger {
	if baseLogger == nil {
		return nop
	}

	return baseLogger
}

// deriveFromCtx returns the context's logger (or the root logger) enriched
// with the active span ids and the given key/value pairs.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok {
		l = root()
	}

	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		l = l.With("trace_id", sc.TraceID().String(), "span_id", sc.SpanID().String())
	}

	if len(keysAndValues) > 0 {
		l = l.With(keysAndValues...)
	}

	return l
}

// Derive returns a child context carrying a logger with the given key/value
// pairs attached; every log call made with that context includes them.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	l, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok {
		l = root()
	}

	return context.WithValue(ctx, ctxKey, l.With(keysAndValues...))
}

func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Logw(level, msg, keysAndValues...)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}

// Fatal logs a fatal-level message and exits the process.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.FatalLevel, msg, keysAndValues...)
}

// leveled adapts the global logger to the Error/Info/Debug/Warn(msg, kv...)
// shape used by HTTP client libraries such as retryablehttp.
type leveled struct{}

func (leveled) Error(msg string, keysAndValues ...any) { root().Errorw(msg, keysAndValues...) }
func (leveled) Info(msg string, keysAndValues ...any)  { root().Infow(msg, keysAndValues...) }
func (leveled) Debug(msg string, keysAndValues ...any) { root().Debugw(msg, keysAndValues...) }
func (leveled) Warn(msg string, keysAndValues ...any)  { root().Warnw(msg, keysAndValues...) }

// Leveled returns the global logger in leveled-logger form.
func Leveled() leveled {
	return leveled{}
}
