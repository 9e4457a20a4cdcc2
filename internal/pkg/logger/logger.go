// Package logger provides a global, Sugared Zap logger with optional
// OpenTelemetry integration. It supports configuring log level via functional
// options, emits JSON logs to stdout, and automatically adds an OTEL bridge
// core when a telemetry provider is available.
//
// Fields attached to a context with WithFields are appended to every entry
// logged with that context, so per-pass and per-wallet identifiers only need
// to be set once.
package logger

import (
	"context"
	"os"
	"sync"

	"github.com/gabapcia/alertforge/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// logger is the global SugaredLogger instance. It discards everything
	// until Init is called, which keeps packages usable in tests.
	logger = zap.NewNop().Sugar()

	// initOnce ensures the logger is only configured a single time.
	initOnce sync.Once
)

// fieldsKey is the context key under which WithFields stores key/value pairs.
type fieldsKey struct{}

// config holds configuration options for the logger.
type config struct {
	level       string // the minimum log level (debug, info, warn, error, panic, fatal)
	serviceName string // instrumentation scope name used by the OTEL bridge
}

// Option configures the logger before initialization.
type Option func(*config)

// WithLevel sets the minimum log level for the global logger.
func WithLevel(l string) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithServiceName sets the instrumentation scope used by the OTEL bridge core.
func WithServiceName(name string) Option {
	return func(c *config) {
		c.serviceName = name
	}
}

// Init configures the global logger. By default it logs JSON to stdout at the
// "info" level. If telemetry.LoggerProvider() is set, an OTEL bridge core is
// added so entries are also exported. Calls after the first successful one
// have no effect.
//
// Returns an error if parsing the log level fails.
func Init(opts ...Option) error {
	cfg := config{level: "info", serviceName: "alertforge"}
	for _, opt := range opts {
		opt(&cfg)
	}

	level, err := zapcore.ParseLevel(cfg.level)
	if err != nil {
		return err
	}

	initOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				level,
			),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore(cfg.serviceName, otelzap.WithLoggerProvider(lp)))
		}

		logger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	return logger.Sync()
}

// WithFields returns a copy of ctx carrying the given key/value pairs in
// addition to any already attached.
func WithFields(ctx context.Context, keysAndValues ...any) context.Context {
	existing := fieldsFrom(ctx)

	fields := make([]any, 0, len(existing)+len(keysAndValues))
	fields = append(fields, existing...)
	fields = append(fields, keysAndValues...)

	return context.WithValue(ctx, fieldsKey{}, fields)
}

// fieldsFrom extracts the key/value pairs stored by WithFields.
func fieldsFrom(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}

	fields, _ := ctx.Value(fieldsKey{}).([]any)
	return fields
}

// withContext prepends the context fields to the call site fields.
func withContext(ctx context.Context, keysAndValues []any) []any {
	fields := fieldsFrom(ctx)
	if len(fields) == 0 {
		return keysAndValues
	}

	return append(append(make([]any, 0, len(fields)+len(keysAndValues)), fields...), keysAndValues...)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Debugw(msg, withContext(ctx, keysAndValues)...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Infow(msg, withContext(ctx, keysAndValues)...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Warnw(msg, withContext(ctx, keysAndValues)...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Errorw(msg, withContext(ctx, keysAndValues)...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	logger.Fatalw(msg, withContext(ctx, keysAndValues)...)
}
