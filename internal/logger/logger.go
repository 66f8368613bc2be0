package logger

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps a zerolog.Logger behind a small printf-style API so call
// sites stay uniform across packages.
type Logger struct {
	zl zerolog.Logger
}

type options struct {
	out      io.Writer
	level    zerolog.Level
	colorize bool
}

// Option configures a Logger.
type Option func(*options)

// WithOutput sets the output destination.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithLevel sets the minimum log level.
func WithLevel(level zerolog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithColors enables or disables the human-readable console writer.
// When disabled, output is zerolog's plain JSON.
func WithColors(enabled bool) Option {
	return func(o *options) {
		o.colorize = enabled
	}
}

// ParseLevel parses a string into a zerolog level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// New creates a new Logger with the given options.
func New(opts ...Option) *Logger {
	o := options{
		out:      os.Stdout,
		level:    zerolog.InfoLevel,
		colorize: true,
	}
	for _, opt := range opts {
		opt(&o)
	}

	out := o.out
	if o.colorize {
		out = zerolog.ConsoleWriter{Out: o.out, TimeFormat: "2006-01-02 15:04:05.000"}
	}
	zl := zerolog.New(out).Level(o.level).With().Timestamp().Caller().Logger()
	return &Logger{zl: zl}
}

var defaultLogger = New()

// SetDefault sets the default logger.
func SetDefault(l *Logger) {
	defaultLogger = l
}

// Default returns the default logger.
func Default() *Logger {
	return defaultLogger
}

// WithField returns a new logger with the given field added.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{zl: l.zl.With().Interface(key, value).Logger()}
}

// WithFields returns a new logger with the given fields added.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	lc := l.zl.With()
	for k, v := range fields {
		lc = lc.Interface(k, v)
	}
	return &Logger{zl: lc.Logger()}
}

// WithPrefix returns a new logger tagged with a component name.
func (l *Logger) WithPrefix(prefix string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", prefix).Logger()}
}

// Debug logs a message at DEBUG level.
func (l *Logger) Debug(msg string, args ...any) {
	l.zl.Debug().CallerSkipFrame(1).Msgf(msg, args...)
}

// Info logs a message at INFO level.
func (l *Logger) Info(msg string, args ...any) {
	l.zl.Info().CallerSkipFrame(1).Msgf(msg, args...)
}

// Warn logs a message at WARN level.
func (l *Logger) Warn(msg string, args ...any) {
	l.zl.Warn().CallerSkipFrame(1).Msgf(msg, args...)
}

// Error logs a message at ERROR level.
func (l *Logger) Error(msg string, args ...any) {
	l.zl.Error().CallerSkipFrame(1).Msgf(msg, args...)
}

// Package-level functions that use the default logger.

func Debug(msg string, args ...any) { defaultLogger.Debug(msg, args...) }
func Info(msg string, args ...any)  { defaultLogger.Info(msg, args...) }
func Warn(msg string, args ...any)  { defaultLogger.Warn(msg, args...) }
func Error(msg string, args ...any) { defaultLogger.Error(msg, args...) }

// Context key for request-scoped logger.
type ctxKey struct{}

// FromContext returns the logger from the context, or the default logger.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return defaultLogger
}

// NewContext returns a new context with the given logger.
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}
