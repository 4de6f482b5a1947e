// Package logger provides a structured logging interface for applications.
//
// It wraps zap's SugaredLogger and adds helpers for logging errx errors
// and request metadata carried in context.
package logger

import (
	"context"
	"errors"

	"github.com/code19m/errx"
	"go.uber.org/zap"

	"github.com/rise-and-shine/filescom/meta"
)

// Logger defines the standard logging interface used across the module.
type Logger interface {
	Debug(msg any)
	Info(msg any)
	Warn(msg any)
	Error(msg any)

	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	// Warnx logs an error at warn level, unpacking errx code, type, trace, fields and details.
	Warnx(err error)
	// Errorx logs an error at error level, unpacking errx code, type, trace, fields and details.
	Errorx(err error)

	// With creates a new logger with the given key-value pairs.
	With(keysAndValues ...any) Logger
	// WithContext creates a logger enriched with metadata found in ctx.
	WithContext(ctx context.Context) Logger

	// Named adds a sub-scope to the logger's name.
	Named(name string) Logger

	// Sync flushes any buffered log entries.
	Sync() error
}

// logger implements the Logger interface using zap's SugaredLogger.
type logger struct {
	*zap.SugaredLogger
}

// New creates a new Logger instance with the provided configuration.
func New(cfg Config) (Logger, error) {
	if cfg.Disable {
		return Nop(), nil
	}

	zapConfig, err := cfg.getZapConfig()
	if err != nil {
		return nil, errx.Wrap(err)
	}

	zapLogger, err := zapConfig.Build()
	if err != nil {
		return nil, errx.Wrap(err)
	}

	return &logger{zapLogger.Sugar()}, nil
}

// FromZap wraps an existing zap logger.
func FromZap(z *zap.Logger) Logger {
	return &logger{z.Sugar()}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &logger{zap.NewNop().Sugar()}
}

func (l *logger) Warnx(err error) {
	if err == nil {
		return
	}
	l.withErrFields(err).Warn(err.Error())
}

func (l *logger) Errorx(err error) {
	if err == nil {
		return
	}
	l.withErrFields(err).Error(err.Error())
}

func (l *logger) withErrFields(err error) Logger {
	var e errx.ErrorX
	if !errors.As(err, &e) {
		return l
	}
	return l.With(
		"error_code", e.Code(),
		"error_type", e.Type().String(),
		"error_trace", e.Trace(),
		"error_fields", e.Fields(),
		"error_details", e.Details(),
	)
}

func (l *logger) With(keysAndValues ...any) Logger {
	return &logger{
		SugaredLogger: l.SugaredLogger.With(keysAndValues...),
	}
}

func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	var withFields []any
	for k, v := range meta.ExtractMetaFromContext(ctx) {
		// zap rejects non-string keys
		withFields = append(withFields, string(k), v)
	}

	if len(withFields) > 0 {
		return l.With(withFields...)
	}

	return l
}

func (l *logger) Named(name string) Logger {
	return &logger{
		SugaredLogger: l.SugaredLogger.Named(name),
	}
}

func (l *logger) Debug(msg any) {
	l.SugaredLogger.Debug(msg)
}

func (l *logger) Info(msg any) {
	l.SugaredLogger.Info(msg)
}

func (l *logger) Warn(msg any) {
	l.SugaredLogger.Warn(msg)
}

func (l *logger) Error(msg any) {
	l.SugaredLogger.Error(msg)
}
