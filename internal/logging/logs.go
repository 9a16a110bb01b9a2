package logging

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

var current atomic.Pointer[zerolog.Logger]

func init() {
	l := zerolog.New(os.Stderr).Level(zerolog.InfoLevel)
	current.Store(&l)
}

func apply(cfg Config) {
	l := newLogger(cfg, os.Stderr)
	current.Store(&l)
}

func newLogger(cfg Config, w io.Writer) zerolog.Logger {
	out := w
	if !cfg.JSON {
		console := zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    cfg.NoColor,
			TimeFormat: time.RFC3339,
		}
		if !cfg.Timestamp {
			console.PartsExclude = []string{zerolog.TimestampFieldName}
		}
		out = console
	}
	ctx := zerolog.New(out).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	return ctx.Logger().Level(cfg.Level)
}

// Logger returns the process logger.
func Logger() zerolog.Logger {
	return *current.Load()
}

// SetLevel changes the level of the process logger.
func SetLevel(level zerolog.Level) {
	l := current.Load().Level(level)
	current.Store(&l)
}

func Tracef(format string, args ...any) {
	l := current.Load()
	l.Trace().Msgf(format, args...)
}

func Debugf(format string, args ...any) {
	l := current.Load()
	l.Debug().Msgf(format, args...)
}

func Infof(format string, args ...any) {
	l := current.Load()
	l.Info().Msgf(format, args...)
}

func Warnf(format string, args ...any) {
	l := current.Load()
	l.Warn().Msgf(format, args...)
}

func Errf(format string, args ...any) {
	l := current.Load()
	l.Error().Msgf(format, args...)
}

// Logf writes regardless of level.
func Logf(format string, args ...any) {
	l := current.Load()
	l.Log().Msgf(format, args...)
}
