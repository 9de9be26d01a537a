package logger

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Config selects the zap preset, minimum level and encoding.
type Config struct {
	Environment string
	Level       Level
	Format      Format
}

// Logger is the structured logger handed to every layer. In the shell it
// writes to stderr only, so log lines never mix with command output on
// stdout. Sync flushes buffered entries and is called once when the app
// stops; usecases pick the per-command logger up with FromContext.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Warn(msg string, fields ...Field)

	With(fields ...Field) Logger
	Sync() error
}

type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

func Error(err error) Field {
	return Field{Key: "error", Value: err}
}

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var levels = map[string]Level{
	"debug": LevelDebug,
	"info":  LevelInfo,
	"warn":  LevelWarn,
	"error": LevelError,
}

// Decode lets envconfig read LOGGER_LEVEL case-insensitively.
func (l *Level) Decode(value string) error {
	level, ok := levels[strings.ToLower(value)]
	if !ok {
		return fmt.Errorf("invalid log level: %s", value)
	}
	*l = level
	return nil
}

type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

var formats = map[string]Format{
	"json": FormatJSON,
	"text": FormatText,
}

func (f *Format) Decode(value string) error {
	format, ok := formats[strings.ToLower(value)]
	if !ok {
		return fmt.Errorf("invalid log format: %s", value)
	}
	*f = format
	return nil
}

type loggerKey struct{}

func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext falls back to a nop logger so code outside a command, such as
// tests, never has to check for nil.
func FromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return logger
	}
	return &nopLogger{}
}
