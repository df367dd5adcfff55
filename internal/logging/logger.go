// Package logging provides the zap-backed diagnostic logger path builders
// use when no logger is injected. Diagnostics carry a tag, a message, and
// a success flag; failures log at warn so degraded resolutions stand out
// without being fatal.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger with the tag/message/success diagnostic shape.
type Logger struct {
	log *zap.Logger
}

// Config defines logger configuration.
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Development bool
	OutputPaths []string
}

// DefaultConfig returns production-ready logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Development: false,
		OutputPaths: []string{"stderr"},
	}
}

// New creates a logger with the provided configuration.
func New(cfg Config) (*Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       cfg.Development,
		Encoding:          encodingFormat(cfg.Development),
		EncoderConfig:     encoderConfig(cfg.Development),
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     true,
		DisableStacktrace: true,
	}

	log, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{log: log}, nil
}

// NewDefault creates a logger with default configuration, falling back to
// a no-op logger when construction fails.
func NewDefault() *Logger {
	logger, err := New(DefaultConfig())
	if err != nil {
		return Nop()
	}
	return logger
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{log: zap.NewNop()}
}

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// Default returns the shared process-wide diagnostic logger.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = NewDefault()
	})
	return defaultLogger
}

// Log emits one diagnostic. The tag and success flag become structured
// fields; success selects the level.
func (l *Logger) Log(tag, message string, success bool) {
	fields := []zap.Field{
		zap.String("tag", tag),
		zap.Bool("success", success),
	}
	if success {
		l.log.Info(message, fields...)
	} else {
		l.log.Warn(message, fields...)
	}
}

// parseLevel converts string level to zapcore.Level.
func parseLevel(level string) (zapcore.Level, error) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel, err
	}
	return l, nil
}

// encodingFormat returns console output in development, JSON otherwise.
func encodingFormat(development bool) string {
	if development {
		return "console"
	}
	return "json"
}

func encoderConfig(development bool) zapcore.EncoderConfig {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}
	if development {
		cfg.TimeKey = "T"
		cfg.LevelKey = "L"
		cfg.MessageKey = "M"
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return cfg
}
