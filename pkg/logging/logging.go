package logging

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields represents structured log fields
type Fields map[string]any

// Logger is the logging interface used throughout the application
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(msg string, fields ...Fields)
	WithFields(fields Fields) Logger
}

// Config controls the behavior of the default logger
type Config struct {
	Level  string // debug, info, warn, error
	Format string // console or json
}

var (
	mu            sync.RWMutex
	defaultLogger Logger = newZapLogger(Config{Level: "info", Format: "console"}, nil)
)

// Configure replaces the package-level default logger
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = newZapLogger(cfg, nil)
}

// NewDefaultLogger returns the package-level default logger
func NewDefaultLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// WithFields returns the default logger with additional bound fields
func WithFields(fields Fields) Logger {
	return NewDefaultLogger().WithFields(fields)
}

type zapLogger struct {
	base *zap.Logger
}

func newZapLogger(cfg Config, bound []zap.Field) *zapLogger {
	level := zapcore.InfoLevel
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)
	return &zapLogger{base: zap.New(core).With(bound...)}
}

func (l *zapLogger) Debug(msg string, fields ...Fields) {
	l.base.Debug(msg, zapFields(fields)...)
}

func (l *zapLogger) Info(msg string, fields ...Fields) {
	l.base.Info(msg, zapFields(fields)...)
}

func (l *zapLogger) Warn(msg string, fields ...Fields) {
	l.base.Warn(msg, zapFields(fields)...)
}

func (l *zapLogger) Error(msg string, fields ...Fields) {
	l.base.Error(msg, zapFields(fields)...)
}

func (l *zapLogger) WithFields(fields Fields) Logger {
	return &zapLogger{base: l.base.With(zapFields([]Fields{fields})...)}
}

func zapFields(groups []Fields) []zap.Field {
	var out []zap.Field
	for _, fields := range groups {
		for k, v := range fields {
			out = append(out, zap.Any(k, v))
		}
	}
	return out
}
