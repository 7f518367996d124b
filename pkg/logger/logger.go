// Package logger provides structured logging for dirtree, backed by zap.
// The tree engine takes a Logger so library consumers can plug in their
// own sink; the CLI writes JSON lines to stderr, keeping stdout clean
// for the rendered tree.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields carries structured context attached to a log message.
type Fields map[string]interface{}

// Logger is the logging interface used throughout the application.
type Logger interface {
	// Debug logs diagnostic detail. Emitted only when verbosity >= 1.
	Debug(msg string)

	// Info logs normal operational messages.
	Info(msg string)

	// Warn logs recoverable problems, such as branches omitted after
	// an I/O error.
	Warn(msg string)

	// Error logs failures surfaced to the caller.
	Error(msg string)

	// WithFields returns a Logger that includes the given fields in
	// every subsequent message.
	WithFields(fields Fields) Logger
}

// Config controls logger construction.
type Config struct {
	// Verbosity selects the minimum level: 0 for info and above,
	// 1 or more for debug and above.
	Verbosity int

	// Output is the log destination. Defaults to os.Stderr.
	Output io.Writer
}

type zapLogger struct {
	zap *zap.Logger
}

// NewLogger builds a Logger writing JSON lines to the configured output.
func NewLogger(config Config) Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}

	level := zapcore.InfoLevel
	if config.Verbosity >= 1 {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(config.Output),
		level,
	)

	return &zapLogger{zap: zap.New(core)}
}

// NewNop returns a Logger that discards everything. Handy as the
// default for library consumers that do not care about logs.
func NewNop() Logger {
	return &zapLogger{zap: zap.NewNop()}
}

func (l *zapLogger) Debug(msg string) { l.zap.Debug(msg) }
func (l *zapLogger) Info(msg string)  { l.zap.Info(msg) }
func (l *zapLogger) Warn(msg string)  { l.zap.Warn(msg) }
func (l *zapLogger) Error(msg string) { l.zap.Error(msg) }

func (l *zapLogger) WithFields(fields Fields) Logger {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}

	return &zapLogger{zap: l.zap.With(zapFields...)}
}
