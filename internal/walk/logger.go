package walk

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the diagnostic sink of the walker. Rendering is entirely up to
// the implementation.
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// LogLevel defines the verbosity of logging.
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// ParseLogLevel maps the command line switches onto a LogLevel.
func ParseLogLevel(verbose, silent bool) LogLevel {
	switch {
	case verbose:
		return LogLevelDebug
	case silent:
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// zapLogger adapts a zap logger to Logger.
type zapLogger struct {
	logger *zap.Logger
}

// NewZapLogger wraps logger as a walker sink.
func NewZapLogger(logger *zap.Logger) Logger {
	return &zapLogger{logger: logger.WithOptions(zap.AddCallerSkip(1))}
}

func (l *zapLogger) Info(msg string)  { l.logger.Info(msg) }
func (l *zapLogger) Warn(msg string)  { l.logger.Warn(msg) }
func (l *zapLogger) Error(msg string) { l.logger.Error(msg) }

// NewLogger creates a zap backed sink at the given level. The underlying
// logger is never synced; use CreateLogger and NewZapLogger when that matters.
func NewLogger(level LogLevel) Logger {
	return NewZapLogger(CreateLogger(level))
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Info(string)  {}
func (NopLogger) Warn(string)  {}
func (NopLogger) Error(string) {}

// CreateLogger creates a zap logger with the specified log level. Callers
// own the logger and should Sync it before exiting.
func CreateLogger(level LogLevel) *zap.Logger {
	var config zap.Config

	switch level {
	case LogLevelError:
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	case LogLevelWarn:
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case LogLevelDebug:
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	default:
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
