package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// No-op until InitLogger runs, so library code and tests can log freely.
var zapLog = zap.NewNop()

func InitLogger(level zapcore.Level) error {

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	// stdout is reserved for command output.
	config.OutputPaths = []string{"stderr"}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("Jan _2 15:04:05.000000000")
	encoderConfig.StacktraceKey = "" // to hide stacktrace info
	config.EncoderConfig = encoderConfig

	built, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	zapLog = built
	return nil
}

// ParseLevel maps a config string such as "debug" or "WARN" to a zap level.
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	return zapcore.ParseLevel(s)
}

// Replace swaps the underlying logger, mostly for tests using zaptest/observer.
func Replace(l *zap.Logger) (restore func()) {
	prev := zapLog
	zapLog = l
	return func() { zapLog = prev }
}

func Info(message string, fields ...zap.Field) {
	zapLog.Info(message, fields...)
}

func Warn(message string, fields ...zap.Field) {
	zapLog.Warn(message, fields...)
}

func Debug(message string, fields ...zap.Field) {
	zapLog.Debug(message, fields...)
}

func Error(message string, fields ...zap.Field) {
	zapLog.Error(message, fields...)
}

func Fatal(message string, fields ...zap.Field) {
	zapLog.Fatal(message, fields...)
}

// Sync flushes any buffered log entries
func Sync() error {
	return zapLog.Sync()
}
