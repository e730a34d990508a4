package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewTestLogger returns a console logger at debug level, for tests and
// runnable examples.
func NewTestLogger() *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return zap.New(consoleCore)
}

// Fields converts a loosely typed field map into zap fields.
func Fields(fields map[string]interface{}) []zap.Field {
	converted := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		converted = append(converted, zap.Any(k, v))
	}
	return converted
}
