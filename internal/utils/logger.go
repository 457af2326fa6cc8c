package utils

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLogLevel is used when no level is configured.
const DefaultLogLevel = "error"

const invalidLogLevelErrorFormat = "invalid log level %q: %w"

// ParseLogLevel converts a level name such as "debug" or "WARN" into a zap level.
// An empty name selects DefaultLogLevel.
func ParseLogLevel(levelName string) (zapcore.Level, error) {
	trimmedLevelName := strings.TrimSpace(levelName)
	if trimmedLevelName == EmptyString {
		trimmedLevelName = DefaultLogLevel
	}
	level, parseError := zapcore.ParseLevel(strings.ToLower(trimmedLevelName))
	if parseError != nil {
		return zapcore.InvalidLevel, fmt.Errorf(invalidLogLevelErrorFormat, levelName, parseError)
	}
	return level, nil
}

// NewApplicationLogger constructs a zap logger configured for human-readable console output
// at the named level.
func NewApplicationLogger(levelName string) (*zap.Logger, error) {
	level, levelError := ParseLogLevel(levelName)
	if levelError != nil {
		return nil, levelError
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Encoding = "console"
	config.DisableCaller = true
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.LevelKey = ""
	config.EncoderConfig.NameKey = ""
	config.EncoderConfig.CallerKey = ""
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.StacktraceKey = ""
	return config.Build()
}
