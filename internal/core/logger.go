// Package core implements functionality shared across all midimacro
// components: global logger setup and small helpers.
package core

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init initializes zap's global logger
// After calling this, we use zap.L() directly.
func Init(pretty bool, level string) error {
	var config zap.Config

	if pretty {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		config.Level = zap.NewAtomicLevelAt(parsed)
	}

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	zap.ReplaceGlobals(logger)
	return nil
}

// LogDeferredError logs an error returned by a deferred call. Use as
// `defer core.LogDeferredError(f.Close)`.
func LogDeferredError(fn func() error) {
	if err := fn(); err != nil {
		zap.L().Error("Deferred call failed", zap.Error(err))
	}
}

// LogMacroDispatch logs one macro dispatch using zap's global logger.
func LogMacroDispatch(macroName string, actionCount int, err error) {
	if macroName == "" {
		macroName = "(unnamed)"
	}

	fields := []zap.Field{
		zap.String("macro", macroName),
		zap.Int("actions", actionCount),
	}

	if err != nil {
		fields = append(fields, zap.Error(err))
		zap.L().Error("Macro dispatch failed", fields...)
		return
	}

	zap.L().Info("Macro dispatched", fields...)
}
