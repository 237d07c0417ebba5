// Package cblog builds the zap.Logger used across the engine and the
// simulate CLI. Adapted from the teacher's cmd/server/main.go
// initLogger: same level/format switch, trimmed to the two knobs this
// project actually exposes.
package cblog

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config controls logger construction. Level is one of
// debug/info/warn/error (default info); Format is "json" or "console"
// (default console).
type Config struct {
	Level  string
	Format string
}

// New builds a zap.Logger from cfg, the same way the teacher's
// initLogger does: development encoder with colorized levels for
// console output, production encoder for json.
func New(cfg Config) (*zap.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

func parseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return 0, fmt.Errorf("cblog: unknown log level %q", level)
	}
}
