package config

import (
    "fmt"

    "go.uber.org/zap"
    "go.uber.org/zap/zapcore"
)

// NewLogger builds a zap production logger at the named level.  Outside
// production the development encoder is used so local logs stay readable.
func NewLogger(level string, production bool) (*zap.Logger, error) {
    lvl, err := zapcore.ParseLevel(level)
    if err != nil {
        return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
    }
    cfg := zap.NewProductionConfig()
    if !production {
        cfg.Encoding = "console"
        cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
    }
    cfg.Level = zap.NewAtomicLevelAt(lvl)
    return cfg.Build()
}
