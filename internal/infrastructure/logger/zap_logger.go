package logger

import (
	"strings"

	"servicescale/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger builds the application logger. Development environments get a
// console encoder with colored levels regardless of LOGGER_ENCODING.
func NewZapLogger(appEnv string, cfg config.LoggerConfig) (*zap.Logger, error) {
	var zc zap.Config
	if isDevelopment(appEnv) {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.TimeKey = "timestamp"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if cfg.Encoding != "" {
			zc.Encoding = cfg.Encoding
		}
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.DisableCaller = cfg.DisableCaller
	zc.DisableStacktrace = cfg.DisableStacktrace

	return zc.Build()
}

func isDevelopment(appEnv string) bool {
	switch strings.ToLower(appEnv) {
	case "dev", "development", "local":
		return true
	}
	return false
}
