package logger

import (
	"testing"

	"servicescale/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewZapLogger(t *testing.T) {
	t.Run("production honours level", func(t *testing.T) {
		l, err := NewZapLogger("production", config.LoggerConfig{Level: "warn", Encoding: "json"})
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("bad level falls back to info", func(t *testing.T) {
		l, err := NewZapLogger("dev", config.LoggerConfig{Level: "chatty"})
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	})
}
