package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitLogger(t *testing.T) {
	t.Run("Production", func(t *testing.T) {
		logger, err := initLogger("production")
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("Development with level", func(t *testing.T) {
		logger, err := initLogger("warn")
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("Debug level", func(t *testing.T) {
		logger, err := initLogger("debug")
		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("Unknown level", func(t *testing.T) {
		_, err := initLogger("verbose")
		assert.Error(t, err)
	})
}
