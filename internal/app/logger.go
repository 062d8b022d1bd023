package app

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initLogger создает логгер. Значение "production" включает
// production-конфигурацию zap, любое другое трактуется как уровень
// development-логгера.
func initLogger(logLevel string) (*zap.Logger, error) {
	if logLevel == "production" {
		return zap.NewProduction()
	}

	level, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level %q: %w", logLevel, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)

	return cfg.Build()
}
