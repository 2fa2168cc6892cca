package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the application logger: human readable in development,
// JSON in production
func New(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg.Build()
}

// NewOrNop is New for process start-up, falling back to a no-op logger
func NewOrNop(environment string) *zap.Logger {
	logger, err := New(environment)
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
