package logger

import (
	"fmt"

	"go.uber.org/zap"
)

func New() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}

func Must() *zap.Logger {
	logger, err := New()
	if err != nil {
		panic(err)
	}
	return logger
}
