package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init builds the global zap logger for env and installs it with
// zap.ReplaceGlobals. Code logs through zap.L().
func Init(env string) error {
	logger, err := New(env)
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(logger)

	return nil
}

func New(env string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)

	switch env {
	case "development", "local", "test":
		logger, err = zap.NewDevelopment()
	case "production", "staging":
		logger, err = zap.NewProduction()
	default:
		return nil, fmt.Errorf("unknown environment %q", env)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build %s logger -> %w", env, err)
	}

	return logger.With(zap.String("env", env)), nil
}
