package utils

import "go.uber.org/zap"

// InitLogger builds the process-wide logger and registers it as the
// zap global, so packages can log through zap.L().
func InitLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}
