// Package logger builds the application logger.
package logger

import (
	"go.uber.org/zap"
)

// NewLogger creates and returns a new sugared zap logger.
func NewLogger() (*zap.SugaredLogger, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
