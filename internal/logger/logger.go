// Package logger builds the application's zap logger.
package logger

import (
	"go.uber.org/zap"
)

// New returns a zap logger configured for the given environment.
// Production environments get JSON output; everything else gets the
// human-readable development encoder.
func New(env string) (*zap.Logger, error) {
	if env == "production" || env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
