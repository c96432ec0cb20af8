package logger

import (
	"go.uber.org/zap"
)

// New builds the process-wide zap logger. Production config everywhere except
// development, where the console encoder is friendlier.
func New(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
