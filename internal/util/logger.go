package util

import "go.uber.org/zap"

// NewLogger returns a production logger when env is "production", a development
// logger otherwise. Called with no argument (unit tests) it returns a development logger.
func NewLogger(env ...string) *zap.SugaredLogger {
	var logger *zap.SugaredLogger

	if len(env) > 0 && env[0] == "production" {
		logger = zap.Must(zap.NewProduction()).Sugar()
	} else {
		logger = zap.Must(zap.NewDevelopment()).Sugar()
	}

	defer logger.Sync()

	return logger
}
