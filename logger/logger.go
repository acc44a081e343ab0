// Package logger holds the process-wide logger for the CLI layer. The
// core conversion packages never log.
package logger

import (
	"go.uber.org/zap"
)

// Logger is the global logger. It is a no-op until Initialize is
// called, so packages can log safely during early startup.
var Logger *zap.SugaredLogger

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger. JSON output is meant for
// machine consumption; the default is a console encoder on stderr.
func Initialize(jsonOutput bool) error {
	var cfg zap.Config
	if jsonOutput {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
	}
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	cfg.OutputPaths = []string{"stderr"}
	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	Logger = zl.Sugar()
	return nil
}
