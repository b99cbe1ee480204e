package logger

import (
	"go.uber.org/zap"

	"derdiedas/internal/config"
)

// New builds the application logger. Output goes to the configured log file
// because the terminal belongs to the quiz UI.
func New(cfg *config.Config) (*zap.Logger, error) {
	if !cfg.LoggingEnabled() {
		return zap.NewNop(), nil
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Env == "development" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.OutputPaths = []string{cfg.LogFile}
	zapCfg.ErrorOutputPaths = []string{cfg.LogFile}

	return zapCfg.Build()
}
