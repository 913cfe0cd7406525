// Package providers contains dependency injection providers for the propdata
// server.
package providers

import (
	"time"

	"github.com/samber/do/v2"

	"github.com/chesapeakestays/propdata-server/internal/config"
	"github.com/chesapeakestays/propdata-server/internal/engine"
	"github.com/chesapeakestays/propdata-server/internal/logger"
	"github.com/chesapeakestays/propdata-server/internal/validation"
)

// shutdownTimeout bounds graceful shutdown of long-lived services.
const shutdownTimeout = 10 * time.Second

// ConfigProvider returns a provider that loads and validates configuration
// with the given command-line overrides.
func ConfigProvider(flags config.Flags) func(do.Injector) (*config.Config, error) {
	return func(do.Injector) (*config.Config, error) {
		cfg, err := config.Load(flags)
		if err != nil {
			return nil, err
		}
		if err := validation.New().Validate(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Environment: cfg.App.Environment,
	})

	log.Info("Starting propdata server",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"max_upload_mb", cfg.Upload.MaxBytes/(1024*1024),
	)

	return log, nil
}

// ProvideEngine provides the normalization engine.
func ProvideEngine(i do.Injector) (*engine.Engine, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return engine.New(log, cfg.Pipeline.Workers), nil
}
