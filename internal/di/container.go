// Package di provides dependency injection configuration for the propdata
// server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/chesapeakestays/propdata-server/internal/config"
	"github.com/chesapeakestays/propdata-server/internal/di/providers"
	"github.com/chesapeakestays/propdata-server/internal/engine"
	"github.com/chesapeakestays/propdata-server/internal/logger"
)

// NewContainer creates and configures the DI container with all providers.
// Command-line overrides flow in through flags.
func NewContainer(flags config.Flags) *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ConfigProvider(flags))
	do.Provide(injector, providers.ProvideLogger)

	// Pipeline
	do.Provide(injector, providers.ProvideEngine)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns once the server is running.
// This triggers lazy initialization of every provider.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*engine.Engine](injector)
	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
