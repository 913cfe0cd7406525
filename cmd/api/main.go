// Package main provides the entry point for the propdata server.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"

	"github.com/chesapeakestays/propdata-server/internal/config"
	"github.com/chesapeakestays/propdata-server/internal/di"
	"github.com/chesapeakestays/propdata-server/internal/logger"
)

func main() {
	flags := parseFlags()

	// Create DI container
	injector := di.NewContainer(flags)

	// Bootstrap all services
	if err := di.Bootstrap(injector); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap server: %v\n", err)
		os.Exit(1)
	}

	// Get logger for shutdown messages
	log := do.MustInvoke[*logger.Logger](injector)

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	// The DI container shuts providers down in reverse order.
	if err := injector.Shutdown(); err != nil {
		log.Error("Shutdown error", "error", err)
	}
}

func parseFlags() config.Flags {
	var flags config.Flags

	flag.StringVar(&flags.Environment, "env", "", "Environment (development, staging, production)")
	flag.StringVar(&flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&flags.Port, "port", "", "HTTP server port")
	flag.StringVar(&flags.ReadTimeout, "read-timeout", "", "HTTP read timeout (e.g. 60s)")
	flag.StringVar(&flags.WriteTimeout, "write-timeout", "", "HTTP write timeout (e.g. 60s)")
	flag.StringVar(&flags.IdleTimeout, "idle-timeout", "", "HTTP idle timeout (e.g. 120s)")
	flag.StringVar(&flags.MaxUploadMB, "max-upload-mb", "", "Maximum upload size in MB")
	flag.StringVar(&flags.Workers, "workers", "", "Normalization worker count (0 = one per CPU)")
	flag.StringVar(&flags.EnvFile, "env-file", "", "Path to .env file")
	flag.Parse()

	return flags
}
