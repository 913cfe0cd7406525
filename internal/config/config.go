// Package config provides application configuration management with support
// for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	App      AppConfig
	Logger   LoggerConfig
	Server   ServerConfig
	Upload   UploadConfig
	Pipeline PipelineConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string `validate:"required,oneof=development staging production"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string `validate:"required,oneof=debug info warn error"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string        `validate:"required,numeric"`
	ReadTimeout  time.Duration // HTTP read timeout (default: 60s, uploads can be slow)
	WriteTimeout time.Duration // HTTP write timeout (default: 60s)
	IdleTimeout  time.Duration // HTTP idle timeout (default: 120s)
}

// UploadConfig holds file upload limits.
type UploadConfig struct {
	// MaxBytes caps the total multipart request size (default: 50 MiB).
	MaxBytes int64 `validate:"gt=0"`
}

// PipelineConfig holds processing pipeline settings.
type PipelineConfig struct {
	// Workers bounds the per-table normalization fan-out.
	// Zero means one worker per CPU.
	Workers int `validate:"gte=0"`
}

const defaultMaxUploadMB = 50

// Load builds configuration with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
//
// Flag values come in pre-parsed so tests can exercise precedence without
// touching the process-global flag set.
func Load(flags Flags) (*Config, error) {
	// Load .env file if it exists (silently ignore if not found).
	envFile := flags.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	_ = loadEnvFile(envFile)

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(flags.Environment, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(flags.LogLevel, "LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Port: getConfigValue(flags.Port, "SERVER_PORT", "8080"),
		},
		Upload: UploadConfig{
			MaxBytes: int64(getIntConfigValue(flags.MaxUploadMB, "MAX_UPLOAD_MB", defaultMaxUploadMB)) * 1024 * 1024,
		},
		Pipeline: PipelineConfig{
			Workers: getIntConfigValue(flags.Workers, "PIPELINE_WORKERS", 0),
		},
	}

	var err error
	cfg.Server.ReadTimeout, err = parseDurationValue(flags.ReadTimeout, "SERVER_READ_TIMEOUT", "60s")
	if err != nil {
		return nil, fmt.Errorf("invalid read timeout: %w", err)
	}
	cfg.Server.WriteTimeout, err = parseDurationValue(flags.WriteTimeout, "SERVER_WRITE_TIMEOUT", "60s")
	if err != nil {
		return nil, fmt.Errorf("invalid write timeout: %w", err)
	}
	cfg.Server.IdleTimeout, err = parseDurationValue(flags.IdleTimeout, "SERVER_IDLE_TIMEOUT", "120s")
	if err != nil {
		return nil, fmt.Errorf("invalid idle timeout: %w", err)
	}

	return cfg, nil
}

// Flags carries parsed command-line overrides into Load.
type Flags struct {
	Environment  string
	LogLevel     string
	Port         string
	ReadTimeout  string
	WriteTimeout string
	IdleTimeout  string
	MaxUploadMB  string
	Workers      string
	EnvFile      string
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// getIntConfigValue returns an int from flag, env var, or default.
func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	var result int
	if _, err := fmt.Sscanf(strValue, "%d", &result); err != nil {
		return defaultValue
	}
	return result
}

// parseDurationValue resolves a duration with the usual precedence.
func parseDurationValue(flagValue, envKey, defaultValue string) (time.Duration, error) {
	str := getConfigValue(flagValue, envKey, defaultValue)
	d, err := time.ParseDuration(str)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", str, err)
	}
	return d, nil
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)

		// Env vars take precedence over .env file.
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
