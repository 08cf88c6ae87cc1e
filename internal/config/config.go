package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultPath = "heartguard.yaml"

// #region types

// Config holds every runtime setting of the assessment client.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	Export  ExportConfig  `yaml:"export"`
	Log     LogConfig     `yaml:"log"`
}

// ServiceConfig locates the scoring service.
type ServiceConfig struct {
	Transport string `yaml:"transport"` // "http" | "grpc"
	BaseURL   string `yaml:"base_url"`
	GRPCAddr  string `yaml:"grpc_addr"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

// Timeout returns the exchange timeout as a duration.
func (s ServiceConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutMS) * time.Millisecond
}

// ExportConfig controls where reports are written.
type ExportConfig struct {
	Dir string `yaml:"dir"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" | "json"
}

// #endregion types

// #region defaults

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Service: ServiceConfig{
			Transport: "http",
			BaseURL:   "http://localhost:8000",
			GRPCAddr:  "localhost:50051",
			TimeoutMS: 10000,
		},
		Export: ExportConfig{Dir: "./reports"},
		Log:    LogConfig{Level: "info", Format: "console"},
	}
}

// #endregion defaults

// #region load

// Load reads configuration with precedence defaults < YAML file < environment.
// path may be empty; then HEARTGUARD_CONFIG or heartguard.yaml is tried, and a
// missing default file is not an error. A .env file in the working directory is
// loaded first without overriding variables that are already set.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	explicit := path != ""
	if !explicit {
		if env := os.Getenv("HEARTGUARD_CONFIG"); env != "" {
			path, explicit = env, true
		} else {
			path = defaultPath
		}
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	envOverride(&c.Service.Transport, "HEARTGUARD_TRANSPORT")
	envOverride(&c.Service.BaseURL, "HEARTGUARD_BASE_URL")
	envOverride(&c.Service.GRPCAddr, "HEARTGUARD_GRPC_ADDR")
	if err := envOverrideInt(&c.Service.TimeoutMS, "HEARTGUARD_TIMEOUT_MS"); err != nil {
		return err
	}
	envOverride(&c.Export.Dir, "HEARTGUARD_EXPORT_DIR")
	envOverride(&c.Log.Level, "HEARTGUARD_LOG_LEVEL")
	envOverride(&c.Log.Format, "HEARTGUARD_LOG_FORMAT")
	return nil
}

// #endregion load

// #region validate

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	switch c.Service.Transport {
	case "http":
		u, err := url.Parse(c.Service.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid service.base_url %q: must be an absolute http(s) URL", c.Service.BaseURL)
		}
	case "grpc":
		if strings.TrimSpace(c.Service.GRPCAddr) == "" {
			return fmt.Errorf("service.grpc_addr is required when transport=grpc")
		}
	default:
		return fmt.Errorf("service.transport must be 'http' or 'grpc', got %q", c.Service.Transport)
	}
	if c.Service.TimeoutMS <= 0 {
		return fmt.Errorf("invalid service.timeout_ms %d: must be > 0", c.Service.TimeoutMS)
	}
	if strings.TrimSpace(c.Export.Dir) == "" {
		return fmt.Errorf("export.dir must not be empty")
	}
	return nil
}

// #endregion validate

// #region helpers
func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideInt(field *int, envKey string) error {
	if val := os.Getenv(envKey); val != "" {
		parsed, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", envKey, val, err)
		}
		*field = parsed
	}
	return nil
}

// #endregion helpers
