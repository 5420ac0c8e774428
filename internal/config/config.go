// Package config provides unified configuration loading for docbridge.
// Supports YAML files, environment variables, and programmatic overrides.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the docbridge service.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Converter     ConverterConfig     `yaml:"converter"`
	CORS          CORSConfig          `yaml:"cors"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host             string        `yaml:"host"`
	Port             int           `yaml:"port"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	IdleTimeout      time.Duration `yaml:"idle_timeout"`
	GracefulShutdown time.Duration `yaml:"graceful_shutdown"`
}

// ConverterConfig holds conversion backend settings.
type ConverterConfig struct {
	// Backend selects the conversion backend: auto, docling or fitz.
	// auto prefers docling and falls back to fitz when the binary is missing.
	Backend string `yaml:"backend"`
	// DoclingPath is the docling executable name or path.
	DoclingPath string `yaml:"docling_path"`
	// TempDir is where uploads are materialized. Empty means os.TempDir().
	TempDir string `yaml:"temp_dir"`
	// Device overrides accelerator detection when non-empty (auto, mps, cpu).
	Device string `yaml:"device"`
	// NumThreads is the worker-thread count passed to the backend.
	NumThreads int `yaml:"num_threads"`
	// MaxUploadBytes caps the accepted request body size.
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`
}

// CORSConfig holds cross-origin settings for the HTTP surface.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	ServiceName string `yaml:"service_name"`
}

// Load reads configuration from a YAML file and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration with sensible defaults for development.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
			// Conversions can run for minutes on large scanned documents,
			// so the write timeout stays generous.
			ReadTimeout:      5 * time.Minute,
			WriteTimeout:     30 * time.Minute,
			IdleTimeout:      120 * time.Second,
			GracefulShutdown: 10 * time.Second,
		},
		Converter: ConverterConfig{
			Backend:        "auto",
			DoclingPath:    "docling",
			TempDir:        "",
			Device:         "",
			NumThreads:     4,
			MaxUploadBytes: 50 << 20, // 50 MiB
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost:3001",
				"http://localhost:5173", // Vite default
			},
		},
		Observability: ObservabilityConfig{
			LogLevel:    "debug",
			LogFormat:   "json",
			ServiceName: "docbridge",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Converter.Backend {
	case "auto", "docling", "fitz":
	default:
		return fmt.Errorf("invalid converter backend: %s", c.Converter.Backend)
	}

	switch c.Converter.Device {
	case "", "auto", "mps", "cpu":
	default:
		return fmt.Errorf("invalid converter device: %s", c.Converter.Device)
	}

	if c.Converter.NumThreads < 1 {
		return fmt.Errorf("num_threads must be positive, got %d", c.Converter.NumThreads)
	}

	if c.Converter.MaxUploadBytes < 1 {
		return fmt.Errorf("max_upload_bytes must be positive, got %d", c.Converter.MaxUploadBytes)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}

	if v := os.Getenv("SERVER_PORT"); v != "" {
		var port int
		if _, err := fmt.Sscanf(v, "%d", &port); err == nil {
			cfg.Server.Port = port
		}
	}

	if v := os.Getenv("DOCBRIDGE_BACKEND"); v != "" {
		cfg.Converter.Backend = v
	}

	if v := os.Getenv("DOCLING_PATH"); v != "" {
		cfg.Converter.DoclingPath = v
	}

	if v := os.Getenv("DOCBRIDGE_TEMP_DIR"); v != "" {
		cfg.Converter.TempDir = v
	}

	if v := os.Getenv("DOCBRIDGE_DEVICE"); v != "" {
		cfg.Converter.Device = v
	}

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.CORS.AllowedOrigins = origins
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}
}
