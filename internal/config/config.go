// Package config loads the hvwfg command configuration from YAML with
// HVWFG_* environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Reference []float64       `yaml:"reference"`
	Engine    EngineConfig    `yaml:"engine"`
	Resources ResourcesConfig `yaml:"resources"`
	Store     StoreConfig     `yaml:"store"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

type EngineConfig struct {
	MaxRectangles     int `yaml:"max_rectangles"`
	InitialRectangles int `yaml:"initial_rectangles"`
}

type ResourcesConfig struct {
	MemoryLimitBytes   int64 `yaml:"memory_limit_bytes"`
	MaxLoaders         int   `yaml:"max_loaders"`
	IOLimitBytesPerSec int   `yaml:"io_limit_bytes_per_sec"`
}

type StoreConfig struct {
	Kind      string `yaml:"kind"` // local, s3 or minio
	Root      string `yaml:"root"`
	Bucket    string `yaml:"bucket"`
	Prefix    string `yaml:"prefix"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Secure    bool   `yaml:"secure"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type MetricsConfig struct {
	File string `yaml:"file"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			InitialRectangles: 64,
		},
		Resources: ResourcesConfig{
			MaxLoaders: 4,
		},
		Store: StoreConfig{
			Kind: "local",
			Root: ".",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads path over the defaults and then applies the environment.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot honour.
func (c *Config) Validate() error {
	switch c.Store.Kind {
	case "local", "s3", "minio":
	default:
		return fmt.Errorf("config: unknown store kind %q", c.Store.Kind)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Logging.Format)
	}
	if c.Engine.MaxRectangles < 0 || c.Engine.InitialRectangles < 0 {
		return fmt.Errorf("config: rectangle limits must not be negative")
	}
	if c.Resources.MemoryLimitBytes < 0 || c.Resources.MaxLoaders < 0 || c.Resources.IOLimitBytesPerSec < 0 {
		return fmt.Errorf("config: resource limits must not be negative")
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("HVWFG_STORE"); v != "" {
		cfg.Store.Kind = v
	}
	if v := os.Getenv("HVWFG_STORE_ROOT"); v != "" {
		cfg.Store.Root = v
	}
	if v := os.Getenv("HVWFG_BUCKET"); v != "" {
		cfg.Store.Bucket = v
	}
	if v := os.Getenv("HVWFG_PREFIX"); v != "" {
		cfg.Store.Prefix = v
	}
	if v := os.Getenv("HVWFG_REGION"); v != "" {
		cfg.Store.Region = v
	}
	if v := os.Getenv("HVWFG_ENDPOINT"); v != "" {
		cfg.Store.Endpoint = v
	}
	if v := os.Getenv("HVWFG_ACCESS_KEY"); v != "" {
		cfg.Store.AccessKey = v
	}
	if v := os.Getenv("HVWFG_SECRET_KEY"); v != "" {
		cfg.Store.SecretKey = v
	}
	if v := os.Getenv("HVWFG_MAX_RECTANGLES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Engine.MaxRectangles = n
		}
	}
	if v := os.Getenv("HVWFG_MEMORY_LIMIT_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Resources.MemoryLimitBytes = n
		}
	}
	if v := os.Getenv("HVWFG_MAX_LOADERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Resources.MaxLoaders = n
		}
	}
	if v := os.Getenv("HVWFG_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("HVWFG_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
