package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" json:"server" jsonschema:"description=HTTP server configuration"`
	Database  DatabaseConfig  `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Scheduler SchedulerConfig `yaml:"scheduler" json:"scheduler" jsonschema:"description=Fetch scheduler configuration"`
}

// ServerConfig holds REST server settings
type ServerConfig struct {
	Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,minLength=1,description=HTTP server listen address"`
	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server read and write timeout"`
}

// DatabaseConfig holds storage settings, dsn prefix selects the driver
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:fetchsched.db?mode=rwc,minLength=1,description=Database connection string (sqlite file or postgres:// url)"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,minimum=1,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,minimum=0,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,minimum=0,description=Connection maximum lifetime in seconds"`
}

// SchedulerConfig holds fetch scheduling settings
type SchedulerConfig struct {
	MaxWorkers   int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=10,minimum=1,description=Maximum concurrent fetch cycles"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" json:"fetch_timeout" jsonschema:"default=30s,description=Timeout of a single provider request"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=fetchsched/1.0,description=User agent for provider requests"`
	MaxBodySize  int64         `yaml:"max_body_size" json:"max_body_size" jsonschema:"default=10485760,minimum=1,description=Maximum accepted response body size in bytes"`
}

// Load reads configuration from a YAML file, empty path means defaults only
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		// expand environment variables
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// schema validation is supplementary, log and keep going
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:fetchsched.db?mode=rwc"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// scheduler
	if c.Scheduler.MaxWorkers == 0 {
		c.Scheduler.MaxWorkers = 10
	}
	if c.Scheduler.FetchTimeout == 0 {
		c.Scheduler.FetchTimeout = 30 * time.Second
	}
	if c.Scheduler.UserAgent == "" {
		c.Scheduler.UserAgent = "fetchsched/1.0"
	}
	if c.Scheduler.MaxBodySize == 0 {
		c.Scheduler.MaxBodySize = 10 * 1024 * 1024
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return errors.New("server timeout must be at least 1 second")
	}
	if cfg.Database.MaxOpenConns < 1 {
		return errors.New("database max_open_conns must be at least 1")
	}
	if cfg.Database.MaxIdleConns < 0 || cfg.Database.ConnMaxLifetime < 0 {
		return errors.New("database max_idle_conns and conn_max_lifetime must be non-negative")
	}
	if cfg.Scheduler.MaxWorkers < 1 {
		return errors.New("scheduler max_workers must be at least 1")
	}
	if cfg.Scheduler.FetchTimeout < 100*time.Millisecond {
		return errors.New("scheduler fetch_timeout must be at least 100ms")
	}
	if cfg.Scheduler.MaxBodySize < 1 {
		return errors.New("scheduler max_body_size must be positive")
	}
	return nil
}

// ConnMaxLifetimeDuration returns database connection lifetime as duration
func (c DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(c.ConnMaxLifetime) * time.Second
}

// GetServerConfig returns listen address and request timeout for the http server
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
