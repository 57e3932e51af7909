package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Defaults: the harness is self-contained, so every knob ships with a
// compiled-in value and runs with no environment at all.
const (
	DefaultRequestTimeout = 3 * time.Second
	DefaultWorkers        = 4
	DefaultDatasetRows    = 1000
	DefaultDatasetSeed    = 42
)

// DefaultEndpoints exercise the four response behaviors the network
// phase classifies: delay, success, client error, server error.
var DefaultEndpoints = []string{
	"http://httpbin.org/delay/1",
	"http://httpbin.org/status/200",
	"http://httpbin.org/status/404",
	"http://httpbin.org/status/500",
}

// Config holds all configuration for the load probe harness.
type Config struct {
	// Endpoints to probe, in submission order
	Endpoints []string `mapstructure:"endpoints"`

	// RequestTimeout bounds each individual HTTP GET
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	// Workers is the maximum number of probes in flight at once
	Workers int `mapstructure:"workers"`

	// DatasetRows is the row count of the generated table
	DatasetRows int `mapstructure:"dataset_rows"`

	// DatasetSeed seeds the table's random source
	DatasetSeed uint64 `mapstructure:"dataset_seed"`
}

// Load reads configuration with compiled-in defaults, overridable by an
// optional config file or environment variables.
//
// Recognized environment variables:
//   - LOADPROBE_ENDPOINTS (comma-separated URLs)
//   - LOADPROBE_REQUEST_TIMEOUT (Go duration, e.g. "3s")
//   - LOADPROBE_WORKERS
//   - LOADPROBE_DATASET_ROWS
//   - LOADPROBE_DATASET_SEED
func Load() (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("LOADPROBE")
	v.AutomaticEnv()

	v.SetDefault("endpoints", DefaultEndpoints)
	v.SetDefault("request_timeout", DefaultRequestTimeout)
	v.SetDefault("workers", DefaultWorkers)
	v.SetDefault("dataset_rows", DefaultDatasetRows)
	v.SetDefault("dataset_seed", DefaultDatasetSeed)

	// Optionally read from config file if it exists
	v.SetConfigName("loadprobe")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Read config file (ignore if not found)
	_ = v.ReadInConfig()

	v.BindEnv("endpoints", "LOADPROBE_ENDPOINTS")
	v.BindEnv("request_timeout", "LOADPROBE_REQUEST_TIMEOUT")
	v.BindEnv("workers", "LOADPROBE_WORKERS")
	v.BindEnv("dataset_rows", "LOADPROBE_DATASET_ROWS")
	v.BindEnv("dataset_seed", "LOADPROBE_DATASET_SEED")

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the configuration for values the harness cannot run with.
func (c *Config) Validate() error {
	if len(c.Endpoints) == 0 {
		return fmt.Errorf("no endpoints configured")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.DatasetRows < 1 {
		return fmt.Errorf("dataset_rows must be at least 1, got %d", c.DatasetRows)
	}
	return nil
}
