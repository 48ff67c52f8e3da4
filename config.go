package porter

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/oarkflow/json"
)

// Config drives the stemming service and the command line tool. The engine
// itself takes no configuration.
type Config struct {
	Host            string        `json:"host"`
	Port            string        `json:"port"`
	RoutePrefix     string        `json:"route_prefix"`
	Workers         int           `json:"workers"`
	CacheSize       int           `json:"cache_size"`
	CleanupPeriod   time.Duration `json:"cleanup_period"`
	EnableStemming  bool          `json:"enable_stemming"`
	EnableStopWords bool          `json:"enable_stop_words"`
	AllowDuplicates bool          `json:"allow_duplicates"`
}

func DefaultConfig() *Config {
	return &Config{
		Host:           "0.0.0.0",
		Port:           "3000",
		RoutePrefix:    "/",
		Workers:        runtime.NumCPU(),
		CacheSize:      10000,
		EnableStemming: true,
	}
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// MergeConfigs merges multiple Config structs into one. Non-zero fields of
// later configs win.
func MergeConfigs(configs ...*Config) *Config {
	mergedConfig := &Config{}

	for _, cfg := range configs {
		if cfg == nil {
			continue
		}
		if cfg.Host != "" {
			mergedConfig.Host = cfg.Host
		}
		if cfg.Port != "" {
			mergedConfig.Port = cfg.Port
		}
		if cfg.RoutePrefix != "" {
			mergedConfig.RoutePrefix = cfg.RoutePrefix
		}
		if cfg.Workers != 0 {
			mergedConfig.Workers = cfg.Workers
		}
		if cfg.CacheSize != 0 {
			mergedConfig.CacheSize = cfg.CacheSize
		}
		if cfg.CleanupPeriod != 0 {
			mergedConfig.CleanupPeriod = cfg.CleanupPeriod
		}
		if cfg.EnableStemming {
			mergedConfig.EnableStemming = cfg.EnableStemming
		}
		if cfg.EnableStopWords {
			mergedConfig.EnableStopWords = cfg.EnableStopWords
		}
		if cfg.AllowDuplicates {
			mergedConfig.AllowDuplicates = cfg.AllowDuplicates
		}
	}

	return mergedConfig
}

// LoadConfig reads a JSON config file and merges it over DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	return MergeConfigs(DefaultConfig(), &cfg), nil
}
