// Package config loads the socialgraph YAML configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Upper bounds on the size knobs. Each one sizes an allocation.
const (
	MaxEdgeFactor        = 1000
	MaxTopK              = 10000
	MaxSeparationSamples = 10000
)

// Config holds every knob of a socialgraph run.
type Config struct {
	// DatasetPath is the CSV file of "username,first,last" rows.
	DatasetPath string `yaml:"dataset_path"`

	// EdgeFactor is how many random follow attempts are drawn per user.
	EdgeFactor int `yaml:"edge_factor"`
	// Seed makes edge generation reproducible.
	Seed uint64 `yaml:"seed"`

	// TopK bounds every ranking in the report.
	TopK int `yaml:"top_k"`
	// SuggestFor is the user whose friend suggestions are reported. Empty skips the section.
	SuggestFor string `yaml:"suggest_for"`
	// SeparationSamples is how many random user pairs get a degree of separation.
	SeparationSamples int `yaml:"separation_samples"`
	// ListUsers includes the full user listing in the report.
	ListUsers bool `yaml:"list_users"`

	PageRankDamping   float64 `yaml:"pagerank_damping"`
	PageRankTolerance float64 `yaml:"pagerank_tolerance"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// MetricsFile, when set, receives a Prometheus text dump at the end of the run.
	MetricsFile string `yaml:"metrics_file"`
}

// DefaultConfig matches the reference analysis run: 250 users, 30 follow
// attempts each, top 5 rankings and 5 separation samples.
func DefaultConfig() Config {
	return Config{
		DatasetPath:       "user_data.csv",
		EdgeFactor:        30,
		Seed:              1,
		TopK:              5,
		SuggestFor:        "emilyrodriguez859",
		SeparationSamples: 5,
		ListUsers:         true,
		PageRankDamping:   0.85,
		PageRankTolerance: 1e-6,
		LogLevel:          "info",
	}
}

// LoadConfig reads the YAML configuration file using strict parsing.
// An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig() // Start with defaults

	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("YAML syntax error in config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values no run can work with.
func (c Config) Validate() error {
	var errs []error
	if c.DatasetPath == "" {
		errs = append(errs, errors.New("dataset_path is required"))
	}
	if c.EdgeFactor < 0 || c.EdgeFactor > MaxEdgeFactor {
		errs = append(errs, fmt.Errorf("edge_factor must be in [0, %d], got %d", MaxEdgeFactor, c.EdgeFactor))
	}
	if c.TopK <= 0 || c.TopK > MaxTopK {
		errs = append(errs, fmt.Errorf("top_k must be in [1, %d], got %d", MaxTopK, c.TopK))
	}
	if c.SeparationSamples < 0 || c.SeparationSamples > MaxSeparationSamples {
		errs = append(errs, fmt.Errorf("separation_samples must be in [0, %d], got %d", MaxSeparationSamples, c.SeparationSamples))
	}
	if c.PageRankDamping <= 0 || c.PageRankDamping >= 1 {
		errs = append(errs, fmt.Errorf("pagerank_damping must be in (0, 1), got %g", c.PageRankDamping))
	}
	if c.PageRankTolerance <= 0 {
		errs = append(errs, fmt.Errorf("pagerank_tolerance must be > 0, got %g", c.PageRankTolerance))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// ParseLevel maps a log_level value to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log_level %q", s)
	}
}
