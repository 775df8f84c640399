package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all recognized pipeline options
type Config struct {
	// TopKVertices caps graph construction to the K most-connected players.
	// Zero disables the cap.
	TopKVertices int `yaml:"top_k_vertices" validate:"gte=0"`

	// MinSharedTeams is the minimum number of distinct team-seasons a pair
	// must share before an edge is emitted.
	MinSharedTeams int `yaml:"min_shared_teams" validate:"gte=1"`

	// Seasons restricts ingestion to these season identifiers. Empty means
	// all seasons.
	Seasons []string `yaml:"seasons"`

	// DraftClass restricts ingestion to these player identifiers. Empty
	// means no draft-class filter.
	DraftClass []string `yaml:"draft_class"`

	// RoundingPrecision is the number of decimal digits for reported
	// brokerage z-scores.
	RoundingPrecision int `yaml:"rounding_precision" validate:"gte=0,lte=10"`

	// BrokeragePermutations is the number of null-model label permutations
	// used to estimate brokerage expectations and standard deviations.
	BrokeragePermutations int `yaml:"brokerage_permutations" validate:"gte=10"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// MetricsListen is an optional host:port for Prometheus exposition.
	// Empty disables the listener.
	MetricsListen string `yaml:"metrics_listen"`
}

// Default returns a Config with all defaults applied
func Default() Config {
	return Config{
		TopKVertices:          100,
		MinSharedTeams:        1,
		RoundingPrecision:     2,
		BrokeragePermutations: 500,
		LogLevel:              "info",
	}
}

// Load reads a YAML config file, fills in defaults for unset fields, and
// validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks the config against its struct tags
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
