package cli

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/cadenza/internal/logging"
	"github.com/aretw0/cadenza/pkg/domain"
)

// fileConfig mirrors domain.Config with pointer fields so absent keys can
// be told apart from zero values when merging over the defaults.
type fileConfig struct {
	Max            *int           `yaml:"max"`
	Net            domain.Net     `yaml:"net"`
	ChordQualities []string       `yaml:"chord_qualities"`
	ScaleRoot      *string        `yaml:"scale_root"`
	ScaleName      *string        `yaml:"scale_name"`
	Octave         *int           `yaml:"octave"`
	TonicPolicy    *domain.Policy `yaml:"tonic_policy"`
	ResolvePolicy  *domain.Policy `yaml:"resolve_policy"`
	Substitute     *bool          `yaml:"substitute"`
	Flat           *bool          `yaml:"flat"`
}

// LoadConfig reads a YAML settings file and merges it over
// domain.DefaultConfig. An empty path returns the defaults untouched.
func LoadConfig(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Config{}, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return domain.Config{}, fmt.Errorf("parse config: %w", err)
	}

	if fc.Max != nil {
		cfg.Max = *fc.Max
	}
	if fc.Net != nil {
		cfg.Net = fc.Net
	}
	if fc.ChordQualities != nil {
		cfg.ChordQualities = fc.ChordQualities
	}
	if fc.ScaleRoot != nil {
		cfg.ScaleRoot = *fc.ScaleRoot
	}
	if fc.ScaleName != nil {
		cfg.ScaleName = *fc.ScaleName
	}
	if fc.Octave != nil {
		cfg.Octave = *fc.Octave
	}
	if fc.TonicPolicy != nil {
		cfg.TonicPolicy = *fc.TonicPolicy
	}
	if fc.ResolvePolicy != nil {
		cfg.ResolvePolicy = *fc.ResolvePolicy
	}
	if fc.Substitute != nil {
		cfg.Substitute = *fc.Substitute
	}
	if fc.Flat != nil {
		cfg.Flat = *fc.Flat
	}

	return cfg, nil
}

// CreateLogger configures the application logger. In debug mode it writes
// to Stderr, separated from the Stdout progression output.
func CreateLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}
