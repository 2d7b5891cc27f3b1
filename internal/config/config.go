package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/communityroots/volunteer-match/pkg/core/matching"
)

// EventSeries defines a recurring event series. Occurrences are
// materialized from the template event by the expand-events command.
type EventSeries struct {
	Name            string `yaml:"name" validate:"required"`
	TemplateEventID string `yaml:"templateEventID" validate:"required"`
	RRule           string `yaml:"rrule" validate:"required"`
}

// MatchingConfig holds the scoring weights and engine thresholds.
// Weights must sum to 1.0; defaults are applied when all five are zero.
type MatchingConfig struct {
	LocationWeight     float64 `yaml:"locationWeight" validate:"gte=0,lte=1"`
	SkillsWeight       float64 `yaml:"skillsWeight" validate:"gte=0,lte=1"`
	AvailabilityWeight float64 `yaml:"availabilityWeight" validate:"gte=0,lte=1"`
	PreferencesWeight  float64 `yaml:"preferencesWeight" validate:"gte=0,lte=1"`
	ReliabilityWeight  float64 `yaml:"reliabilityWeight" validate:"gte=0,lte=1"`

	// DefaultMaxDistanceMiles is assumed for volunteers with no recorded
	// travel preference.
	DefaultMaxDistanceMiles float64 `yaml:"defaultMaxDistanceMiles" validate:"gte=0"`

	// MinSuggestionScore filters the automatic suggestion sweep.
	MinSuggestionScore int `yaml:"minSuggestionScore" validate:"gte=0,lte=100"`

	// MaxSuggestionsPerEvent caps each event's suggestion list.
	MaxSuggestionsPerEvent int `yaml:"maxSuggestionsPerEvent" validate:"gte=0"`

	// AutoConfirmScore is the score at which bulk and suggestion flows
	// propose assignments as confirmed rather than pending.
	AutoConfirmScore int `yaml:"autoConfirmScore" validate:"gte=0,lte=100"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL string         `yaml:"databaseURL" validate:"required"`
	Matching    MatchingConfig `yaml:"matching"`
	EventSeries []EventSeries  `yaml:"eventSeries,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Weights returns the configured weight vector, falling back to the
// documented defaults when none are set.
func (m *MatchingConfig) Weights() matching.Weights {
	sum := m.LocationWeight + m.SkillsWeight + m.AvailabilityWeight + m.PreferencesWeight + m.ReliabilityWeight
	if sum == 0 {
		return matching.DefaultWeights()
	}
	return matching.Weights{
		Location:     m.LocationWeight,
		Skills:       m.SkillsWeight,
		Availability: m.AvailabilityWeight,
		Preferences:  m.PreferencesWeight,
		Reliability:  m.ReliabilityWeight,
	}
}

// Load loads and validates the configuration from volunteer_match.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct, the weight vector and the
// rrule syntax of each event series
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if err := cfg.Matching.Weights().Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, series := range cfg.EventSeries {
		if _, err := rrule.StrToRRule(series.RRule); err != nil {
			return fmt.Errorf("invalid rrule in eventSeries[%d]: %w", i, err)
		}
	}

	return nil
}

func applyDefaults(cfg *Config) {
	m := &cfg.Matching
	if m.DefaultMaxDistanceMiles == 0 {
		m.DefaultMaxDistanceMiles = 25
	}
	if m.MinSuggestionScore == 0 {
		m.MinSuggestionScore = 60
	}
	if m.MaxSuggestionsPerEvent == 0 {
		m.MaxSuggestionsPerEvent = 10
	}
	if m.AutoConfirmScore == 0 {
		m.AutoConfirmScore = 80
	}
}

// findConfigFile searches for volunteer_match.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "volunteer_match.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
