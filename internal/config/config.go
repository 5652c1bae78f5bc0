// Package config loads amankeys settings.
//
// Settings are applied in order of increasing precedence:
//  1. Hardcoded defaults (NewConfig)
//  2. User config ($XDG_CONFIG_HOME/amankeys/config.yaml)
//  3. Project config (.amankeys.yaml or .amankeys.yml in the working directory)
//  4. Environment variables (AMANKEYS_*)
//
// The merged result is validated before use.
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Aman-CERP/amankeys/internal/filter"
	"github.com/Aman-CERP/amankeys/internal/logging"
	"github.com/Aman-CERP/amankeys/internal/morph"
	"github.com/Aman-CERP/amankeys/internal/resources"
	"github.com/Aman-CERP/amankeys/pkg/indexator"
)

// Project config file names, in lookup order.
const (
	ProjectConfigYAML = ".amankeys.yaml"
	ProjectConfigYML  = ".amankeys.yml"
)

// Lemmatizer names.
const (
	LemmatizerMorphy = "morphy"
	LemmatizerNone   = "none"
)

// DefaultMaxInputBytes bounds the text accepted from the CLI and MCP tools.
const DefaultMaxInputBytes = 10 << 20

// Config represents the complete amankeys configuration.
type Config struct {
	Version     int                       `yaml:"version" json:"version"`
	Filter      filter.Config             `yaml:"filter" json:"filter"`
	Sanitizer   indexator.SanitizerConfig `yaml:"sanitizer" json:"sanitizer"`
	Scoring     ScoringConfig             `yaml:"scoring" json:"scoring"`
	Resources   ResourcesConfig           `yaml:"resources" json:"resources"`
	Morph       MorphConfig               `yaml:"morph" json:"morph"`
	Performance PerformanceConfig         `yaml:"performance" json:"performance"`
	Server      ServerConfig              `yaml:"server" json:"server"`

	// baseDir resolves relative resource paths.
	baseDir string
}

// ScoringConfig configures keyword scoring and presentation defaults.
type ScoringConfig struct {
	// DefaultWeight is the weight of terms absent from the dictionary.
	DefaultWeight float64 `yaml:"default_weight" json:"default_weight"`
	// Sort orders keywords by specificity unless a caller overrides it.
	Sort bool `yaml:"sort" json:"sort"`
	// Truncate drops keywords below the average specificity.
	Truncate bool `yaml:"truncate" json:"truncate"`
}

// ResourcesConfig points at the static tables. Empty paths select the
// embedded defaults.
type ResourcesConfig struct {
	Lexicon     string `yaml:"lexicon" json:"lexicon"`
	Stopwords   string `yaml:"stopwords" json:"stopwords"`
	Dictionary  string `yaml:"dictionary" json:"dictionary"`
	StopwordSet string `yaml:"stopword_set" json:"stopword_set"`
}

// MorphConfig selects the lemmatizer and stemmer.
type MorphConfig struct {
	Lemmatizer string `yaml:"lemmatizer" json:"lemmatizer"`
	Stemmer    string `yaml:"stemmer" json:"stemmer"`
	CacheSize  int    `yaml:"cache_size" json:"cache_size"`
}

// PerformanceConfig configures batch indexing and input limits.
type PerformanceConfig struct {
	Workers       int    `yaml:"workers" json:"workers"`
	MaxInputBytes int64  `yaml:"max_input_bytes" json:"max_input_bytes"`
	WatchDebounce string `yaml:"watch_debounce" json:"watch_debounce"`
}

// ServerConfig configures the MCP server.
type ServerConfig struct {
	Transport string `yaml:"transport" json:"transport"`
	LogLevel  string `yaml:"log_level" json:"log_level"`
}

// NewConfig creates a new Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Version:   1,
		Filter:    filter.DefaultConfig(),
		Sanitizer: indexator.DefaultSanitizerConfig(),
		Scoring: ScoringConfig{
			DefaultWeight: resources.DefaultWeight,
		},
		Resources: ResourcesConfig{
			StopwordSet: resources.StopwordSetEnglish,
		},
		Morph: MorphConfig{
			Lemmatizer: LemmatizerMorphy,
			Stemmer:    morph.StemmerSnowball,
			CacheSize:  morph.DefaultCacheSize,
		},
		Performance: PerformanceConfig{
			Workers:       0, // 0 = GOMAXPROCS
			MaxInputBytes: DefaultMaxInputBytes,
			WatchDebounce: "300ms",
		},
		Server: ServerConfig{
			Transport: "stdio",
			LogLevel:  "info",
		},
	}
}

// GetUserConfigPath returns the path to the user/global configuration file.
// It follows the XDG Base Directory convention:
//   - $XDG_CONFIG_HOME/amankeys/config.yaml (if XDG_CONFIG_HOME is set)
//   - ~/.config/amankeys/config.yaml (default)
func GetUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "amankeys", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "amankeys", "config.yaml")
	}
	return filepath.Join(home, ".config", "amankeys", "config.yaml")
}

// GetUserConfigDir returns the directory containing the user configuration.
func GetUserConfigDir() string {
	return filepath.Dir(GetUserConfigPath())
}

// UserConfigExists returns true if the user configuration file exists.
func UserConfigExists() bool {
	return fileExists(GetUserConfigPath())
}

// LoadUserConfig loads the user configuration file.
// Returns nil config and nil error if the file doesn't exist.
func LoadUserConfig() (*Config, error) {
	configPath := GetUserConfigPath()
	if !fileExists(configPath) {
		return nil, nil
	}

	var parsed Config
	if err := parsed.loadYAML(configPath); err != nil {
		return nil, fmt.Errorf("failed to load user config from %s: %w", configPath, err)
	}
	return &parsed, nil
}

// Load loads configuration for the project in dir.
func Load(dir string) (*Config, error) {
	cfg := NewConfig()

	if userCfg, err := LoadUserConfig(); err != nil {
		return nil, err
	} else if userCfg != nil {
		cfg.mergeWith(userCfg)
	}

	if path := FindProjectConfig(dir); path != "" {
		var parsed Config
		if err := parsed.loadYAML(path); err != nil {
			return nil, err
		}
		cfg.mergeWith(&parsed)
	}

	cfg.applyEnvOverrides()
	cfg.baseDir = dir

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// FindProjectConfig returns the project config path in dir, or "" if there
// is none. .yaml takes precedence over .yml.
func FindProjectConfig(dir string) string {
	for _, name := range []string{ProjectConfigYAML, ProjectConfigYML} {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

// loadYAML parses path into c.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// mergeWith merges non-zero values from other into c.
func (c *Config) mergeWith(other *Config) {
	if other.Version != 0 {
		c.Version = other.Version
	}

	// Filter: length steps are replaced as a whole so limits stay ordered
	if other.Filter.MinOccur != 0 {
		c.Filter.MinOccur = other.Filter.MinOccur
	}
	if other.Filter.NoLimitStrength != 0 {
		c.Filter.NoLimitStrength = other.Filter.NoLimitStrength
	}
	if other.Filter.LengthSteps.Min != (filter.Step{}) ||
		other.Filter.LengthSteps.Max != (filter.Step{}) ||
		len(other.Filter.LengthSteps.Values) > 0 {
		c.Filter.LengthSteps = other.Filter.LengthSteps
	}

	// Sanitizer
	if other.Sanitizer.MinLength != 0 {
		c.Sanitizer.MinLength = other.Sanitizer.MinLength
	}
	if other.Sanitizer.MaxNotAlphanumeric != 0 {
		c.Sanitizer.MaxNotAlphanumeric = other.Sanitizer.MaxNotAlphanumeric
	}
	if other.Sanitizer.MaxDigit != 0 {
		c.Sanitizer.MaxDigit = other.Sanitizer.MaxDigit
	}

	// Scoring: booleans can only be switched on by a file
	if other.Scoring.DefaultWeight != 0 {
		c.Scoring.DefaultWeight = other.Scoring.DefaultWeight
	}
	if other.Scoring.Sort {
		c.Scoring.Sort = true
	}
	if other.Scoring.Truncate {
		c.Scoring.Truncate = true
	}

	// Resources
	if other.Resources.Lexicon != "" {
		c.Resources.Lexicon = other.Resources.Lexicon
	}
	if other.Resources.Stopwords != "" {
		c.Resources.Stopwords = other.Resources.Stopwords
	}
	if other.Resources.Dictionary != "" {
		c.Resources.Dictionary = other.Resources.Dictionary
	}
	if other.Resources.StopwordSet != "" {
		c.Resources.StopwordSet = other.Resources.StopwordSet
	}

	// Morph
	if other.Morph.Lemmatizer != "" {
		c.Morph.Lemmatizer = other.Morph.Lemmatizer
	}
	if other.Morph.Stemmer != "" {
		c.Morph.Stemmer = other.Morph.Stemmer
	}
	if other.Morph.CacheSize != 0 {
		c.Morph.CacheSize = other.Morph.CacheSize
	}

	// Performance
	if other.Performance.Workers != 0 {
		c.Performance.Workers = other.Performance.Workers
	}
	if other.Performance.MaxInputBytes != 0 {
		c.Performance.MaxInputBytes = other.Performance.MaxInputBytes
	}
	if other.Performance.WatchDebounce != "" {
		c.Performance.WatchDebounce = other.Performance.WatchDebounce
	}

	// Server
	if other.Server.Transport != "" {
		c.Server.Transport = other.Server.Transport
	}
	if other.Server.LogLevel != "" {
		c.Server.LogLevel = other.Server.LogLevel
	}
}

// applyEnvOverrides applies AMANKEYS_* environment variable overrides.
// Malformed values are ignored.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("AMANKEYS_MIN_OCCUR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Filter.MinOccur = n
		}
	}
	if v := os.Getenv("AMANKEYS_NO_LIMIT_STRENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Filter.NoLimitStrength = n
		}
	}
	if v := os.Getenv("AMANKEYS_DEFAULT_WEIGHT"); v != "" {
		if w, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && w > 0 {
			c.Scoring.DefaultWeight = w
		}
	}
	if v := os.Getenv("AMANKEYS_SORT"); v != "" {
		c.Scoring.Sort = parseBool(v)
	}
	if v := os.Getenv("AMANKEYS_TRUNCATE"); v != "" {
		c.Scoring.Truncate = parseBool(v)
	}
	if v := os.Getenv("AMANKEYS_LEXICON"); v != "" {
		c.Resources.Lexicon = v
	}
	if v := os.Getenv("AMANKEYS_STOPWORDS"); v != "" {
		c.Resources.Stopwords = v
	}
	if v := os.Getenv("AMANKEYS_DICTIONARY"); v != "" {
		c.Resources.Dictionary = v
	}
	if v := os.Getenv("AMANKEYS_STOPWORD_SET"); v != "" {
		c.Resources.StopwordSet = v
	}
	if v := os.Getenv("AMANKEYS_LEMMATIZER"); v != "" {
		c.Morph.Lemmatizer = v
	}
	if v := os.Getenv("AMANKEYS_STEMMER"); v != "" {
		c.Morph.Stemmer = v
	}
	if v := os.Getenv("AMANKEYS_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Performance.Workers = n
		}
	}
	if v := os.Getenv("AMANKEYS_MAX_INPUT_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			c.Performance.MaxInputBytes = n
		}
	}
	if v := os.Getenv("AMANKEYS_LOG_LEVEL"); v != "" {
		c.Server.LogLevel = v
	}
	if v := os.Getenv("AMANKEYS_TRANSPORT"); v != "" {
		c.Server.Transport = v
	}
}

func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if err := c.Filter.Validate(); err != nil {
		return fmt.Errorf("filter: %w", err)
	}

	if c.Sanitizer.MinLength < 1 {
		return fmt.Errorf("sanitizer.min_length must be at least 1, got %d", c.Sanitizer.MinLength)
	}
	if c.Sanitizer.MaxNotAlphanumeric < 0 {
		return fmt.Errorf("sanitizer.max_not_alphanumeric must be non-negative, got %d", c.Sanitizer.MaxNotAlphanumeric)
	}
	if c.Sanitizer.MaxDigit < 1 {
		return fmt.Errorf("sanitizer.max_digit must be at least 1, got %d", c.Sanitizer.MaxDigit)
	}

	w := c.Scoring.DefaultWeight
	if !(w > 0) || math.IsInf(w, 0) {
		return fmt.Errorf("scoring.default_weight must be a positive number, got %v", w)
	}

	validSets := map[string]bool{resources.StopwordSetEnglish: true, resources.StopwordSetNone: true}
	if !validSets[strings.ToLower(c.Resources.StopwordSet)] {
		return fmt.Errorf("resources.stopword_set must be 'english' or 'none', got %s", c.Resources.StopwordSet)
	}

	validLemmatizers := map[string]bool{LemmatizerMorphy: true, LemmatizerNone: true}
	if !validLemmatizers[strings.ToLower(c.Morph.Lemmatizer)] {
		return fmt.Errorf("morph.lemmatizer must be 'morphy' or 'none', got %s", c.Morph.Lemmatizer)
	}
	validStemmers := map[string]bool{morph.StemmerSnowball: true, morph.StemmerPorter: true}
	if !validStemmers[strings.ToLower(c.Morph.Stemmer)] {
		return fmt.Errorf("morph.stemmer must be 'snowball' or 'porter', got %s", c.Morph.Stemmer)
	}
	if c.Morph.CacheSize < 0 {
		return fmt.Errorf("morph.cache_size must be non-negative, got %d", c.Morph.CacheSize)
	}

	if c.Performance.Workers < 0 {
		return fmt.Errorf("performance.workers must be non-negative, got %d", c.Performance.Workers)
	}
	if c.Performance.MaxInputBytes <= 0 {
		return fmt.Errorf("performance.max_input_bytes must be positive, got %d", c.Performance.MaxInputBytes)
	}

	if strings.ToLower(c.Server.Transport) != "stdio" {
		return fmt.Errorf("server.transport must be 'stdio', got %s", c.Server.Transport)
	}
	if _, err := logging.ParseLevel(c.Server.LogLevel); err != nil {
		return fmt.Errorf("server.log_level must be 'debug', 'info', 'warn', or 'error', got %s", c.Server.LogLevel)
	}

	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
