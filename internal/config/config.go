package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/contentbatch/internal/content"
)

// Defaults applied by New.
const (
	DefaultEndpoint       = "http://localhost:3000/api/generate"
	DefaultTimeout        = 60 * time.Second
	DefaultTargetAudience = "digital marketers and content creators"
	DefaultOutputFormat   = "table"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "json"

	configFileName = "config.yaml"
	homeEnvVar     = "CONTENTBATCH_HOME"
	homeDirName    = ".contentbatch"
	logDirName     = "logs"
	logFileName    = "contentbatch.log"
)

// Supported output formats.
//
//nolint:gochecknoglobals // Fixed lookup table.
var validOutputFormats = map[string]bool{
	"table":  true,
	"json":   true,
	"ndjson": true,
	"yaml":   true,
}

// Config is the complete contentbatch configuration. It maps directly to
// config.yaml.
type Config struct {
	Generator GeneratorConfig `yaml:"generator"`
	Batch     BatchConfig     `yaml:"batch"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Campaign  CampaignConfig  `yaml:"campaign"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`

	configPath string
}

// GeneratorConfig configures the content generation service client.
type GeneratorConfig struct {
	Endpoint       string        `yaml:"endpoint"`
	Timeout        time.Duration `yaml:"timeout"`
	TargetAudience string        `yaml:"target_audience"`
	UseSupervisor  bool          `yaml:"use_supervisor"`
	APIToken       string        `yaml:"api_token,omitempty"`
}

// BatchConfig holds batch generation defaults.
type BatchConfig struct {
	// ContentTypes are the types enabled when no --type flag is given.
	ContentTypes []string `yaml:"content_types"`
}

// CatalogConfig points at an optional topic catalog file.
type CatalogConfig struct {
	Path string `yaml:"path,omitempty"`
}

// CampaignConfig holds review settings for generated content.
type CampaignConfig struct {
	// RequireApproval keeps generated items pending. When false they are
	// approved as soon as they enter the queue.
	RequireApproval bool `yaml:"require_approval"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`

	// File is the log file path. Empty sends logs to stderr.
	File string `yaml:"file"`
}

// Default returns a Config populated with defaults only; no file or
// environment is consulted.
func Default() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Endpoint:       DefaultEndpoint,
			Timeout:        DefaultTimeout,
			TargetAudience: DefaultTargetAudience,
			UseSupervisor:  true,
		},
		Batch: BatchConfig{
			ContentTypes: defaultContentTypes(),
		},
		Campaign: CampaignConfig{RequireApproval: true},
		Output:   OutputConfig{DefaultFormat: DefaultOutputFormat},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
			File:   DefaultLogFile(),
		},
	}
}

// New builds the effective configuration: defaults, then the config file in
// the config directory (if present), then environment overrides. A broken
// config file is reported on stderr and ignored.
func New() *Config {
	cfg := NewFromFile()
	cfg.applyEnv()
	return cfg
}

// NewFromFile is New without environment overrides. Commands that write the
// config file back use it so environment values are not persisted.
func NewFromFile() *Config {
	cfg := Default()

	dir, err := GetConfigDir()
	if err == nil {
		cfg.configPath = filepath.Join(dir, configFileName)
		if loadErr := cfg.Load(cfg.configPath); loadErr != nil && !errors.Is(loadErr, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Warning: ignoring config file: %v\n", loadErr)
			cfg = Default()
			cfg.configPath = filepath.Join(dir, configFileName)
		}
	}

	return cfg
}

// Load merges the YAML file at path onto c.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// Save writes c to its config path, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		dir, err := GetConfigDir()
		if err != nil {
			return err
		}
		c.configPath = filepath.Join(dir, configFileName)
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes c as YAML to path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// Path returns the file the config was loaded from or will be saved to.
func (c *Config) Path() string {
	return c.configPath
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.Generator.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, fmt.Errorf("generator.endpoint must be an http(s) URL, got %q", c.Generator.Endpoint))
	}
	if c.Generator.Timeout < 0 {
		errs = append(errs, fmt.Errorf("generator.timeout must be >= 0, got %s", c.Generator.Timeout))
	}
	if strings.TrimSpace(c.Generator.TargetAudience) == "" {
		errs = append(errs, errors.New("generator.target_audience cannot be empty"))
	}
	if _, err := content.ParseTypeFlags(c.Batch.ContentTypes); err != nil {
		errs = append(errs, fmt.Errorf("batch.content_types: %w", err))
	}
	if !validOutputFormats[c.Output.DefaultFormat] {
		errs = append(errs, fmt.Errorf("output.default_format must be one of table, json, ndjson, yaml, got %q",
			c.Output.DefaultFormat))
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		errs = append(errs, fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format))
	}

	return errors.Join(errs...)
}

// DefaultTypeFlags returns the configured default content types as flags.
// Invalid entries fall back to the built-in defaults.
func (c *Config) DefaultTypeFlags() content.TypeFlags {
	flags, err := content.ParseTypeFlags(c.Batch.ContentTypes)
	if err != nil {
		return content.DefaultTypeFlags()
	}
	return flags
}

func defaultContentTypes() []string {
	enabled := content.DefaultTypeFlags().Enabled()
	out := make([]string, 0, len(enabled))
	for _, ct := range enabled {
		out = append(out, string(ct))
	}
	return out
}

// GetConfigDir returns the contentbatch configuration directory:
// $CONTENTBATCH_HOME if set, otherwise ~/.contentbatch.
func GetConfigDir() (string, error) {
	if home := os.Getenv(homeEnvVar); home != "" {
		return home, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, homeDirName), nil
}

// DefaultLogFile returns <config dir>/logs/contentbatch.log, or "" when the
// config directory cannot be determined.
func DefaultLogFile() string {
	dir, err := GetConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, logDirName, logFileName)
}

// EnsureConfigDir creates the configuration directory if it does not exist.
func EnsureConfigDir() error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o700)
}
