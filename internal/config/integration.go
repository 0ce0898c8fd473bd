package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

// GlobalConfig holds the global configuration instance.
var GlobalConfig *Config        //nolint:gochecknoglobals // Singleton pattern for configuration
var globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Protects globalConfigInit flag
var globalConfigInit bool       //nolint:gochecknoglobals // Tracks if global config has been initialized

// Environment variables that override config file values.
const (
	EnvEndpoint     = "CONTENTBATCH_ENDPOINT"
	EnvAPIToken     = "CONTENTBATCH_API_TOKEN"
	EnvTimeout      = "CONTENTBATCH_TIMEOUT"
	EnvAudience     = "CONTENTBATCH_AUDIENCE"
	EnvLogLevel     = "CONTENTBATCH_LOG_LEVEL"
	EnvLogFormat    = "CONTENTBATCH_LOG_FORMAT"
	EnvOutputFormat = "CONTENTBATCH_OUTPUT_FORMAT"
	EnvCatalog      = "CONTENTBATCH_CATALOG"
	EnvApproval     = "CONTENTBATCH_REQUIRE_APPROVAL"
)

// InitGlobalConfig initializes the global configuration.
func InitGlobalConfig() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	if globalConfigInit {
		return
	}

	GlobalConfig = New()
	globalConfigInit = true
}

// ResetGlobalConfigForTest resets the global config for testing purposes.
func ResetGlobalConfigForTest() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()

	GlobalConfig = nil
	globalConfigInit = false
}

// GetGlobalConfig returns the global configuration, initializing it if needed.
func GetGlobalConfig() *Config {
	InitGlobalConfig()
	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return GlobalConfig
}

// GetDefaultOutputFormat returns the configured default output format.
func GetDefaultOutputFormat() string {
	return GetGlobalConfig().Output.DefaultFormat
}

// applyEnv overlays environment variables. Unparseable numeric or boolean
// values are ignored.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvEndpoint); v != "" {
		c.Generator.Endpoint = v
	}
	if v := os.Getenv(EnvAPIToken); v != "" {
		c.Generator.APIToken = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Generator.Timeout = d
		}
	}
	if v := os.Getenv(EnvAudience); v != "" {
		c.Generator.TargetAudience = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = v
	}
	if v := os.Getenv(EnvCatalog); v != "" {
		c.Catalog.Path = v
	}
	if v := os.Getenv(EnvApproval); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Campaign.RequireApproval = b
		}
	}
}

// EnsureLogDir ensures the directory for the configured log file exists.
// If no log file is configured, it does nothing.
func EnsureLogDir() error {
	cfg := GetGlobalConfig()
	if cfg.Logging.File == "" {
		return nil
	}
	logDir := filepath.Dir(cfg.Logging.File)
	if err := os.MkdirAll(logDir, 0o700); err != nil {
		return fmt.Errorf("failed to create log directory %q: %w", logDir, err)
	}
	return nil
}
