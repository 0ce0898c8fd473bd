package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrUnknownKey is returned by Get and Set for keys that do not exist.
var ErrUnknownKey = errors.New("unknown configuration key")

type keyAccessor struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

//nolint:gochecknoglobals // Static dotted-key table.
var accessors = map[string]keyAccessor{
	"generator.endpoint": {
		get: func(c *Config) string { return c.Generator.Endpoint },
		set: func(c *Config, v string) error { c.Generator.Endpoint = v; return nil },
	},
	"generator.timeout": {
		get: func(c *Config) string { return c.Generator.Timeout.String() },
		set: func(c *Config, v string) error {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("generator.timeout: %w", err)
			}
			c.Generator.Timeout = d
			return nil
		},
	},
	"generator.target_audience": {
		get: func(c *Config) string { return c.Generator.TargetAudience },
		set: func(c *Config, v string) error { c.Generator.TargetAudience = v; return nil },
	},
	"generator.use_supervisor": {
		get: func(c *Config) string { return strconv.FormatBool(c.Generator.UseSupervisor) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("generator.use_supervisor: %w", err)
			}
			c.Generator.UseSupervisor = b
			return nil
		},
	},
	"batch.content_types": {
		get: func(c *Config) string { return strings.Join(c.Batch.ContentTypes, ",") },
		set: func(c *Config, v string) error {
			var types []string
			for _, part := range strings.Split(v, ",") {
				if p := strings.TrimSpace(part); p != "" {
					types = append(types, p)
				}
			}
			c.Batch.ContentTypes = types
			return nil
		},
	},
	"catalog.path": {
		get: func(c *Config) string { return c.Catalog.Path },
		set: func(c *Config, v string) error { c.Catalog.Path = v; return nil },
	},
	"campaign.require_approval": {
		get: func(c *Config) string { return strconv.FormatBool(c.Campaign.RequireApproval) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("campaign.require_approval: %w", err)
			}
			c.Campaign.RequireApproval = b
			return nil
		},
	},
	"output.default_format": {
		get: func(c *Config) string { return c.Output.DefaultFormat },
		set: func(c *Config, v string) error { c.Output.DefaultFormat = v; return nil },
	},
	"logging.level": {
		get: func(c *Config) string { return c.Logging.Level },
		set: func(c *Config, v string) error { c.Logging.Level = v; return nil },
	},
	"logging.format": {
		get: func(c *Config) string { return c.Logging.Format },
		set: func(c *Config, v string) error { c.Logging.Format = v; return nil },
	},
	"logging.file": {
		get: func(c *Config) string { return c.Logging.File },
		set: func(c *Config, v string) error { c.Logging.File = v; return nil },
	},
}

// Keys returns every settable key in sorted order. The API token is not
// settable through keys.
func Keys() []string {
	keys := make([]string, 0, len(accessors))
	for k := range accessors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a dotted key such as "generator.endpoint".
func (c *Config) Get(key string) (string, error) {
	acc, ok := accessors[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return acc.get(c), nil
}

// Set assigns a dotted key from its string form.
func (c *Config) Set(key, value string) error {
	acc, ok := accessors[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return acc.set(c, value)
}
