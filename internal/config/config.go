// Package config loads the server configuration file. Everything has a
// default, so an empty or partial document still yields a working
// setup.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr     string `yaml:"addr"`      // listen address
	LogLevel string `yaml:"log_level"` // debug|info|warn|error
	Parallel bool   `yaml:"parallel"`  // race root branches across goroutines
	TieBreak string `yaml:"tie_break"` // lowest|random
	Seed     int64  `yaml:"seed"`      // random tie-break seed, 0 = clock
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	_ = c.Finalize()
	return c
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil && err != io.EOF {
		return nil, err
	}
	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Finalize normalizes and validates settings after loading.
func (c *Config) Finalize() error {
	if strings.TrimSpace(c.Addr) == "" {
		c.Addr = ":8080"
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}

	c.TieBreak = strings.ToLower(strings.TrimSpace(c.TieBreak))
	if c.TieBreak == "" {
		c.TieBreak = "lowest"
	}
	switch c.TieBreak {
	case "lowest", "random":
	default:
		return fmt.Errorf("unknown tie_break %q", c.TieBreak)
	}
	return nil
}
