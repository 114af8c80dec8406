package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/mdformat/internal/format"
)

// DefaultHTTPAddr is the listen address for the HTTP transport when neither
// $PORT nor the config file name one.
const DefaultHTTPAddr = ":8080"

// Config holds user defaults read from config.yaml. Keys missing from the
// file keep their built-in values.
type Config struct {
	format.Options `yaml:",inline"`

	HTTPAddr string `yaml:"http_addr"`
}

// Default returns the built-in configuration: every heuristic on and the
// HTTP transport on DefaultHTTPAddr.
func Default() *Config {
	return &Config{
		Options:  format.DefaultOptions(),
		HTTPAddr: DefaultHTTPAddr,
	}
}

// Load reads a YAML config file on top of Default. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = DefaultHTTPAddr
	}
	return cfg, nil
}

// LoadDefault reads the file named by FilePath.
func LoadDefault() (*Config, error) {
	return Load(FilePath())
}

// FormatOptions returns the formatter options selected by the config.
func (c *Config) FormatOptions() format.Options {
	return c.Options
}
