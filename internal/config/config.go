// Package config loads arithmetic settings from TOML or YAML files.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
	"github.com/govalues/bignum"
	"gopkg.in/yaml.v3"
)

// ErrFormat is returned by [Load] for files with an unknown extension.
var ErrFormat = errors.New("unsupported config format")

// Config holds the settings of a [bignum.Context].
// Fields missing from a file keep the values of [bignum.BaseContext].
type Config struct {
	Precision     *int   `toml:"precision" yaml:"precision"`
	Rounding      string `toml:"rounding" yaml:"rounding"`
	CheckOverflow *bool  `toml:"check_overflow" yaml:"check_overflow"`
	MaxSteps      *int64 `toml:"max_steps" yaml:"max_steps"`
}

// Load reads the configuration from a file.
// The format is chosen by the extension: ".toml", ".yaml" or ".yml".
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return nil, fmt.Errorf("parsing %v: %w", path, err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return nil, fmt.Errorf("parsing %v: unknown key %q", path, keys[0].String())
		}
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing %v: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("loading %v: %w %q", path, ErrFormat, ext)
	}
	return &cfg, nil
}

// Context returns the validated arithmetic context described by the configuration.
func (c *Config) Context() (bignum.Context, error) {
	ctx := bignum.BaseContext
	if c.Precision != nil {
		ctx.Precision = *c.Precision
	}
	if c.Rounding != "" {
		mode, err := bignum.ParseRoundingMode(c.Rounding)
		if err != nil {
			return bignum.Context{}, fmt.Errorf("rounding: %w", err)
		}
		ctx.Rounding = mode
	}
	if c.CheckOverflow != nil {
		ctx.CheckOverflow = *c.CheckOverflow
	}
	if c.MaxSteps != nil {
		steps, err := safecast.Conv[int](*c.MaxSteps)
		if err != nil {
			return bignum.Context{}, fmt.Errorf("max_steps: %w", err)
		}
		ctx.MaxSteps = steps
	}
	if err := ctx.Validate(); err != nil {
		return bignum.Context{}, fmt.Errorf("invalid config: %w", err)
	}
	return ctx, nil
}
