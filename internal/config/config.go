// Package config reads the YAML configuration of the dataset generator.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/dataset"
	"seehuhn.de/go/shapes/latent"
	"seehuhn.de/go/shapes/render"
)

// Config holds the dataset generator configuration.
type Config struct {
	Factors      []string                  `yaml:"factors"`
	Distribution latent.DistributionConfig `yaml:"distribution"`
	Render       render.Config             `yaml:"render"`
	Defaults     DefaultsConfig            `yaml:"defaults"`
	Output       OutputConfig              `yaml:"output"`
	Logging      LoggingConfig             `yaml:"logging"`
}

// DefaultsConfig holds the values used for factors which are not sampled.
// Unset fields fall back to the built-in defaults.
type DefaultsConfig struct {
	X     *float64 `yaml:"x"`
	Y     *float64 `yaml:"y"`
	Size  *float64 `yaml:"size"`
	Color *float64 `yaml:"color"`
	Shape string   `yaml:"shape"` // triangle, square, pentagon, hexagon, circle
}

// OutputConfig holds settings for writing a dataset to disk.
type OutputConfig struct {
	Dir     string  `yaml:"dir"`
	Samples int     `yaml:"samples"` // unset: 1, an explicit 0 writes an empty dataset
	Seed    *uint64 `yaml:"seed"`    // unset: seed from the clock
	Workers int     `yaml:"workers"` // 0: one worker
}

// DefaultSamples is the dataset size used when output.samples is not set.
const DefaultSamples = 1

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// Load reads configuration from a YAML file.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Parse decodes a YAML document and fills in defaults.
// Environment variables of the form ${VAR} and ${VAR:-default} are
// substituted before parsing.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	// keys missing from the document keep these values
	cfg := Config{Output: OutputConfig{Samples: DefaultSamples}}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults fills empty fields with default values.
// Negative counts are left for Validate to reject.
func (c *Config) ApplyDefaults() {
	if c.Distribution.Type == "" {
		c.Distribution.Type = latent.Uniform
	}
	c.Render = c.Render.WithDefaults()
	if c.Output.Dir == "" {
		c.Output.Dir = "out"
	}
	if c.Output.Workers == 0 {
		c.Output.Workers = 1
	}
}

// Validate checks the configuration for correctness.
// Every problem which would make dataset construction fail is reported
// here.
func (c *Config) Validate() error {
	if _, err := latent.NewSchema(c.Factors); err != nil {
		return err
	}
	if _, err := latent.NewSampler(&c.Distribution, nil); err != nil {
		return err
	}
	if err := c.Render.Validate(); err != nil {
		return err
	}
	if _, err := c.shape(); err != nil {
		return err
	}
	if c.Output.Samples < 0 {
		return fmt.Errorf("output.samples must be non-negative, got %d: %w",
			c.Output.Samples, shapes.ErrOutOfRange)
	}
	if c.Output.Workers < 0 {
		return fmt.Errorf("output.workers must be non-negative, got %d: %w",
			c.Output.Workers, shapes.ErrOutOfRange)
	}
	return nil
}

// Dataset converts the configuration into a dataset description.
func (c *Config) Dataset() (dataset.Config, error) {
	shape, err := c.shape()
	if err != nil {
		return dataset.Config{}, err
	}
	rc := c.Render
	dc := c.Distribution
	return dataset.Config{
		Factors:      c.Factors,
		Render:       &rc,
		Distribution: &dc,
		Defaults: latent.Defaults{
			X:     c.Defaults.X,
			Y:     c.Defaults.Y,
			Size:  c.Defaults.Size,
			Color: c.Defaults.Color,
			Shape: shape,
		},
	}, nil
}

func (c *Config) shape() (*shapes.Shape, error) {
	if c.Defaults.Shape == "" {
		return nil, nil
	}
	s, err := shapes.ParseShape(c.Defaults.Shape)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
