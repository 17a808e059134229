// Package config provides configuration loading for orbitsieve.
package config

import (
	"fmt"
	"os"

	"github.com/aretw0/orbitsieve/pkg/adapters/keldysh"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the report.
const (
	FormatText     = "text"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
)

// Config is the read-only run configuration threaded into the closure,
// the spin guard and the reference universe.
type Config struct {
	// Mode selects the generator list: "default" or "extended".
	Mode string `yaml:"mode" mapstructure:"mode"`
	// AdmissibleSpins lists the spin labels the table may contain (empty = all).
	AdmissibleSpins []string `yaml:"admissible_spins" mapstructure:"admissible_spins"`
	// ClosureBound caps the group order.
	ClosureBound int `yaml:"closure_bound" mapstructure:"closure_bound"`
	// WitnessLimit restricts operational equality to the first N diagrams (0 = all).
	WitnessLimit int `yaml:"witness_limit" mapstructure:"witness_limit"`
	// ParticleHole enables the P(TP) parity link.
	ParticleHole bool `yaml:"particle_hole" mapstructure:"particle_hole"`
	// Classes and Channels restrict the reference universe (empty = all).
	Classes  []string `yaml:"classes" mapstructure:"classes"`
	Channels []string `yaml:"channels" mapstructure:"channels"`

	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	Format   string `yaml:"format" mapstructure:"format"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Mode:            "default",
		AdmissibleSpins: []string{"ud"},
		ClosureBound:    4096,
		ParticleHole:    true,
		LogLevel:        "info",
		Format:          FormatText,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Mode {
	case "default", "extended":
	default:
		return fmt.Errorf("mode must be default or extended, got %q", c.Mode)
	}
	if c.ClosureBound <= 0 {
		return fmt.Errorf("closure_bound must be positive")
	}
	if c.WitnessLimit < 0 {
		return fmt.Errorf("witness_limit must not be negative")
	}
	switch c.Format {
	case FormatText, FormatYAML, FormatMarkdown:
	default:
		return fmt.Errorf("format must be text, yaml or markdown, got %q", c.Format)
	}
	if _, err := c.Universe(); err != nil {
		return err
	}
	return nil
}

// Universe converts the class and channel selection into reference universe
// options. Unknown names and selections not closed under the symmetry
// generators are rejected.
func (c *Config) Universe() (keldysh.Options, error) {
	opts := keldysh.Options{ParticleHole: c.ParticleHole}
	for _, name := range c.Classes {
		cl, err := keldysh.ParseClass(name)
		if err != nil {
			return keldysh.Options{}, fmt.Errorf("classes: %w", err)
		}
		opts.Classes = append(opts.Classes, cl)
	}
	for _, name := range c.Channels {
		ch, err := keldysh.ParseChannel(name)
		if err != nil {
			return keldysh.Options{}, fmt.Errorf("channels: %w", err)
		}
		opts.Channels = append(opts.Channels, ch)
	}
	if err := opts.Validate(); err != nil {
		return keldysh.Options{}, err
	}
	return opts, nil
}

// Load reads a YAML file on top of the defaults. Scalars are decoded weakly,
// so `closure_bound: "512"` is accepted.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
