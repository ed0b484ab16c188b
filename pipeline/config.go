package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// Trace levels understood by the command.
const (
	TraceError = "error"
	TraceInfo  = "info"
	TraceDebug = "debug"
)

// Named is a pipeline stored in a config file.
type Named struct {
	Name string `yaml:"name"`
	Expr string `yaml:"expr"`
}

// Config is the YAML configuration of the command:
//
//	maxItems: 20
//	trace: debug
//	pipelines:
//	  - name: odd squares
//	    expr: naturals | filter odd | map * 3 | take 5
type Config struct {
	MaxItems  int     `yaml:"maxItems"`
	MaxPulls  int     `yaml:"maxPulls"`
	Trace     string  `yaml:"trace"`
	Pipelines []Named `yaml:"pipelines"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		MaxItems: DefaultMaxItems,
		MaxPulls: DefaultMaxPulls,
		Trace:    TraceInfo,
	}
}

// LoadConfig reads and validates the YAML file at path.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: open config: %w", err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// DecodeConfig reads a YAML document from r. Missing or zero fields take their
// defaults; an empty document yields DefaultConfig.
func DecodeConfig(r io.Reader) (*Config, error) {
	cfg := &Config{}
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("pipeline: %w: %v", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.MaxItems == 0 {
		c.MaxItems = def.MaxItems
	}
	if c.MaxPulls == 0 {
		c.MaxPulls = def.MaxPulls
	}
	if c.Trace == "" {
		c.Trace = def.Trace
	}
}

func (c *Config) validate() error {
	if c.MaxItems <= 0 {
		return fmt.Errorf("pipeline: %w: maxItems must be positive, got %d", ErrConfig, c.MaxItems)
	}
	if c.MaxPulls <= 0 {
		return fmt.Errorf("pipeline: %w: maxPulls must be positive, got %d", ErrConfig, c.MaxPulls)
	}
	switch c.Trace {
	case TraceError, TraceInfo, TraceDebug:
	default:
		return fmt.Errorf("pipeline: %w: unknown trace level %q", ErrConfig, c.Trace)
	}
	seen := make(map[string]bool, len(c.Pipelines))
	for i, p := range c.Pipelines {
		if p.Name == "" {
			return fmt.Errorf("pipeline: %w: pipelines[%d] has no name", ErrConfig, i)
		}
		if seen[p.Name] {
			return fmt.Errorf("pipeline: %w: duplicate pipeline name %q", ErrConfig, p.Name)
		}
		seen[p.Name] = true
		if _, err := Parse(p.Expr); err != nil {
			return fmt.Errorf("pipeline %q: %w", p.Name, err)
		}
	}
	return nil
}

// Options returns the evaluation limits of the configuration.
func (c *Config) Options() Options {
	return Options{MaxItems: c.MaxItems, MaxPulls: c.MaxPulls}
}

// Lookup returns the stored pipeline with the given name.
func (c *Config) Lookup(name string) (Named, bool) {
	for _, p := range c.Pipelines {
		if p.Name == name {
			return p, true
		}
	}
	return Named{}, false
}
