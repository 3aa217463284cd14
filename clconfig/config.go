package clconfig

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrBadConfig indicates a configuration field failed validation.
var ErrBadConfig = errors.New("clconfig: bad configuration")

// Config carries the driver-level settings of one simulation run.
type Config struct {
	// LineTrace prints the root's trace string once per cycle.
	LineTrace bool `yaml:"line_trace"`

	// Seed drives the condensation's start-order shuffle.
	Seed int64 `yaml:"seed"`

	// MaxIters bounds fixed-point iteration per component. Must be > 0.
	MaxIters int `yaml:"max_iters"`

	// DumpDAG, when non-empty, names the GraphViz DOT output file.
	DumpDAG string `yaml:"dump_dag"`
}

// Default returns the settings assumed when no file is supplied.
func Default() Config {
	return Config{
		LineTrace: false,
		Seed:      42,
		MaxIters:  100,
		DumpDAG:   "",
	}
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.MaxIters <= 0 {
		return fmt.Errorf("%w: max_iters must be positive, got %d", ErrBadConfig, c.MaxIters)
	}

	return nil
}

// Parse decodes a YAML document from r over the defaults, then validates.
// Absent fields keep their default values.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("clconfig: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("clconfig: open: %w", err)
	}
	defer f.Close()

	return Parse(f)
}
