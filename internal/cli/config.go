package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/beam"
)

// Config holds the settings shared by every subcommand. A YAML file given
// with --config supplies the base values; flags set on the command line
// override them.
type Config struct {
	Workers       int      `yaml:"workers"`
	Order         []string `yaml:"order"`
	FailFast      bool     `yaml:"fail_fast"`
	Strict        bool     `yaml:"strict"`
	AromaticBonds bool     `yaml:"aromatic_bonds"`
	Verbose       bool     `yaml:"verbose"`
}

// DefaultConfig uses one worker per CPU and leaves the written order as
// parsed.
func DefaultConfig() Config {
	return Config{Workers: runtime.NumCPU()}
}

// LoadConfig reads a YAML configuration file. Keys that are absent keep
// their DefaultConfig value; unknown keys are an error.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cli: config: %w", err)
	}
	defer f.Close()

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("cli: config %s: %w", path, err)
	}
	return &cfg, nil
}

// override copies every flag the user set explicitly into cfg.
func (cfg *Config) override(flags *pflag.FlagSet) error {
	var err error
	if flags.Changed(flagWorkers) {
		if cfg.Workers, err = flags.GetInt(flagWorkers); err != nil {
			return err
		}
	}
	if flags.Changed(flagOrder) {
		if cfg.Order, err = flags.GetStringSlice(flagOrder); err != nil {
			return err
		}
	}
	for name, dst := range map[string]*bool{
		flagFailFast:      &cfg.FailFast,
		flagStrict:        &cfg.Strict,
		flagAromaticBonds: &cfg.AromaticBonds,
		flagVerbose:       &cfg.Verbose,
	} {
		if flags.Changed(name) {
			if *dst, err = flags.GetBool(name); err != nil {
				return err
			}
		}
	}
	return nil
}

// validate normalises the worker count and rejects unknown orderings before
// any input is read.
func (cfg *Config) validate() error {
	if cfg.Workers < 1 {
		cfg.Workers = runtime.NumCPU()
	}
	if _, err := beam.Ordering(cfg.Order...); err != nil {
		return err
	}
	return nil
}
