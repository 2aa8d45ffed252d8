// Package config loads generator settings from YAML.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/apparentlymart/riscv-illegals/illegal"
)

// Config is the on-disk form of the generator settings.
type Config struct {
	// ISA is the descriptor used when none is given on the command line.
	ISA string `yaml:"isa"`

	// Coverage is "pairwise" or "cartesian". Default: pairwise.
	Coverage string `yaml:"coverage"`

	// HintRegister is the rd substituted on hint encodings. Default: 6.
	HintRegister uint32 `yaml:"hint_register"`

	// BaseRegister is the rs1 substituted on loads and stores. Default: 5.
	BaseRegister uint32 `yaml:"base_register"`

	FenceCorrection bool `yaml:"fence_correction"`

	// DropLegal removes words that still decode to an instruction.
	DropLegal bool `yaml:"drop_legal"`

	// Label names the symbol emitted ahead of the word directives.
	Label string `yaml:"label"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		ISA:          "RV64IMAFD",
		Coverage:     illegal.CoveragePairwise.String(),
		HintRegister: 6,
		BaseRegister: 5,
		Label:        "illegal_instructions",
	}
}

// Load reads path over the defaults. Keys absent from the file keep their
// default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	if _, err := illegal.ParseCoverage(c.Coverage); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return c, nil
}

// Options converts c into generator options.
func (c *Config) Options() ([]illegal.Option, error) {
	cov, err := illegal.ParseCoverage(c.Coverage)
	if err != nil {
		return nil, err
	}
	return []illegal.Option{
		illegal.WithCoverage(cov),
		illegal.WithHintRegister(c.HintRegister),
		illegal.WithBaseRegister(c.BaseRegister),
		illegal.WithFenceCorrection(c.FenceCorrection),
		illegal.WithDropLegal(c.DropLegal),
	}, nil
}
