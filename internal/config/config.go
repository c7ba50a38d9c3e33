package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/ddmsim/internal/ddm"
)

const (
	DefaultA      = 1.0
	DefaultV      = 0.5
	DefaultZ      = 0.5
	DefaultS      = 0.1
	DefaultDt     = 0.01
	DefaultTrials = 500
	DefaultTheme  = "field"
)

type Config struct {
	Params ParamsConfig `yaml:"params"`
	Bins   int          `yaml:"bins"`
	Trials int          `yaml:"trials"`
	Seed   int64        `yaml:"seed"`
	Theme  string       `yaml:"theme"`
}

type ParamsConfig struct {
	A  float64 `yaml:"a"`
	V  float64 `yaml:"v"`
	Z  float64 `yaml:"z"`
	S  float64 `yaml:"s"`
	Dt float64 `yaml:"dt"`
}

func DefaultConfig() *Config {
	return &Config{
		Params: ParamsConfig{
			A:  DefaultA,
			V:  DefaultV,
			Z:  DefaultZ,
			S:  DefaultS,
			Dt: DefaultDt,
		},
		Bins:   ddm.DefaultBins,
		Trials: DefaultTrials,
		Theme:  DefaultTheme,
	}
}

// Load reads a YAML file over the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto decodes a YAML file over cfg; keys absent from the file are left
// untouched.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) DDMParams() ddm.Params {
	return ddm.Params{
		A:  c.Params.A,
		V:  c.Params.V,
		Z:  c.Params.Z,
		S:  c.Params.S,
		Dt: c.Params.Dt,
	}
}

func (c *Config) SetDDMParams(p ddm.Params) {
	c.Params = ParamsConfig{A: p.A, V: p.V, Z: p.Z, S: p.S, Dt: p.Dt}
}

func (c *Config) Validate() error {
	if err := c.DDMParams().Validate(); err != nil {
		return err
	}
	if c.Bins < 1 {
		return fmt.Errorf("bins must be positive, got %d", c.Bins)
	}
	if c.Trials < 0 {
		return fmt.Errorf("trials must be non-negative, got %d", c.Trials)
	}
	return nil
}
