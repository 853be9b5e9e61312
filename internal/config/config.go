// Package config loads the inference settings shared by the CLI and the wasm build.
//
// Settings come from a YAML file (variance.yaml by default) and are validated
// before use; command line flags are applied on top by the caller.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no file is given
const DefaultFile = "variance.yaml"

type Config struct {
	Simplifier Simplifier `yaml:"simplifier"`
	Solver     Solver     `yaml:"solver"`
	// Unresolved decides what a reference to an undeclared class means:
	// error, bivariant or invariant
	Unresolved string `yaml:"unresolved" validate:"oneof=error bivariant invariant"`
	Output     Output `yaml:"output"`
}

type Simplifier struct {
	// Substitution is first (an occurrence takes its first bound) or all
	// (one simplified constraint per bound)
	Substitution string `yaml:"substitution" validate:"oneof=first all"`
}

type Solver struct {
	// Strategy is fixpoint (iterate until stable) or bounded (fixed passes)
	Strategy string `yaml:"strategy" validate:"oneof=fixpoint bounded"`
	// Passes is the number of passes of the bounded strategy
	Passes int `yaml:"passes" validate:"min=1,max=64"`
}

type Output struct {
	Format string `yaml:"format" validate:"oneof=text json yaml"`
	// Rules prefixes generated constraints with the rule that produced them
	Rules bool `yaml:"rules"`
	// Color is auto (only on terminals), always or never
	Color string `yaml:"color" validate:"oneof=auto always never"`
}

func Default() Config {
	return Config{
		Simplifier: Simplifier{
			Substitution: "first",
		},
		Solver: Solver{
			Strategy: "fixpoint",
			Passes:   2,
		},
		Unresolved: "error",
		Output: Output{
			Format: "text",
			Rules:  true,
			Color:  "auto",
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}

// Parse reads YAML on top of Default, so omitted keys keep their default value
func Parse(data []byte) (Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "could not decode configuration")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the configuration at path. An empty path means DefaultFile,
// which may be missing, in which case Default is returned
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, errors.Wrapf(err, "could not read configuration %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "in %s", path)
	}
	return cfg, nil
}
