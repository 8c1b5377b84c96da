package sexpr

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config chooses which names an Environment binds.
//
//	long_aliases: true
//	aliases:
//	  lt: "<"
//	  plus: add
//	exclude: ["tan"]
type Config struct {
	// LongAliases binds add, sub, mul, div and mod next to + - * / %.
	LongAliases bool `yaml:"long_aliases"`

	// Aliases maps extra names to the name of an existing builtin.
	Aliases map[string]string `yaml:"aliases"`

	// Exclude lists names that are left unbound.
	Exclude []string `yaml:"exclude"`
}

// DefaultConfig returns the configuration used by NewDefaultEnvironment.
func DefaultConfig() Config {
	return Config{
		LongAliases: true,
	}
}

// LoadConfig reads a YAML configuration. Missing fields keep their default
// value and an empty document yields DefaultConfig().
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil {
		if err == io.EOF {
			return DefaultConfig(), nil
		}
		return Config{}, errors.Wrap(err, "decoding config")
	}

	return cfg, nil
}
