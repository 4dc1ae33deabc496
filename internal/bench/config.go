package bench

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a benchmark configuration cannot be run.
var ErrInvalidConfig = errors.New("bench: invalid config")

// Value is a complex sample in configuration files, {re: 3, im: 4}.
type Value struct {
	Re float64 `yaml:"re" json:"re"`
	Im float64 `yaml:"im" json:"im"`
}

// Config describes which powers to time.
type Config struct {
	// Iterations is the number of timed calls per case.
	Iterations int `yaml:"iterations"`
	// Warmup calls run before timing starts.
	Warmup int `yaml:"warmup"`
	// Seed drives the generation of RandomValues extra samples.
	Seed         int64   `yaml:"seed"`
	RandomValues int     `yaml:"random_values"`
	Exponents    []int   `yaml:"exponents"`
	Values       []Value `yaml:"values"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Iterations: 20000,
		Warmup:     200,
		Seed:       1,
		Exponents:  []int{2, 8, 32, 128},
		Values: []Value{
			{Re: 3, Im: 4},
			{Re: -0.5, Im: 0.75},
			{Re: 0.6, Im: -0.8},
		},
	}
}

// LoadConfig reads a YAML configuration file. Keys missing from the file
// keep their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read bench config: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes YAML on top of DefaultConfig. The result is not
// validated, so that callers can still override fields; Run validates.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Validate checks that the configuration describes at least one case.
func (c Config) Validate() error {
	switch {
	case c.Iterations < 1:
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidConfig, c.Iterations)
	case c.Warmup < 0:
		return fmt.Errorf("%w: warmup must not be negative, got %d", ErrInvalidConfig, c.Warmup)
	case c.RandomValues < 0:
		return fmt.Errorf("%w: random_values must not be negative, got %d", ErrInvalidConfig, c.RandomValues)
	case len(c.Exponents) == 0:
		return fmt.Errorf("%w: no exponents", ErrInvalidConfig)
	case len(c.Values) == 0 && c.RandomValues == 0:
		return fmt.Errorf("%w: no values", ErrInvalidConfig)
	}

	return nil
}
