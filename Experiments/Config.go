package Experiments

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config selects which experiments to run. Fields left out of the yaml file
// keep their defaults.
type Config struct {
	Sizes    []int     `yaml:"sizes"`
	Patterns []Pattern `yaml:"patterns"`
	// Seed for dataset generation; the same seed reproduces the same run.
	Seed int64 `yaml:"seed"`
	// SortedFraction of the nearly-sorted datasets left undisturbed.
	SortedFraction float64 `yaml:"sortedFraction"`
}

func DefaultConfig() Config {
	return Config{
		Sizes:          []int{100, 1000, 5000},
		Patterns:       AllPatterns,
		Seed:           1,
		SortedFraction: 0.9,
	}
}

// LoadConfig reads a yaml file over the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("Experiments: reading config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("Experiments: parsing config: %w", err)
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("Experiments: no sizes configured")
	}
	for _, n := range c.Sizes {
		if n <= 0 {
			return fmt.Errorf("Experiments: invalid size %d", n)
		}
	}
	if len(c.Patterns) == 0 {
		return fmt.Errorf("Experiments: no patterns configured")
	}
	for _, p := range c.Patterns {
		switch p {
		case Random, Sorted, ReverseSorted, NearlySorted:
		default:
			return fmt.Errorf("Experiments: unknown pattern %q", p)
		}
	}
	if c.SortedFraction < 0 || c.SortedFraction > 1 {
		return fmt.Errorf("Experiments: sorted fraction %v outside [0,1]", c.SortedFraction)
	}
	return nil
}
