package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"scorecard/pkg/chart"
	"scorecard/pkg/woe"
)

// Config represents the settings file of a run. Fields left out of the file keep their defaults.
type Config struct {
	Binning woe.Config        `yaml:"binning"`
	Score   chart.ScoreConfig `yaml:"score"`

	// Workers limits how many features are encoded at the same time
	Workers int `yaml:"workers"`
}

func Default() *Config {
	return &Config{
		Binning: woe.DefaultConfig(),
		Score:   chart.DefaultScoreConfig(),
		Workers: 4,
	}
}

// Load reads the config file at path on top of the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading config file: %s", path)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, errors.Wrapf(err, "error unmarshalling config file: %s", path)
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file: %s", path)
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Workers < 1 {
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	}
	if err := c.Binning.Validate(); err != nil {
		return errors.Wrap(err, "binning")
	}
	return errors.Wrap(c.Score.Validate(), "score")
}

func Save(path string, c *Config) error {
	if c == nil {
		return errors.New("config required")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(path, b, 0600); err != nil {
		return errors.Wrapf(err, "failed to write config file: %s", path)
	}
	return nil
}
