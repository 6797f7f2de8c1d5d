package config

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Run struct {
		Method  string  `yaml:"method"` // devroye | gammaconv
		Shape   float64 `yaml:"shape"`  // n for devroye, h for gammaconv
		Tilt    float64 `yaml:"tilt"`   // z
		Draws   int     `yaml:"draws"`
		Seed    uint64  `yaml:"seed"` // 0 means seed from the clock
		Workers int     `yaml:"workers"`
	} `yaml:"run"`

	Output struct {
		Plots bool `yaml:"plots"` // histogram + running mean png
		Bins  int  `yaml:"bins"`  // histogram bins
	} `yaml:"output"`
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	fillDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	return &cfg, nil
}

func fillDefaults(c *Config) {
	if c.Run.Method == "" {
		c.Run.Method = "devroye"
	}
	if c.Run.Shape == 0 {
		c.Run.Shape = 1
	}
	if c.Run.Draws == 0 {
		c.Run.Draws = 100_000
	}
	if c.Run.Workers == 0 {
		c.Run.Workers = 4
	}
	if c.Output.Bins == 0 {
		c.Output.Bins = 60
	}
}

func validate(c *Config) error {
	switch c.Run.Method {
	case "devroye":
		if c.Run.Shape != math.Trunc(c.Run.Shape) || c.Run.Shape < 1 {
			return errors.Errorf("devroye needs a positive integer shape, got %v", c.Run.Shape)
		}
	case "gammaconv":
		if c.Run.Shape <= 0 {
			return errors.Errorf("gammaconv needs shape > 0, got %v", c.Run.Shape)
		}
	default:
		return errors.Errorf("unknown method %q", c.Run.Method)
	}
	if c.Run.Draws < 1 {
		return errors.Errorf("draws must be positive, got %d", c.Run.Draws)
	}
	if c.Run.Workers < 1 {
		return errors.Errorf("workers must be positive, got %d", c.Run.Workers)
	}
	return nil
}
