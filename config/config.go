// Package config loads the settings used by the cgkernel command: how
// polygons are rendered and how normal calculation is spread across workers.
package config

import (
	"os"

	"github.com/osuushi/cgkernel/polygon"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Draw polygon.DrawOptions `yaml:"draw"`
	// Where rendered PNGs go when no explicit path is given.
	OutputDir string `yaml:"output_dir"`
	// Goroutines used for vertex normals.
	NormalWorkers int `yaml:"normal_workers"`
}

func Default() Config {
	return Config{
		Draw:          polygon.DefaultDrawOptions(),
		OutputDir:     os.TempDir(),
		NormalWorkers: 1,
	}
}

// Load reads a YAML config file. Keys missing from the file keep their
// defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Draw.Scale <= 0 {
		return errors.Errorf("draw.scale must be positive, got %v", c.Draw.Scale)
	}
	if c.Draw.Padding < 0 {
		return errors.Errorf("draw.padding must not be negative, got %d", c.Draw.Padding)
	}
	if c.NormalWorkers < 1 {
		return errors.Errorf("normal_workers must be at least 1, got %d", c.NormalWorkers)
	}
	return nil
}
