// Package config loads the runner's settings from aoc.toml or aoc.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the runner's settings. All fields are optional; Session is
// only needed when inputs have to be downloaded.
type Config struct {
	Session  string `toml:"session" yaml:"session"`
	Year     int    `toml:"year" yaml:"year"`
	InputDir string `toml:"input_dir" yaml:"input_dir"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{Year: 2021, InputDir: "."}
}

// Load reads aoc.toml or aoc.yaml (in that order) from dir. A missing
// file yields the defaults. The AOC_SESSION environment variable
// overrides the session token from any source.
func Load(dir string) (*Config, error) {
	cfg := Default()
	for _, name := range []string{"aoc.toml", "aoc.yaml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
		break
	}
	if session := os.Getenv("AOC_SESSION"); session != "" {
		cfg.Session = session
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	switch filepath.Ext(path) {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
	default:
		return fmt.Errorf("load %s: unsupported format", path)
	}
	return nil
}

// DayDir returns the directory holding a day's files.
func (c *Config) DayDir(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf("day%02d", day))
}

// InputPath returns the path of a day's input file.
func (c *Config) InputPath(day int, name string) string {
	return filepath.Join(c.DayDir(day), name)
}
