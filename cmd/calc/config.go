package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds defaults for command-line flags.
type config struct {
	Degrees bool   `yaml:"degrees"`
	Format  string `yaml:"fmt"`
}

// loadConfig reads a config file. An empty file gives the zero config.
func loadConfig(name string) (config, error) {
	var cfg config
	f, err := os.Open(name)
	if err != nil {
		return cfg, fmt.Errorf("couldn't open config: %w", err)
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("couldn't read config %s: %w", name, err)
	}
	return cfg, nil
}
