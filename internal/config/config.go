// Package config provides pymk's paths and optional file configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the optional settings read from config.yaml in the data
// directory. Everything here is overridable by the environment and by
// command-line flags.
type Config struct {
	// Repository is the package index passed to the upload tool.
	Repository string `yaml:"repository"`
	// Project is the source package name used by docs and coverage tasks.
	Project string `yaml:"project"`
	// Shell overrides the shell used to run task commands.
	Shell string `yaml:"shell"`
	// Verbose enables debug logging by default.
	Verbose bool `yaml:"verbose"`
}

// Load reads config.yaml from the data directory. A missing file is not
// an error and yields a zero Config.
func Load() (Config, error) {
	var cfg Config
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
