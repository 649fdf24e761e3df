package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no
// -config flag is given.
const DefaultConfigFile = ".mentonlang.yaml"

// Config holds the optional YAML settings for the interpreter. Flags
// given on the command line take precedence over config values.
type Config struct {
	Numerals    string `yaml:"numerals,omitempty"`
	Steps       int64  `yaml:"steps,omitempty"`
	Trace       bool   `yaml:"trace,omitempty"`
	TraceFilter string `yaml:"trace_filter,omitempty"`
}

// loadConfig reads path, or DefaultConfigFile when path is empty. A
// missing default file yields an empty config; a missing explicit file
// is an error. Unknown keys are rejected.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = DefaultConfigFile
	}

	file, err := os.Open(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var cfg Config
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}
