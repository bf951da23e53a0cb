// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package config implements the configuration
// of the oracles used in a comparison.
//
// The configuration is a YAML file,
// any missing value takes its default.
// Here is an example file:
//
//	timeout: 30s
//	workers: 2
//	user-agent: triplet/1.0 (someone@example.org)
//	opentree:
//	  url: https://api.opentreeoflife.org/v3
//	  rate: 2
//	wikipedia:
//	  url: https://en.wikipedia.org
//	  rate: 5
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values.
const (
	DefaultTimeout   = 30 * time.Second
	DefaultWorkers   = 1
	DefaultUserAgent = "triplet/1.0 (https://github.com/js-arias/triplet)"
	OpenTreeURL      = "https://api.opentreeoflife.org/v3"
	WikipediaURL     = "https://en.wikipedia.org"
	DefaultRate      = 2.0
)

// Service is the configuration of a web service.
type Service struct {
	// URL is the base URL of the service.
	URL string `yaml:"url"`

	// Rate is the maximum number of requests per second.
	// A zero or negative value disables the limit.
	Rate float64 `yaml:"rate"`
}

// Config is the configuration of the oracles.
type Config struct {
	// Timeout is the maximum time for a single oracle query.
	Timeout time.Duration `yaml:"timeout"`

	// Workers is the number of triples queried at the same time.
	Workers int `yaml:"workers"`

	UserAgent string  `yaml:"user-agent"`
	OpenTree  Service `yaml:"opentree"`
	Wikipedia Service `yaml:"wikipedia"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Timeout:   DefaultTimeout,
		Workers:   DefaultWorkers,
		UserAgent: DefaultUserAgent,
		OpenTree: Service{
			URL:  OpenTreeURL,
			Rate: DefaultRate,
		},
		Wikipedia: Service{
			URL:  WikipediaURL,
			Rate: DefaultRate,
		},
	}
}

// Read reads a configuration from a YAML stream.
func Read(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("while decoding configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ReadFile reads a configuration from a file.
// If name is empty,
// it returns the default configuration.
func ReadFile(name string) (Config, error) {
	if name == "" {
		return Default(), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := Read(f)
	if err != nil {
		return Config{}, fmt.Errorf("on file %q: %v", name, err)
	}
	return cfg, nil
}

// Validate returns an error
// if a configuration value is invalid.
func (c Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("invalid timeout %v", c.Timeout)
	}
	if c.Workers < 1 {
		return fmt.Errorf("invalid number of workers %d", c.Workers)
	}
	if c.OpenTree.URL == "" {
		return fmt.Errorf("undefined opentree URL")
	}
	if c.Wikipedia.URL == "" {
		return fmt.Errorf("undefined wikipedia URL")
	}
	return nil
}

// Write writes a configuration
// as a YAML file.
func (c Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("while encoding configuration: %v", err)
	}
	return enc.Close()
}
