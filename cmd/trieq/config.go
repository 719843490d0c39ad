// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of trieq, read from an optional YAML file.
// Command line flags and environment variables take precedence.
//
//	routes:   ./testdata/routes.txt.gz
//	snapshot: /var/cache/trieq/routes.msgpack
//	format:   msgpack
//	logLevel: debug
type Config struct {
	Routes   string `yaml:"routes"`
	Snapshot string `yaml:"snapshot"`
	Format   string `yaml:"format"`
	LogLevel string `yaml:"logLevel"`
}

// snapshot formats
const (
	formatMsgpack = "msgpack"
	formatJSON    = "json"
)

// ReadConfig reads the config from the given path.
func ReadConfig(configPath string) (*Config, error) {
	configData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read config")
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(configData, cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config YAML")
	}
	return cfg, nil
}

// configFromContext merges the config file and the flags.
func configFromContext(cctx *cli.Context) (*Config, error) {
	cfg := &Config{}

	if path := cctx.String("config"); path != "" {
		var err error
		if cfg, err = ReadConfig(path); err != nil {
			return nil, err
		}
	}

	// flags and env vars override the file
	for name, field := range map[string]*string{
		"routes":    &cfg.Routes,
		"snapshot":  &cfg.Snapshot,
		"format":    &cfg.Format,
		"log-level": &cfg.LogLevel,
	} {
		if cctx.IsSet(name) || *field == "" {
			*field = cctx.String(name)
		}
	}

	switch cfg.Format {
	case formatMsgpack, formatJSON:
	default:
		return nil, errors.Errorf("unknown snapshot format %q, want %q or %q", cfg.Format, formatMsgpack, formatJSON)
	}

	return cfg, nil
}
