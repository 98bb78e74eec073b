// Package config loads the optional HCL configuration file for the CLI.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config carries CLI defaults. Every field is optional; a missing file or
// missing block falls back to the built-in defaults.
type Config struct {
	Defaults *Defaults `hcl:"defaults,block"`
	Bench    *Bench    `hcl:"bench,block"`
}

// Defaults configures the go command.
type Defaults struct {
	Games   int `hcl:"games,optional"`
	Threads int `hcl:"threads,optional"`
}

// Bench configures the bench command. Spots, when set, replaces the
// built-in spot list.
type Bench struct {
	Games   int      `hcl:"games,optional"`
	Threads int      `hcl:"threads,optional"`
	Spots   []string `hcl:"spots,optional"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Defaults: &Defaults{
			Games:   100_000,
			Threads: 0, // 0 means one worker per CPU
		},
		Bench: &Bench{},
	}
}

// Load reads an HCL config file. A nonexistent path is not an error and
// yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := Default()
	if cfg.Defaults == nil {
		cfg.Defaults = defaults.Defaults
	} else if cfg.Defaults.Games == 0 {
		cfg.Defaults.Games = defaults.Defaults.Games
	}
	if cfg.Bench == nil {
		cfg.Bench = defaults.Bench
	}
	return &cfg, nil
}
