// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional declarative configuration spec.md §6's CLI
// surface supplements (SPEC_FULL.md §3): an alternative to repeating
// --search/--heuristic/--preferred flags, read via --config.
type fileConfig struct {
	Search     string   `yaml:"search"`
	Weight     int      `yaml:"weight"`
	Heuristics []string `yaml:"heuristics"`
	Preferred  []string `yaml:"preferred"`
	Reopen     bool     `yaml:"reopen_closed"`
	PruneByPreferred   bool `yaml:"prune_by_preferred"`
	RankPreferredFirst bool `yaml:"rank_preferred_first"`
}

// loadConfig reads and parses a YAML fileConfig from path.
func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fdplan: reading config %q: %w", path, err)
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("fdplan: parsing config %q: %w", path, err)
	}
	return &cfg, nil
}
