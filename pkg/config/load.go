package config

import (
	"fmt"
	"os"

	"airgauge-hq/airgauge/pkg/miniyaml/parser"
)

// Load reads and parses the configuration file at path through the miniyaml
// parser and returns the typed view with defaults applied.
//
// The loading sequence is:
//  1. Read the file
//  2. Parse the miniyaml document
//  3. Build the typed view
//  4. Apply default values
//  5. Validate the final configuration
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf(
				"config not found at %s; copy config/config.example.yaml to %s: %w",
				path, path, err)
		}
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	tree, err := parser.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	cfg, err := FromTree(tree)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration in %q: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}
