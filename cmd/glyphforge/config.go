package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// configFileName is looked up in the start directory and every parent.
const configFileName = "glyphforge.toml"

type projectConfig struct {
	Report   reportConfig   `toml:"report"`
	Preview  previewConfig  `toml:"preview"`
	Generate generateConfig `toml:"generate"`
}

type reportConfig struct {
	// MaxDifferences caps itemized mismatches in verify reports.
	MaxDifferences int `toml:"max_differences"`
}

type previewConfig struct {
	// Frame toggles the box frame around preview output.
	Frame bool `toml:"frame"`
}

type generateConfig struct {
	// Output is the default program destination; empty means stdout.
	// The -o flag overrides it.
	Output string `toml:"output"`
}

// defaultConfig is used when no glyphforge.toml is found.
func defaultConfig() projectConfig {
	return projectConfig{
		Report:  reportConfig{MaxDifferences: 10},
		Preview: previewConfig{Frame: true},
	}
}

// findConfigFile walks from startDir to the filesystem root looking for
// glyphforge.toml.
func findConfigFile(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err = os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", false, nil
}

// loadConfig resolves the effective configuration: the nearest
// glyphforge.toml layered over the defaults, or plain defaults when none
// exists.
func loadConfig(startDir string) (projectConfig, error) {
	cfg := defaultConfig()
	path, ok, err := findConfigFile(startDir)
	if err != nil || !ok {
		return cfg, err
	}
	if _, err = toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.Report.MaxDifferences <= 0 {
		cfg.Report.MaxDifferences = defaultConfig().Report.MaxDifferences
	}

	return cfg, nil
}
