// Package config loads envrex.toml: separator-map overrides and the
// default interpreter policy. Absent files are not an error — callers
// get the zero-value Config, whose ToPolicy carries no separator
// overrides, so the interpreters fall back to sepmap.Default() alone.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/cairnforge/envrex/internal/interp"
)

// Config mirrors envrex.toml. Field names are capitalized Go
// convention; toml keys are lowercase snake_case.
type Config struct {
	Shell struct {
		Default string `toml:"default"`
	} `toml:"shell"`

	Policy struct {
		RespectParentEnv bool `toml:"respect_parent_env"`
		Persist          bool `toml:"persist"`
	} `toml:"policy"`

	SepMap map[string]string `toml:"sep_map"`
}

// Load reads and decodes path. A missing file is not an error: Load
// returns the zero Config, letting callers fall back to defaults.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}

// ToPolicy builds an interp.Policy from cfg, overlaying overrides on
// top. overrides takes precedence over cfg.SepMap, which in turn
// overlays the package's built-in defaults (sepmap.Default, applied by
// the interpreters themselves) — config values sit in the middle of
// that precedence chain.
func (cfg Config) ToPolicy(overrides map[string]string) interp.Policy {
	merged := make(map[string]string, len(cfg.SepMap)+len(overrides))
	for k, v := range cfg.SepMap {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return interp.Policy{
		RespectParentEnv: cfg.Policy.RespectParentEnv,
		Persist:          cfg.Policy.Persist,
		SepMap:           merged,
	}
}

// DefaultShell returns the configured default shell target, or "" if
// unset (callers should fall back to interp.DetectShell).
func (cfg Config) DefaultShell() string {
	return cfg.Shell.Default
}
