package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/scptdisplay/pkg/adapters/process"
)

// EnvPath overrides DefaultPath.
const EnvPath = "SCPTDISPLAY_CONFIG"

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config holds the settings the CLI and MCP server share.
type Config struct {
	Interpreter      string   `yaml:"interpreter" json:"interpreter"`
	ScriptFlag       string   `yaml:"script_flag" json:"script_flag"` // Empty: script goes to stdin
	CancelSignatures []string `yaml:"cancel_signatures" json:"cancel_signatures"`
	CancelExitCodes  []int    `yaml:"cancel_exit_codes" json:"cancel_exit_codes"`
	LogLevel         string   `yaml:"log_level" json:"log_level"`
	Format           string   `yaml:"format" json:"format"` // json, text, or empty to pick by terminal
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Interpreter:      process.DefaultInterpreter,
		CancelSignatures: append([]string(nil), process.DefaultCancelSignatures...),
	}
}

// DefaultPath returns $SCPTDISPLAY_CONFIG, or config.yaml under the user config directory.
func DefaultPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "scptdisplay", "config.yaml")
}

// Load reads a configuration file (YAML or JSON) on top of Default.
// A missing file is not an error: the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if cfg.Interpreter == "" {
		cfg.Interpreter = process.DefaultInterpreter
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings that cannot work.
func (c Config) Validate() error {
	switch c.Format {
	case "", FormatJSON, FormatText:
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", c.Format, FormatJSON, FormatText)
	}
	return nil
}

// CancelMatcher builds the cancellation policy described by the config.
func (c Config) CancelMatcher() process.SignatureMatcher {
	return process.SignatureMatcher{
		Substrings: c.CancelSignatures,
		ExitCodes:  c.CancelExitCodes,
	}
}

// RunnerOptions translates the config into process runner options.
func (c Config) RunnerOptions() []process.RunnerOption {
	opts := []process.RunnerOption{process.WithCancelMatcher(c.CancelMatcher())}
	if c.ScriptFlag != "" {
		opts = append(opts, process.WithArgs(), process.WithScriptFlag(c.ScriptFlag))
	}
	return opts
}
