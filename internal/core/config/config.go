// Package config provides the preflight configuration loader.
// Config is merged from defaults → ~/.preflight/config.yaml → preflight.yaml → PREFLIGHT_* env vars.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/f9-o/preflight/internal/report"
	"github.com/f9-o/preflight/pkg/errs"
)

// ProjectFile is the per-directory config file name searched for by Load.
const ProjectFile = "preflight.yaml"

// Defaults contains factory-default values applied before any config file is loaded.
var Defaults = map[string]any{
	"output.format": string(report.FormatText),
	"log.level":     "warn",
	"log.format":    "text",
	"log.file":      "",
}

// ─────────────────────────────────────────────────────────────────────────────
// Config types
// ─────────────────────────────────────────────────────────────────────────────

// Config is the fully-decoded configuration.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`

	// Source is the project file that was merged, if any.
	Source string `mapstructure:"-"`
}

// OutputConfig controls how the report is rendered.
type OutputConfig struct {
	Format string `mapstructure:"format"` // text | json | yaml | markdown | pretty
}

// LogConfig controls logging behaviour.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug | info | warn | error
	Format string `mapstructure:"format"` // text | json
	File   string `mapstructure:"file"`
}

// Default returns the configuration built from Defaults alone.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Format: Defaults["output.format"].(string)},
		Log: LogConfig{
			Level:  Defaults["log.level"].(string),
			Format: Defaults["log.format"].(string),
			File:   Defaults["log.file"].(string),
		},
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Loader
// ─────────────────────────────────────────────────────────────────────────────

// Load merges the global config, the project config and the environment.
// explicitPath, when set, replaces project file discovery and must exist.
func Load(explicitPath string) (*Config, error) {
	v := viper.New()

	for k, val := range Defaults {
		v.SetDefault(k, val)
	}

	// PREFLIGHT_OUTPUT_FORMAT → output.format
	v.SetEnvPrefix("PREFLIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	globalCfg := filepath.Join(Home(), "config.yaml")
	if _, err := os.Stat(globalCfg); err == nil {
		v.SetConfigFile(globalCfg)
		if err := v.ReadInConfig(); err != nil {
			return nil, errs.New(errs.ErrConfig, "config.global", err).
				WithAdvice("fix or remove " + globalCfg)
		}
	}

	source := explicitPath
	if source == "" {
		if path, err := discoverProjectConfig(); err == nil {
			source = path
		}
	}

	if source != "" {
		v.SetConfigFile(source)
		if err := v.MergeInConfig(); err != nil {
			return nil, errs.New(errs.ErrConfig, "config.project", fmt.Errorf("read %q: %w", source, err))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errs.New(errs.ErrConfig, "config.unmarshal", err)
	}
	cfg.Source = source
	cfg.Log.File = os.ExpandEnv(cfg.Log.File)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ─────────────────────────────────────────────────────────────────────────────

// discoverProjectConfig walks up from the CWD looking for preflight.yaml.
func discoverProjectConfig() (string, error) {
	start, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for dir := start; ; {
		candidate := filepath.Join(dir, ProjectFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("%s not found (searched up from %s)", ProjectFile, start)
}

// validate performs semantic validation on the loaded config.
func validate(cfg *Config) error {
	if _, err := report.ParseFormat(cfg.Output.Format); err != nil {
		return errs.New(errs.ErrConfig, "config.validate", err)
	}
	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errs.Newf(errs.ErrConfig, "config.validate", "log.level %q is not one of debug, info, warn, error", cfg.Log.Level)
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "text", "json":
	default:
		return errs.Newf(errs.ErrConfig, "config.validate", "log.format %q is not one of text, json", cfg.Log.Format)
	}
	return nil
}

// Home returns the preflight home directory (~/.preflight).
func Home() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".preflight"
	}
	return filepath.Join(home, ".preflight")
}
