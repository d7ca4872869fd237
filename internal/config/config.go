// Package config loads Aurora settings from a YAML file with environment
// overrides. A missing file is not an error: defaults apply.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/aurora/internal/domain"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DatabasePath string         `yaml:"database_path"`
	LogLevel     string         `yaml:"log_level"`
	Server       ServerConfig   `yaml:"server"`
	Timer        TimerConfig    `yaml:"timer"`
	Profile      domain.Profile `yaml:"profile"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type TimerConfig struct {
	FocusMinutes int `yaml:"focus_minutes"`
	BreakMinutes int `yaml:"break_minutes"`
	DeepMinutes  int `yaml:"deep_minutes"`
}

// Dir returns ~/.aurora, or "." when the home directory is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".aurora")
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Default returns the built-in configuration. The profile is left empty so
// that the stored (or seeded) profile wins unless the file sets one.
func Default() *Config {
	return &Config{
		DatabasePath: filepath.Join(Dir(), "aurora.db"),
		LogLevel:     "warn",
		Server: ServerConfig{
			Addr:           "127.0.0.1:8080",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Timer: TimerConfig{
			FocusMinutes: 25,
			BreakMinutes: 5,
			DeepMinutes:  50,
		},
	}
}

// Load reads path (DefaultPath when empty), applies environment overrides
// and validates the result.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("AURORA_DB"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("AURORA_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("AURORA_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("AURORA_CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.Server.AllowedOrigins = origins
	}
	if v := os.Getenv("AURORA_STUDENT_NAME"); v != "" {
		c.Profile.Name = v
	}
	applyMinutesEnv(&c.Timer.FocusMinutes, "AURORA_FOCUS_MINUTES")
	applyMinutesEnv(&c.Timer.BreakMinutes, "AURORA_BREAK_MINUTES")
	applyMinutesEnv(&c.Timer.DeepMinutes, "AURORA_DEEP_MINUTES")
}

func applyMinutesEnv(dst *int, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	*dst = n
}

// Validate rejects settings the rest of the program cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("config: database_path is required")
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("config: server.addr is required")
	}
	for name, m := range map[string]int{
		"focus_minutes": c.Timer.FocusMinutes,
		"break_minutes": c.Timer.BreakMinutes,
		"deep_minutes":  c.Timer.DeepMinutes,
	} {
		if m <= 0 {
			return fmt.Errorf("config: timer.%s must be positive, got %d", name, m)
		}
	}
	return nil
}

// TimerPresets merges the configured lengths into the stock presets.
func (c *Config) TimerPresets() domain.TimerPresets {
	p := domain.DefaultTimerPresets()
	set := func(mode domain.TimerMode, minutes int) {
		preset := p[mode]
		preset.Minutes = minutes
		p[mode] = preset
	}
	set(domain.TimerFocus, c.Timer.FocusMinutes)
	set(domain.TimerBreak, c.Timer.BreakMinutes)
	set(domain.TimerDeep, c.Timer.DeepMinutes)
	return p
}

// ProfileOverride reports whether the file or environment set a student
// profile, and returns it.
func (c *Config) ProfileOverride() (domain.Profile, bool) {
	return c.Profile, c.Profile.Name != ""
}
