package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config keeps runtime settings for the server.
type Config struct {
	HTTPAddr            string   `yaml:"http_addr"`
	DatabaseURL         string   `yaml:"database_url"`
	StaticDir           string   `yaml:"static_dir"`
	CORSOrigins         []string `yaml:"cors_origins"`
	GinMode             string   `yaml:"gin_mode"`
	ReminderScanMinutes int      `yaml:"reminder_scan_minutes"`
	DefaultPassword     string   `yaml:"default_password"`
}

// ReminderScanInterval is zero when the scan job is disabled.
func (c Config) ReminderScanInterval() time.Duration {
	return time.Duration(c.ReminderScanMinutes) * time.Minute
}

// Load reads an optional YAML file named by TASKFLOW_CONFIG, then applies
// environment variables on top, then fills defaults.
func Load() (Config, error) {
	var cfg Config

	if path := strings.TrimSpace(os.Getenv("TASKFLOW_CONFIG")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	overrideString(&cfg.HTTPAddr, "HTTP_ADDR")
	overrideString(&cfg.DatabaseURL, "DATABASE_URL")
	overrideString(&cfg.StaticDir, "STATIC_DIR")
	overrideString(&cfg.GinMode, "GIN_MODE")
	overrideString(&cfg.DefaultPassword, "DEFAULT_PASSWORD")
	if raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS")); raw != "" {
		cfg.CORSOrigins = splitList(raw)
	}
	if raw := strings.TrimSpace(os.Getenv("REMINDER_SCAN_MINUTES")); raw != "" {
		minutes, err := parseMinutes(raw)
		if err != nil {
			return cfg, err
		}
		cfg.ReminderScanMinutes = minutes
	}

	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":5001"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "taskflow.db"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "static"
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"*"}
	}
	if cfg.GinMode == "" {
		cfg.GinMode = "release"
	}
	if cfg.DefaultPassword == "" {
		cfg.DefaultPassword = "default"
	}

	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return cfg, fmt.Errorf("unknown gin mode %q", cfg.GinMode)
	}
	if cfg.ReminderScanMinutes < 0 {
		return cfg, fmt.Errorf("reminder scan interval must not be negative")
	}

	return cfg, nil
}

func overrideString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseMinutes accepts whole minutes only.
func parseMinutes(raw string) (int, error) {
	minutes, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid REMINDER_SCAN_MINUTES %q: want whole minutes", raw)
	}
	return minutes, nil
}
