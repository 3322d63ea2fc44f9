// Package config loads the tempview configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings tempview reads at startup.
type Config struct {
	LogFile         string
	RefreshInterval time.Duration
}

const (
	defaultConfigPath     = "~/.config/tempview/config.toml"
	defaultRefreshSeconds = 180

	// logFileEnv overrides the configured log file. Useful for pointing a
	// kiosk display at a sensor mount without editing the config.
	logFileEnv = "TEMPVIEW_LOG_FILE"
)

// Load locates and parses the config, falling back to defaults when the file
// is missing. A TEMPVIEW_LOG_FILE environment variable (optionally supplied
// via a .env file in the working directory) overrides the configured path.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{RefreshInterval: defaultRefreshSeconds * time.Second}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogFile        string `toml:"log_file"`
		RefreshSeconds int    `toml:"refresh_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.LogFile = strings.TrimSpace(raw.LogFile)
	if cfg.LogFile != "" {
		cfg.LogFile = mustExpand(cfg.LogFile)
	}
	if raw.RefreshSeconds > 0 {
		cfg.RefreshInterval = time.Duration(raw.RefreshSeconds) * time.Second
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	_ = godotenv.Load()
	if path := strings.TrimSpace(os.Getenv(logFileEnv)); path != "" {
		cfg.LogFile = mustExpand(path)
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
