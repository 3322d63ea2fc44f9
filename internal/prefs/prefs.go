// Package prefs handles tempview presentation preferences.
// Preferences are stored in ~/.config/tempview/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds the user-adjustable presentation settings.
type Prefs struct {
	FontSize   int    `toml:"font_size"`
	Background string `toml:"background"`
}

const (
	defaultPrefsPath = "~/.config/tempview/prefs.toml"

	// DefaultFontSize is the banner scale the display starts with.
	DefaultFontSize = 2
	// MinFontSize renders the reading as a plain single line.
	MinFontSize = 1
	// MaxFontSize keeps the banner inside a small terminal window.
	MaxFontSize = 6

	defaultBackground = "default"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Default returns the out-of-the-box preferences.
func Default() Prefs {
	return Prefs{FontSize: DefaultFontSize, Background: defaultBackground}
}

// ClampFontSize forces size into the renderable range.
func ClampFontSize(size int) int {
	if size < MinFontSize {
		return MinFontSize
	}
	if size > MaxFontSize {
		return MaxFontSize
	}
	return size
}

// Load reads preferences from the given path. Any failure degrades to the
// defaults; a broken prefs file must never keep the display from starting.
func Load(path string) Prefs {
	resolved, err := resolvePath(path)
	if err != nil {
		return Default()
	}

	prefs := Default()

	file, err := os.Open(resolved)
	if err != nil {
		return prefs
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs
	}

	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return Default()
	}

	prefs.FontSize = ClampFontSize(prefs.FontSize)
	if strings.TrimSpace(prefs.Background) == "" {
		prefs.Background = defaultBackground
	}
	return prefs
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
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
