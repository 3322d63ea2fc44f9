package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rlund/tempview/internal/config"
	"github.com/rlund/tempview/internal/monitor"
	"github.com/rlund/tempview/internal/prefs"
	"github.com/rlund/tempview/internal/state"
	"github.com/rlund/tempview/internal/ui"
)

// Options configure the tempview application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/tempview/prefs.toml
	LogFile    string // overrides the configured log file
	PollEvery  int    // seconds; zero uses the configured interval
}

// Run boots the tempview display until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	store := &state.Store{}
	if path := opts.LogFile; path != "" {
		store.SetFilePath(path)
	} else if cfg.LogFile != "" {
		store.SetFilePath(cfg.LogFile)
	}

	interval := cfg.RefreshInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// The poller does the first refresh itself, so a configured file shows a
	// reading before the first scheduled tick elapses.
	monitor.StartPoller(ctx, store, interval)

	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     store,
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
	})
}
