// Package monitor drives the periodic refresh of the temperature display.
package monitor

import (
	"context"
	"log"
	"time"

	"github.com/rlund/tempview/internal/state"
	"github.com/rlund/tempview/internal/templog"
)

// DefaultInterval is the wall-clock cadence between scheduled refreshes.
const DefaultInterval = 3 * time.Minute

// Refresh reads the latest reading for the store's current file and records
// the outcome. Both the scheduled tick and the manual trigger land here so
// the two paths cannot drift apart. With no file selected it leaves the
// store untouched; the UI renders that state as guidance, not an error.
func Refresh(store *state.Store) {
	path := store.FilePath()
	if path == "" {
		return
	}
	reading, err := templog.Latest(path)
	store.Update(reading, err)
	if err != nil {
		log.Printf("refresh failed: %v", err)
	}
}

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence until the context is cancelled. It returns immediately. The
// ticker re-arms after every tick regardless of outcome; a failed read never
// stops the schedule.
func StartPoller(ctx context.Context, store *state.Store, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			Refresh(store)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}
