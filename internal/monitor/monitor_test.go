package monitor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rlund/tempview/internal/state"
	"github.com/rlund/tempview/internal/templog"
)

func TestRefresh_NoFileSelectedLeavesStoreUntouched(t *testing.T) {
	store := &state.Store{}

	Refresh(store)

	snap := store.Snapshot()
	if snap.HasReading || snap.LastError != nil {
		t.Fatalf("snapshot = %+v, want untouched zero state", snap)
	}
	if !snap.LastUpdated.IsZero() {
		t.Fatal("LastUpdated set without a configured file")
	}
}

func TestRefresh_PublishesReading(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temps.txt")
	content := "2024-10-20 12:00:00;Location1;20.5\n2024-10-20 12:05:00;Location1;21.0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	store := &state.Store{}
	store.SetFilePath(path)
	Refresh(store)

	snap := store.Snapshot()
	if !snap.HasReading {
		t.Fatalf("HasReading = false, LastError = %v", snap.LastError)
	}
	want := templog.Reading{Timestamp: "2024-10-20 12:05:00", Location: "Location1", Temperature: 21.0}
	if snap.Reading != want {
		t.Fatalf("Reading = %+v, want %+v", snap.Reading, want)
	}
}

func TestRefresh_PublishesErrorAndKeepsGoing(t *testing.T) {
	store := &state.Store{}
	store.SetFilePath(filepath.Join(t.TempDir(), "missing.txt"))

	const ticks = 5
	for i := 0; i < ticks; i++ {
		Refresh(store)
	}

	snap := store.Snapshot()
	if snap.HasReading {
		t.Fatal("HasReading = true, want false")
	}
	var accessErr *templog.FileAccessError
	if !errors.As(snap.LastError, &accessErr) {
		t.Fatalf("LastError = %v, want FileAccessError", snap.LastError)
	}
	if snap.ConsecutiveFailures != ticks {
		t.Fatalf("ConsecutiveFailures = %d, want %d", snap.ConsecutiveFailures, ticks)
	}
}

func TestRefresh_ErrorThenRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "temps.txt")
	store := &state.Store{}
	store.SetFilePath(path)

	Refresh(store)
	if snap := store.Snapshot(); snap.LastError == nil {
		t.Fatal("LastError = nil, want file access error")
	}

	if err := os.WriteFile(path, []byte("2024-10-20 12:00:00;Attic;18.5\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	Refresh(store)

	snap := store.Snapshot()
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil after recovery", snap.LastError)
	}
	if snap.Reading.Location != "Attic" {
		t.Fatalf("Location = %q, want Attic", snap.Reading.Location)
	}
}

func TestStartPoller_RefreshesAndStopsOnCancel(t *testing.T) {
	store := &state.Store{}
	store.SetFilePath(filepath.Join(t.TempDir(), "missing.txt"))

	ctx, cancel := context.WithCancel(context.Background())
	StartPoller(ctx, store, 10*time.Millisecond)

	deadline := time.Now().Add(2 * time.Second)
	for {
		if store.Snapshot().ConsecutiveFailures >= 3 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("poller recorded %d failures, want at least 3", store.Snapshot().ConsecutiveFailures)
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	// After cancellation the failure count settles.
	time.Sleep(30 * time.Millisecond)
	settled := store.Snapshot().ConsecutiveFailures
	time.Sleep(50 * time.Millisecond)
	if got := store.Snapshot().ConsecutiveFailures; got != settled {
		t.Fatalf("ConsecutiveFailures advanced from %d to %d after cancel", settled, got)
	}
}
