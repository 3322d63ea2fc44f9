package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/rlund/tempview/internal/templog"
)

// Snapshot is the display state the UI renders from. Once the first refresh
// has run, exactly one of Reading and LastError is set, never both.
type Snapshot struct {
	FilePath            string
	Reading             templog.Reading
	HasReading          bool
	LastError           error
	LastUpdated         time.Time
	ConsecutiveFailures int
}

// Stale returns true when several refreshes in a row have failed.
func (s Snapshot) Stale() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates between the poller and the UI.
// The zero value is ready to use.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// SetFilePath switches the monitored log file. The displayed reading or
// error stays until the next refresh replaces it.
func (s *Store) SetFilePath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.FilePath = path
}

// FilePath returns the currently monitored path, empty when none is set.
func (s *Store) FilePath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.FilePath
}

// Update records the outcome of one refresh. A non-nil err replaces any
// displayed reading; a successful reading clears any displayed error.
func (s *Store) Update(reading templog.Reading, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.Reading = templog.Reading{}
		s.snapshot.HasReading = false
		s.snapshot.ConsecutiveFailures++
		return
	}
	s.snapshot.Reading = reading
	s.snapshot.HasReading = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
