package enpal

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Monitor owns the cached snapshot of one inverter endpoint. Any number of
// consumers may call Refresh concurrently; at most one fetch is in flight at
// a time, and a snapshot younger than the TTL is never re-fetched, so many
// consumers polling on the same interval share a single network request.
type Monitor struct {
	reader DeviceReader
	ttl    time.Duration
	logger *zap.Logger

	// fetchMu serializes fetches; stateMu guards the cached state so reads
	// never block behind an in-flight fetch.
	fetchMu sync.Mutex
	stateMu sync.RWMutex

	snapshot  Snapshot
	lastFetch time.Time
}

// NewMonitor creates a Monitor over reader with the given cache TTL. The
// logger receives fetch failure warnings.
func NewMonitor(reader DeviceReader, ttl time.Duration, logger *zap.Logger) *Monitor {
	return &Monitor{
		reader:   reader,
		ttl:      ttl,
		logger:   logger,
		snapshot: Snapshot{},
	}
}

// Refresh fetches and parses a new snapshot if the cached one expired.
// Failures of any kind (connection, timeout, non-200, undecodable body)
// leave the previous snapshot in place and are reported as warnings only;
// Refresh never returns an error to its caller.
func (m *Monitor) Refresh(ctx context.Context) {
	if m.fresh() {
		return
	}

	m.fetchMu.Lock()
	defer m.fetchMu.Unlock()

	// another caller may have refreshed while this one waited for the lock
	if m.fresh() {
		return
	}

	html, err := m.reader.FetchRaw(ctx)
	if err != nil {
		m.logger.Warn("enpal fetch failed", zap.Error(err))
		return
	}
	snapshot, err := Extract(html)
	if err != nil {
		m.logger.Warn("enpal response decode failed", zap.Error(err))
		return
	}

	m.stateMu.Lock()
	m.snapshot = snapshot
	m.lastFetch = time.Now()
	m.stateMu.Unlock()
}

// Snapshot returns the cached mapping without blocking and without
// triggering a fetch. Callers must treat the returned map as read-only.
func (m *Monitor) Snapshot() Snapshot {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()
	return m.snapshot
}

// LastFetch returns the time of the last successful fetch, zero if none
// succeeded yet.
func (m *Monitor) LastFetch() time.Time {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()
	return m.lastFetch
}

func (m *Monitor) fresh() bool {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()
	return len(m.snapshot) > 0 && time.Since(m.lastFetch) < m.ttl
}
