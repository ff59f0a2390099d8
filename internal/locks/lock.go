// Package locks provides per-resource mutual exclusion with expiry,
// used to serialize all money movement on a single card. Expiry bounds
// the damage of a crashed holder; token matching stops a stale holder
// from releasing a lock reacquired by another station.
package locks

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/campus-card-core/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	DefaultTimeout = 30 * time.Second
	DefaultMaxWait = 10 * time.Second
	CheckInterval  = 100 * time.Millisecond
)

type Manager struct {
	mu    sync.Mutex
	locks map[string]*models.Lock

	defaultTimeout time.Duration
	maxWait        time.Duration
	checkInterval  time.Duration
	now            func() time.Time
}

func NewManager() *Manager {
	return &Manager{
		locks:          make(map[string]*models.Lock),
		defaultTimeout: DefaultTimeout,
		maxWait:        DefaultMaxWait,
		checkInterval:  CheckInterval,
		now:            time.Now,
	}
}

// NewManagerWith overrides the default lease timeout and wait bounds.
func NewManagerWith(timeout, maxWait, checkInterval time.Duration) *Manager {
	m := NewManager()
	if timeout > 0 {
		m.defaultTimeout = timeout
	}
	if maxWait > 0 {
		m.maxWait = maxWait
	}
	if checkInterval > 0 {
		m.checkInterval = checkInterval
	}
	return m
}

// Acquire takes the lock on resource with the default lease and wait
// bounds. It returns the acquisition status and, on success, an opaque
// token required to release or extend the lock.
func (m *Manager) Acquire(resource, stationID string, wait bool) (models.LockStatus, string) {
	return m.AcquireFor(resource, stationID, m.defaultTimeout, wait, m.maxWait)
}

// AcquireFor is Acquire with explicit lease duration and wait bound.
// When wait is true it polls at a fixed interval until the lock frees
// or maxWait elapses. Waiters are not queued; any of them may win.
func (m *Manager) AcquireFor(resource, stationID string, ttl time.Duration, wait bool, maxWait time.Duration) (models.LockStatus, string) {
	start := m.now()

	for {
		status, token := m.tryAcquire(resource, stationID, ttl, wait)
		if status != "" {
			return status, token
		}

		if m.now().Sub(start) > maxWait {
			return models.LockTimeout, ""
		}

		time.Sleep(m.checkInterval)
	}
}

// tryAcquire returns an empty status when the caller should keep
// polling.
func (m *Manager) tryAcquire(resource, stationID string, ttl time.Duration, wait bool) (models.LockStatus, string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()

	if existing, ok := m.locks[resource]; ok {
		if existing.Expired(now) {
			delete(m.locks, resource)
			logrus.Debugf("Expired lock removed: %s", resource)
		} else if !wait {
			return models.LockBusy, ""
		}
	}

	if _, ok := m.locks[resource]; !ok {
		token := uuid.New().String()
		m.locks[resource] = &models.Lock{
			Resource:   resource,
			StationID:  stationID,
			Token:      token,
			AcquiredAt: now,
			ExpiresAt:  now.Add(ttl),
		}
		logrus.Debugf("Lock acquired: %s by station %s", resource, stationID)
		return models.LockAcquired, token
	}

	return "", ""
}

// Release frees the lock. It returns true when no entry exists (already
// released, possibly by expiry) and false without mutating anything
// when the token does not match the current holder.
func (m *Manager) Release(resource, token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.locks[resource]
	if !ok {
		return true
	}

	if existing.Token != token {
		logrus.Warnf("Invalid lock token for %s", resource)
		return false
	}

	delete(m.locks, resource)
	logrus.Debugf("Lock released: %s", resource)
	return true
}

// Extend pushes the lock's expiry forward. Same token discipline as
// Release.
func (m *Manager) Extend(resource, token string, extension time.Duration) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.locks[resource]
	if !ok {
		return false
	}

	if existing.Token != token {
		return false
	}

	existing.ExpiresAt = m.now().Add(extension)
	return true
}

// IsLocked reports whether resource currently has a live lock. Expired
// entries are evicted as a side effect.
func (m *Manager) IsLocked(resource string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.locks[resource]
	if !ok {
		return false
	}

	if existing.Expired(m.now()) {
		delete(m.locks, resource)
		return false
	}

	return true
}

// Info returns a copy of the lock entry with remaining seconds, or nil
// when no entry exists.
func (m *Manager) Info(resource string) *models.Lock {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.locks[resource]
	if !ok {
		return nil
	}

	info := *existing
	remaining := existing.ExpiresAt.Sub(m.now()).Seconds()
	if remaining < 0 {
		remaining = 0
	}
	info.Remaining = remaining
	return &info
}

// CleanupExpired sweeps every expired entry and returns how many were
// removed. Intended to run periodically.
func (m *Manager) CleanupExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	count := 0
	for resource, existing := range m.locks {
		if existing.Expired(now) {
			delete(m.locks, resource)
			count++
		}
	}

	if count > 0 {
		logrus.Infof("Cleaned up %d expired locks", count)
	}

	return count
}

type Stats struct {
	TotalLocks  int      `json:"total_locks"`
	ActiveLocks int      `json:"active_locks"`
	Stations    []string `json:"stations"`
}

func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	stats := Stats{TotalLocks: len(m.locks)}

	seen := make(map[string]bool)
	for _, existing := range m.locks {
		if existing.Expired(now) {
			continue
		}
		stats.ActiveLocks++
		if !seen[existing.StationID] {
			seen[existing.StationID] = true
			stats.Stations = append(stats.Stations, existing.StationID)
		}
	}

	return stats
}
