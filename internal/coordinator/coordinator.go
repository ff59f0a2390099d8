// Package coordinator serializes money movement per card. One logical
// transaction is: id generation, lock acquisition, duplicate-id
// suppression, delegation to the caller's executor, audit logging, and
// an unconditional lock release.
package coordinator

import (
	"context"
	"sync"
	"time"

	"github.com/jeffleon2/campus-card-core/internal/idgen"
	"github.com/jeffleon2/campus-card-core/internal/locks"
	"github.com/jeffleon2/campus-card-core/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	DefaultMaxRecent = 1000
	DefaultMaxLog    = 10000
)

// Executor performs the actual ledger mutation. The coordinator treats
// it as opaque and non-retryable: if it partially mutates external
// state before failing, it is responsible for its own atomicity.
type Executor func() (any, error)

type Coordinator struct {
	stationID string
	generator *idgen.Generator
	lockMgr   *locks.Manager

	mu           sync.Mutex
	recent       map[string]models.TransactionRecord
	recentOrder  []string
	maxRecent    int
	operationLog []models.OperationLogEntry
	maxLog       int
	now          func() time.Time
}

func New(stationID string, generator *idgen.Generator, lockMgr *locks.Manager) *Coordinator {
	return &Coordinator{
		stationID: stationID,
		generator: generator,
		lockMgr:   lockMgr,
		recent:    make(map[string]models.TransactionRecord),
		maxRecent: DefaultMaxRecent,
		maxLog:    DefaultMaxLog,
		now:       time.Now,
	}
}

// NewWithLimits overrides the recent-transaction window and operation
// log caps.
func NewWithLimits(stationID string, generator *idgen.Generator, lockMgr *locks.Manager, maxRecent, maxLog int) *Coordinator {
	c := New(stationID, generator, lockMgr)
	if maxRecent > 0 {
		c.maxRecent = maxRecent
	}
	if maxLog > 0 {
		c.maxLog = maxLog
	}
	return c
}

// GenerateTransactionID exposes the underlying generator.
func (c *Coordinator) GenerateTransactionID() string {
	return c.generator.Generate()
}

// IsDuplicate reports whether the id is already in the recent window.
func (c *Coordinator) IsDuplicate(transactionID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.recent[transactionID]
	return ok
}

// PerformTransaction runs one synchronized transaction against card.
//
// Lock contention and duplicate ids come back as the sentinel errors
// ErrLockBusy, ErrLockTimeout and ErrDuplicateTransaction; they are
// expected outcomes and are never retried here. An executor failure is
// logged with full context then propagated wrapped in *ExecutorError.
// The card lock is released on every exit path.
func (c *Coordinator) PerformTransaction(
	ctx context.Context,
	card string,
	operation models.OperationType,
	amount float64,
	executor Executor,
	metadata map[string]string,
) (string, any, error) {
	transactionID := c.generator.Generate()

	resource := "card:" + card
	status, token := c.lockMgr.Acquire(resource, c.stationID, true)
	switch status {
	case models.LockAcquired:
	case models.LockBusy:
		return "", nil, models.ErrLockBusy
	default:
		return "", nil, models.ErrLockTimeout
	}
	defer c.lockMgr.Release(resource, token)

	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	if !c.recordTransaction(transactionID, card, operation, amount, metadata) {
		logrus.Warnf("Duplicate transaction rejected: %s", transactionID)
		return transactionID, nil, models.ErrDuplicateTransaction
	}

	c.logOperation(transactionID, models.PhaseStart, card, operation, amount, nil, nil)

	result, err := executor()
	if err != nil {
		c.logOperation(transactionID, models.PhaseError, card, operation, amount, nil, err)
		logrus.Errorf("Transaction %s failed: %v", transactionID, err)
		return transactionID, nil, &models.ExecutorError{
			TransactionID: transactionID,
			Card:          card,
			Operation:     operation,
			Err:           err,
		}
	}

	c.logOperation(transactionID, models.PhaseComplete, card, operation, amount, result, nil)

	return transactionID, result, nil
}

// recordTransaction adds the id to the recent window; false means the
// id is already present and the caller must reject the transaction.
func (c *Coordinator) recordTransaction(transactionID, card string, operation models.OperationType, amount float64, metadata map[string]string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.recent[transactionID]; ok {
		return false
	}

	c.recent[transactionID] = models.TransactionRecord{
		ID:        transactionID,
		Card:      card,
		Operation: operation,
		Amount:    amount,
		StationID: c.stationID,
		Timestamp: c.now(),
		Metadata:  metadata,
	}
	c.recentOrder = append(c.recentOrder, transactionID)

	for len(c.recentOrder) > c.maxRecent {
		oldest := c.recentOrder[0]
		c.recentOrder = c.recentOrder[1:]
		delete(c.recent, oldest)
	}

	return true
}

func (c *Coordinator) logOperation(transactionID string, phase models.OperationPhase, card string, operation models.OperationType, amount float64, result any, opErr error) {
	entry := models.OperationLogEntry{
		TransactionID: transactionID,
		Phase:         phase,
		Card:          card,
		Operation:     operation,
		Amount:        amount,
		StationID:     c.stationID,
		Timestamp:     c.now(),
		Result:        result,
	}
	if opErr != nil {
		entry.Error = opErr.Error()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.operationLog = append(c.operationLog, entry)
	if len(c.operationLog) > c.maxLog {
		c.operationLog = c.operationLog[len(c.operationLog)-c.maxLog:]
	}
}

// RecentTransactions returns up to limit of the newest records in the
// duplicate-detection window, oldest first.
func (c *Coordinator) RecentTransactions(limit int) []models.TransactionRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	if limit <= 0 || limit > len(c.recentOrder) {
		limit = len(c.recentOrder)
	}

	out := make([]models.TransactionRecord, 0, limit)
	for _, id := range c.recentOrder[len(c.recentOrder)-limit:] {
		out = append(out, c.recent[id])
	}
	return out
}

// OperationLog returns up to limit of the newest audit entries,
// optionally filtered by phase.
func (c *Coordinator) OperationLog(limit int, phase models.OperationPhase) []models.OperationLogEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	if limit <= 0 || limit > len(c.operationLog) {
		limit = len(c.operationLog)
	}

	entries := c.operationLog[len(c.operationLog)-limit:]
	out := make([]models.OperationLogEntry, 0, len(entries))
	for _, entry := range entries {
		if phase != "" && entry.Phase != phase {
			continue
		}
		out = append(out, entry)
	}
	return out
}

type Stats struct {
	StationID          string                        `json:"station_id"`
	RecentTransactions int                           `json:"recent_transactions"`
	OperationLogSize   int                           `json:"operation_log_size"`
	OperationCounts    map[models.OperationPhase]int `json:"operation_counts"`
	Locks              locks.Stats                   `json:"locks"`
}

func (c *Coordinator) Stats() Stats {
	c.mu.Lock()
	counts := make(map[models.OperationPhase]int)
	for _, entry := range c.operationLog {
		counts[entry.Phase]++
	}
	stats := Stats{
		StationID:          c.stationID,
		RecentTransactions: len(c.recent),
		OperationLogSize:   len(c.operationLog),
		OperationCounts:    counts,
	}
	c.mu.Unlock()

	stats.Locks = c.lockMgr.Stats()
	return stats
}
