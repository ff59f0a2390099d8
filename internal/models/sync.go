package models

import "time"

type LockStatus string

const (
	LockAcquired LockStatus = "acquired"
	LockBusy     LockStatus = "busy"
	LockTimeout  LockStatus = "timeout"
)

// Lock is a live lease on a resource. At most one non-expired Lock
// exists per resource; only the matching token may release or extend it.
type Lock struct {
	Resource   string    `json:"resource"`
	StationID  string    `json:"station_id"`
	Token      string    `json:"token"`
	AcquiredAt time.Time `json:"acquired_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	Remaining  float64   `json:"remaining,omitempty"`
}

func (l Lock) Expired(now time.Time) bool {
	return now.After(l.ExpiresAt)
}

// TransactionRecord lives in the recent-transaction window used for
// duplicate-id detection. It is not the ledger of record.
type TransactionRecord struct {
	ID        string            `json:"transaction_id"`
	Card      string            `json:"card"`
	Operation OperationType     `json:"operation"`
	Amount    float64           `json:"amount"`
	StationID string            `json:"station_id"`
	Timestamp time.Time         `json:"timestamp"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

type OperationPhase string

const (
	PhaseStart    OperationPhase = "start"
	PhaseComplete OperationPhase = "complete"
	PhaseError    OperationPhase = "error"
)

func (p OperationPhase) IsValid() bool {
	switch p {
	case PhaseStart, PhaseComplete, PhaseError:
		return true
	default:
		return false
	}
}

// OperationLogEntry is append-only audit data; never consulted for
// control decisions.
type OperationLogEntry struct {
	TransactionID string         `json:"transaction_id"`
	Phase         OperationPhase `json:"phase"`
	Card          string         `json:"card"`
	Operation     OperationType  `json:"operation"`
	Amount        float64        `json:"amount"`
	StationID     string         `json:"station_id"`
	Timestamp     time.Time      `json:"timestamp"`
	Result        any            `json:"result,omitempty"`
	Error         string         `json:"error,omitempty"`
}
