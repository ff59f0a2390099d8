package models

import (
	"errors"
	"fmt"
)

// Contention and duplicate outcomes are expected under concurrency, so
// they are sentinels the caller branches on rather than panics or
// wrapped stack traces.
var (
	ErrLockBusy             = errors.New("resource lock busy")
	ErrLockTimeout          = errors.New("resource lock wait timed out")
	ErrDuplicateTransaction = errors.New("duplicate transaction id")
	ErrInvalidLockToken     = errors.New("invalid lock token")
	ErrCardSuspended        = errors.New("card is suspended")
	ErrCardNotFound         = errors.New("card not found")
	ErrInsufficientBalance  = errors.New("insufficient balance")
)

// ExecutorError wraps whatever the caller's executor callback returned.
// The coordinator logs it with full context and re-raises it untouched;
// Unwrap lets the caller's own policy apply via errors.Is/As.
type ExecutorError struct {
	TransactionID string
	Card          string
	Operation     OperationType
	Err           error
}

func (e *ExecutorError) Error() string {
	return fmt.Sprintf("transaction %s failed: %v", e.TransactionID, e.Err)
}

func (e *ExecutorError) Unwrap() error {
	return e.Err
}
