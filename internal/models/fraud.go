package models

import "time"

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	default:
		return false
	}
}

type FraudType string

const (
	FraudVelocity          FraudType = "velocity"
	FraudUnusualAmount     FraudType = "unusual_amount"
	FraudUnusualTime       FraudType = "unusual_time"
	FraudLocationMismatch  FraudType = "location_mismatch"
	FraudRapidSpending     FraudType = "rapid_spending"
	FraudCardCloning       FraudType = "card_cloning"
	FraudDormantActivation FraudType = "dormant_activation"
)

func (f FraudType) IsValid() bool {
	switch f {
	case FraudVelocity, FraudUnusualAmount, FraudUnusualTime,
		FraudLocationMismatch, FraudRapidSpending, FraudCardCloning,
		FraudDormantActivation:
		return true
	default:
		return false
	}
}

// FraudAlert is raised by the engine when a rule triggers. Mutated only
// by resolution; trimmed from the log oldest-first when the cap is hit.
type FraudAlert struct {
	ID              string         `json:"id"`
	Card            string         `json:"card"`
	FraudType       FraudType      `json:"fraud_type"`
	RiskLevel       RiskLevel      `json:"risk_level"`
	Description     string         `json:"description"`
	Details         map[string]any `json:"details,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	Resolved        bool           `json:"resolved"`
	ResolvedAt      *time.Time     `json:"resolved_at,omitempty"`
	ResolutionNotes string         `json:"resolution_notes,omitempty"`
	AutoActionTaken string         `json:"auto_action_taken,omitempty"`
}

// SuspensionRecord blocks every spend attempt on a card until an
// explicit unsuspend removes it. The engine never auto-clears one.
type SuspensionRecord struct {
	Card          string    `json:"card"`
	Reason        string    `json:"reason"`
	SuspendedAt   time.Time `json:"suspended_at"`
	AutoSuspended bool      `json:"auto_suspended"`
}

// CardHistoryEvent is one observation in a card's 24h rolling window.
type CardHistoryEvent struct {
	Timestamp    time.Time     `json:"timestamp"`
	Amount       float64       `json:"amount"`
	Operation    OperationType `json:"operation"`
	StationID    string        `json:"station_id"`
	BalanceAfter float64       `json:"balance_after"`
}

// AlertFilter narrows Alerts queries; zero values mean no filtering.
type AlertFilter struct {
	Card           string
	RiskLevel      RiskLevel
	UnresolvedOnly bool
	Limit          int
}
