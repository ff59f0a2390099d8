package models

import "time"

const (
	TopicTransactionRequested = "stations.transactions.requested"
	TopicTransactionCompleted = "cards.transactions.completed"
	TopicFraudAlertRaised     = "fraud.alerts.raised"
	TopicCardSuspended        = "cards.suspended"
	TopicCardsDLQ             = "cards.dlq"
)

// TransactionRequestedEvent is how a station submits a transaction over
// Kafka instead of HTTP; both paths feed the same service.
type TransactionRequestedEvent struct {
	CardUID   string  `json:"card_uid"`
	Operation string  `json:"operation"`
	Amount    float64 `json:"amount"`
	StationID string  `json:"station_id"`
	TraceID   string  `json:"trace_id"`
}

type TransactionCompletedEvent struct {
	TransactionID string    `json:"transaction_id"`
	CardUID       string    `json:"card_uid"`
	Operation     string    `json:"operation"`
	Amount        float64   `json:"amount"`
	Balance       float64   `json:"balance"`
	StationID     string    `json:"station_id"`
	AlertCount    int       `json:"alert_count"`
	CompletedAt   time.Time `json:"completed_at"`
}

type FraudAlertRaisedEvent struct {
	AlertID         string    `json:"alert_id"`
	Card            string    `json:"card"`
	FraudType       string    `json:"fraud_type"`
	RiskLevel       string    `json:"risk_level"`
	Description     string    `json:"description"`
	AutoActionTaken string    `json:"auto_action_taken,omitempty"`
	RaisedAt        time.Time `json:"raised_at"`
}

type CardSuspendedEvent struct {
	Card          string    `json:"card"`
	Reason        string    `json:"reason"`
	AutoSuspended bool      `json:"auto_suspended"`
	SuspendedAt   time.Time `json:"suspended_at"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
