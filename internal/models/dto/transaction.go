package dto

import (
	"strings"

	"github.com/jeffleon2/campus-card-core/internal/models"
)

type TransactionRequest struct {
	CardUID   string            `json:"card_uid"`
	Operation string            `json:"operation"`
	Amount    float64           `json:"amount"`
	StationID string            `json:"station_id"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

func (t *TransactionRequest) Sanitize() {
	t.CardUID = strings.TrimSpace(t.CardUID)
	t.Operation = strings.TrimSpace(t.Operation)
	t.StationID = strings.TrimSpace(t.StationID)

	t.Operation = strings.ToUpper(t.Operation)
	t.StationID = strings.ToUpper(t.StationID)
}

func (t *TransactionRequest) OperationType() models.OperationType {
	return models.OperationType(t.Operation)
}

type ResolveAlertRequest struct {
	Notes string `json:"notes"`
}

type TransactionResponse struct {
	TransactionID string               `json:"transaction_id"`
	CardUID       string               `json:"card_uid"`
	Operation     string               `json:"operation"`
	Amount        float64              `json:"amount"`
	Balance       float64              `json:"balance"`
	Alerts        []*models.FraudAlert `json:"alerts,omitempty"`
}
