package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/campus-card-core/internal/coordinator"
	"github.com/jeffleon2/campus-card-core/internal/fraud"
	"github.com/jeffleon2/campus-card-core/internal/metrics"
	"github.com/jeffleon2/campus-card-core/internal/models"
	"github.com/jeffleon2/campus-card-core/internal/models/dto"
	"github.com/sirupsen/logrus"
)

// CardRepo defines the ledger operations the service needs. The
// sync/fraud core never sees this; balance mutations reach it only
// through executor callbacks built here.
type CardRepo interface {
	Create(ctx context.Context, card *models.Card) error
	GetBy(ctx context.Context, key string, value interface{}) (*models.Card, error)
	Mutate(ctx context.Context, id string, fn func(card *models.Card) error) (*models.Card, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// TransactionService runs one station request end to end: suspension
// gate, synchronized ledger mutation via the coordinator, fraud
// analysis under the same card lock window, then event publication.
type TransactionService struct {
	Coordinator *coordinator.Coordinator
	Fraud       *fraud.Engine
	CardRepo    CardRepo
	Publisher   Publisher
}

func NewTransactionService(c *coordinator.Coordinator, f *fraud.Engine, repo CardRepo, p Publisher) *TransactionService {
	return &TransactionService{
		Coordinator: c,
		Fraud:       f,
		CardRepo:    repo,
		Publisher:   p,
	}
}

// ProcessTransaction validates the request, executes the ledger
// mutation under the card lock, and analyzes the spend for fraud.
//
// A suspended card is rejected before any money moves; the attempt is
// still fed to the fraud engine so the CRITICAL alert is recorded.
// Lock contention and duplicate ids surface as the coordinator's
// sentinel errors; the caller decides whether to retry.
func (s *TransactionService) ProcessTransaction(ctx context.Context, req *dto.TransactionRequest) (*dto.TransactionResponse, error) {
	req.Sanitize()

	operation := req.OperationType()
	if !operation.IsValid() {
		return nil, fmt.Errorf("invalid operation: %s", req.Operation)
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be greater than zero")
	}

	card, err := s.CardRepo.GetBy(ctx, "card_uid", req.CardUID)
	if err != nil {
		return nil, err
	}

	if operation == models.OperationSpend && s.Fraud.IsCardSuspended(card.CardUID) {
		alerts := s.Fraud.Analyze(card.CardUID, req.Amount, operation, req.StationID, card.Balance)
		s.publishAlerts(ctx, alerts)
		metrics.TransactionsTotal.WithLabelValues(string(operation), "suspended").Inc()
		return &dto.TransactionResponse{CardUID: card.CardUID, Alerts: alerts}, models.ErrCardSuspended
	}

	balanceBefore := card.Balance

	executor := func() (any, error) {
		return s.CardRepo.Mutate(ctx, card.ID, func(c *models.Card) error {
			if !c.Active {
				return fmt.Errorf("card %s is inactive", c.CardUID)
			}
			switch operation {
			case models.OperationSpend:
				if c.Balance < req.Amount {
					return models.ErrInsufficientBalance
				}
				c.Balance -= req.Amount
			case models.OperationLoad:
				c.Balance += req.Amount
			}
			return nil
		})
	}

	lockStart := time.Now()
	transactionID, result, err := s.Coordinator.PerformTransaction(ctx, card.CardUID, operation, req.Amount, executor, req.Metadata)
	metrics.LockWaitSeconds.Observe(time.Since(lockStart).Seconds())
	if err != nil {
		metrics.TransactionsTotal.WithLabelValues(string(operation), outcomeLabel(err)).Inc()
		return nil, err
	}

	updated := result.(*models.Card)

	// Analysis runs while the spend is still fresh so balance and
	// history observations stay causally consistent.
	alerts := s.Fraud.Analyze(card.CardUID, req.Amount, operation, req.StationID, balanceBefore)
	s.publishAlerts(ctx, alerts)
	s.publishSuspension(ctx, card.CardUID, alerts)

	metrics.TransactionsTotal.WithLabelValues(string(operation), "success").Inc()
	metrics.TransactionAmounts.WithLabelValues(string(operation)).Observe(req.Amount)

	event := models.TransactionCompletedEvent{
		TransactionID: transactionID,
		CardUID:       card.CardUID,
		Operation:     string(operation),
		Amount:        req.Amount,
		Balance:       updated.Balance,
		StationID:     req.StationID,
		AlertCount:    len(alerts),
		CompletedAt:   time.Now(),
	}
	if err := s.Publisher.Publish(ctx, models.TopicTransactionCompleted, event); err != nil {
		logrus.Errorf("Error publishing transaction completed event: %s", err.Error())
	}

	return &dto.TransactionResponse{
		TransactionID: transactionID,
		CardUID:       card.CardUID,
		Operation:     string(operation),
		Amount:        req.Amount,
		Balance:       updated.Balance,
		Alerts:        alerts,
	}, nil
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, models.ErrLockBusy):
		return "lock_busy"
	case errors.Is(err, models.ErrLockTimeout):
		return "lock_timeout"
	case errors.Is(err, models.ErrDuplicateTransaction):
		return "duplicate"
	case errors.Is(err, models.ErrInsufficientBalance):
		return "insufficient_balance"
	default:
		return "error"
	}
}

func (s *TransactionService) publishAlerts(ctx context.Context, alerts []*models.FraudAlert) {
	for _, alert := range alerts {
		metrics.FraudAlertsTotal.WithLabelValues(string(alert.FraudType), string(alert.RiskLevel)).Inc()

		event := models.FraudAlertRaisedEvent{
			AlertID:         alert.ID,
			Card:            alert.Card,
			FraudType:       string(alert.FraudType),
			RiskLevel:       string(alert.RiskLevel),
			Description:     alert.Description,
			AutoActionTaken: alert.AutoActionTaken,
			RaisedAt:        alert.CreatedAt,
		}
		if err := s.Publisher.Publish(ctx, models.TopicFraudAlertRaised, event); err != nil {
			logrus.Errorf("Error publishing fraud alert event: %s", err.Error())
		}
	}
}

// publishSuspension emits a suspension event when this call's alerts
// auto-suspended the card.
func (s *TransactionService) publishSuspension(ctx context.Context, cardUID string, alerts []*models.FraudAlert) {
	suspended := false
	for _, alert := range alerts {
		if alert.AutoActionTaken != "" {
			suspended = true
			break
		}
	}
	if !suspended {
		return
	}

	metrics.SuspendedCards.Inc()

	event := models.CardSuspendedEvent{
		Card:          cardUID,
		Reason:        "Multiple high-risk alerts",
		AutoSuspended: true,
		SuspendedAt:   time.Now(),
	}
	if err := s.Publisher.Publish(ctx, models.TopicCardSuspended, event); err != nil {
		logrus.Errorf("Error publishing card suspended event: %s", err.Error())
	}
}

// CreateCard registers a new prepaid card in the ledger.
func (s *TransactionService) CreateCard(ctx context.Context, card *models.Card) error {
	if err := card.Validate(); err != nil {
		return err
	}
	return s.CardRepo.Create(ctx, card)
}

// GetCard looks a card up by its UID.
func (s *TransactionService) GetCard(ctx context.Context, cardUID string) (*models.Card, error) {
	return s.CardRepo.GetBy(ctx, "card_uid", cardUID)
}

// UnsuspendCard removes a suspension by staff action.
func (s *TransactionService) UnsuspendCard(ctx context.Context, cardUID string) bool {
	if !s.Fraud.UnsuspendCard(cardUID) {
		return false
	}
	metrics.SuspendedCards.Dec()
	return true
}
