package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/campus-card-core/internal/models"
	"github.com/jeffleon2/campus-card-core/internal/models/dto"
	"github.com/sirupsen/logrus"
)

type TransactionServiceIn interface {
	ProcessTransaction(ctx context.Context, req *dto.TransactionRequest) (*dto.TransactionResponse, error)
	CreateCard(ctx context.Context, card *models.Card) error
	GetCard(ctx context.Context, cardUID string) (*models.Card, error)
	UnsuspendCard(ctx context.Context, cardUID string) bool
}

type TransactionHandler struct {
	Service TransactionServiceIn
}

func NewTransactionHandler(s TransactionServiceIn) *TransactionHandler {
	return &TransactionHandler{Service: s}
}

// POST /transactions
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.Service.ProcessTransaction(c.Request.Context(), &req)
	if err != nil {
		h.writeTransactionError(c, resp, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// writeTransactionError keeps contention, duplicate and suspension
// outcomes distinguishable from an executed-but-failed transaction,
// since only the latter may have touched the ledger.
func (h *TransactionHandler) writeTransactionError(c *gin.Context, resp *dto.TransactionResponse, err error) {
	var execErr *models.ExecutorError

	switch {
	case errors.Is(err, models.ErrCardSuspended):
		body := gin.H{"error": err.Error()}
		if resp != nil {
			body["alerts"] = resp.Alerts
		}
		c.JSON(http.StatusForbidden, body)
	case errors.Is(err, models.ErrLockBusy), errors.Is(err, models.ErrLockTimeout):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "retryable": true})
	case errors.Is(err, models.ErrDuplicateTransaction):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "retryable": false})
	case errors.Is(err, models.ErrCardNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInsufficientBalance):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": models.ErrInsufficientBalance.Error()})
	case errors.As(err, &execErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "transaction_id": execErr.TransactionID})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// POST /cards
func (h *TransactionHandler) CreateCard(c *gin.Context) {
	var card models.Card
	if err := c.ShouldBindJSON(&card); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.Service.CreateCard(c.Request.Context(), &card); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, card)
}

// GET /cards/:uid
func (h *TransactionHandler) GetCard(c *gin.Context) {
	card, err := h.Service.GetCard(c.Request.Context(), c.Param("uid"))
	if err != nil {
		if errors.Is(err, models.ErrCardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, card)
}

// POST /cards/:uid/unsuspend
func (h *TransactionHandler) UnsuspendCard(c *gin.Context) {
	if !h.Service.UnsuspendCard(c.Request.Context(), c.Param("uid")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "card is not suspended"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"card_uid": c.Param("uid"), "suspended": false})
}

// HandleEvents processes station transaction requests arriving over
// Kafka. Both this path and POST /transactions feed the same service.
func (h *TransactionHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case models.TopicTransactionRequested:
		var event models.TransactionRequestedEvent
		if err := json.Unmarshal(value, &event); err != nil {
			logrus.Errorf("Error parsing transaction requested event %s", err.Error())
			return fmt.Errorf("error parsing transaction requested event %w", err)
		}

		req := &dto.TransactionRequest{
			CardUID:   event.CardUID,
			Operation: event.Operation,
			Amount:    event.Amount,
			StationID: event.StationID,
			Metadata:  map[string]string{"trace_id": event.TraceID},
		}

		if _, err := h.Service.ProcessTransaction(ctx, req); err != nil {
			logrus.Errorf("Error processing station transaction: %s", err.Error())
			return err
		}

		logrus.Info("TransactionRequestedEvent handled successfully")
		return nil
	default:
		return fmt.Errorf("no handler for topic %s", topic)
	}
}
