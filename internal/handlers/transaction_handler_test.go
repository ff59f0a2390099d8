package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/campus-card-core/internal/handlers/mocks"
	"github.com/jeffleon2/campus-card-core/internal/models"
	"github.com/jeffleon2/campus-card-core/internal/models/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTransactionRouter(svc TransactionServiceIn) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTransactionHandler(svc)

	router := gin.New()
	router.POST("/transactions", h.CreateTransaction)
	router.POST("/cards", h.CreateCard)
	router.GET("/cards/:uid", h.GetCard)
	router.POST("/cards/:uid/unsuspend", h.UnsuspendCard)
	return router
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateTransaction_Success(t *testing.T) {
	svc := mocks.NewMockTransactionServiceIn(t)
	svc.EXPECT().ProcessTransaction(mock.Anything, mock.Anything).Return(&dto.TransactionResponse{
		TransactionID: "20260310-120000-MAIN-00A1",
		CardUID:       "MC001",
		Operation:     "SPEND",
		Amount:        25.0,
		Balance:       75.0,
	}, nil)

	w := postJSON(newTransactionRouter(svc), "/transactions", dto.TransactionRequest{
		CardUID: "MC001", Operation: "SPEND", Amount: 25.0, StationID: "WEST",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "20260310-120000-MAIN-00A1", resp.TransactionID)
	assert.Equal(t, 75.0, resp.Balance)
}

func TestCreateTransaction_InvalidBody(t *testing.T) {
	svc := mocks.NewMockTransactionServiceIn(t)
	router := newTransactionRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader([]byte("{not json")))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTransaction_SuspendedCard(t *testing.T) {
	svc := mocks.NewMockTransactionServiceIn(t)
	svc.EXPECT().ProcessTransaction(mock.Anything, mock.Anything).Return(&dto.TransactionResponse{
		CardUID: "MC001",
		Alerts: []*models.FraudAlert{{
			ID:        "ALERT-1",
			Card:      "MC001",
			FraudType: models.FraudCardCloning,
			RiskLevel: models.RiskCritical,
		}},
	}, models.ErrCardSuspended)

	w := postJSON(newTransactionRouter(svc), "/transactions", dto.TransactionRequest{
		CardUID: "MC001", Operation: "SPEND", Amount: 25.0, StationID: "WEST",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body["alerts"], 1)
}

func TestCreateTransaction_Contention(t *testing.T) {
	cases := []struct {
		name      string
		err       error
		status    int
		retryable any
	}{
		{"lock busy", models.ErrLockBusy, http.StatusConflict, true},
		{"lock timeout", models.ErrLockTimeout, http.StatusConflict, true},
		{"duplicate", models.ErrDuplicateTransaction, http.StatusConflict, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockTransactionServiceIn(t)
			svc.EXPECT().ProcessTransaction(mock.Anything, mock.Anything).Return(nil, tc.err)

			w := postJSON(newTransactionRouter(svc), "/transactions", dto.TransactionRequest{
				CardUID: "MC001", Operation: "SPEND", Amount: 25.0, StationID: "WEST",
			})

			assert.Equal(t, tc.status, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.retryable, body["retryable"])
		})
	}
}

func TestCreateTransaction_CardNotFound(t *testing.T) {
	svc := mocks.NewMockTransactionServiceIn(t)
	svc.EXPECT().ProcessTransaction(mock.Anything, mock.Anything).Return(nil, models.ErrCardNotFound)

	w := postJSON(newTransactionRouter(svc), "/transactions", dto.TransactionRequest{
		CardUID: "MC404", Operation: "SPEND", Amount: 25.0, StationID: "WEST",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateTransaction_InsufficientBalance(t *testing.T) {
	svc := mocks.NewMockTransactionServiceIn(t)
	svc.EXPECT().ProcessTransaction(mock.Anything, mock.Anything).Return(nil, &models.ExecutorError{
		TransactionID: "20260310-120000-MAIN-00A1",
		Card:          "MC001",
		Operation:     models.OperationSpend,
		Err:           models.ErrInsufficientBalance,
	})

	w := postJSON(newTransactionRouter(svc), "/transactions", dto.TransactionRequest{
		CardUID: "MC001", Operation: "SPEND", Amount: 250.0, StationID: "WEST",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateTransaction_ExecutorFailure(t *testing.T) {
	svc := mocks.NewMockTransactionServiceIn(t)
	svc.EXPECT().ProcessTransaction(mock.Anything, mock.Anything).Return(nil, &models.ExecutorError{
		TransactionID: "20260310-120000-MAIN-00A1",
		Card:          "MC001",
		Operation:     models.OperationSpend,
		Err:           errors.New("ledger write failed"),
	})

	w := postJSON(newTransactionRouter(svc), "/transactions", dto.TransactionRequest{
		CardUID: "MC001", Operation: "SPEND", Amount: 25.0, StationID: "WEST",
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "20260310-120000-MAIN-00A1", body["transaction_id"])
}

func TestCreateCard(t *testing.T) {
	svc := mocks.NewMockTransactionServiceIn(t)
	svc.EXPECT().CreateCard(mock.Anything, mock.Anything).Return(nil)

	w := postJSON(newTransactionRouter(svc), "/cards", models.Card{CardUID: "MC010", Balance: 0})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateCard_ServiceRejects(t *testing.T) {
	svc := mocks.NewMockTransactionServiceIn(t)
	svc.EXPECT().CreateCard(mock.Anything, mock.Anything).Return(errors.New("card UID is required"))

	w := postJSON(newTransactionRouter(svc), "/cards", models.Card{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCard(t *testing.T) {
	svc := mocks.NewMockTransactionServiceIn(t)
	svc.EXPECT().GetCard(mock.Anything, "MC001").Return(&models.Card{CardUID: "MC001", Balance: 75.0}, nil)

	req := httptest.NewRequest(http.MethodGet, "/cards/MC001", nil)
	w := httptest.NewRecorder()
	newTransactionRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var card models.Card
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))
	assert.Equal(t, 75.0, card.Balance)
}

func TestGetCard_NotFound(t *testing.T) {
	svc := mocks.NewMockTransactionServiceIn(t)
	svc.EXPECT().GetCard(mock.Anything, "MC404").Return(nil, models.ErrCardNotFound)

	req := httptest.NewRequest(http.MethodGet, "/cards/MC404", nil)
	w := httptest.NewRecorder()
	newTransactionRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnsuspendCard(t *testing.T) {
	svc := mocks.NewMockTransactionServiceIn(t)
	svc.EXPECT().UnsuspendCard(mock.Anything, "MC001").Return(true)

	w := postJSON(newTransactionRouter(svc), "/cards/MC001/unsuspend", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnsuspendCard_NotSuspended(t *testing.T) {
	svc := mocks.NewMockTransactionServiceIn(t)
	svc.EXPECT().UnsuspendCard(mock.Anything, "MC001").Return(false)

	w := postJSON(newTransactionRouter(svc), "/cards/MC001/unsuspend", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleEvents_TransactionRequested(t *testing.T) {
	svc := mocks.NewMockTransactionServiceIn(t)
	svc.EXPECT().ProcessTransaction(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, req *dto.TransactionRequest) {
			assert.Equal(t, "MC001", req.CardUID)
			assert.Equal(t, "SPEND", req.Operation)
			assert.Equal(t, "trace-42", req.Metadata["trace_id"])
		}).
		Return(&dto.TransactionResponse{}, nil)

	h := NewTransactionHandler(svc)
	event, _ := json.Marshal(models.TransactionRequestedEvent{
		CardUID:   "MC001",
		Operation: "SPEND",
		Amount:    25.0,
		StationID: "WEST",
		TraceID:   "trace-42",
	})

	assert.NoError(t, h.HandleEvents(context.Background(), models.TopicTransactionRequested, event))
}

func TestHandleEvents_BadPayload(t *testing.T) {
	svc := mocks.NewMockTransactionServiceIn(t)
	h := NewTransactionHandler(svc)

	err := h.HandleEvents(context.Background(), models.TopicTransactionRequested, []byte("{not json"))
	assert.Error(t, err)
}

func TestHandleEvents_UnknownTopic(t *testing.T) {
	svc := mocks.NewMockTransactionServiceIn(t)
	h := NewTransactionHandler(svc)

	err := h.HandleEvents(context.Background(), "some.other.topic", []byte("{}"))
	assert.ErrorContains(t, err, "no handler for topic")
}