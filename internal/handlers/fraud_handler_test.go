package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/campus-card-core/config"
	"github.com/jeffleon2/campus-card-core/internal/coordinator"
	"github.com/jeffleon2/campus-card-core/internal/fraud"
	"github.com/jeffleon2/campus-card-core/internal/idgen"
	"github.com/jeffleon2/campus-card-core/internal/locks"
	"github.com/jeffleon2/campus-card-core/internal/models"
	"github.com/jeffleon2/campus-card-core/internal/models/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type adminFixture struct {
	router *gin.Engine
	engine *fraud.Engine
	coord  *coordinator.Coordinator
}

// newAdminFixture backs the handler with the real engine and
// coordinator; the admin surface is read-mostly and mocking it would
// just restate the engine. The unusual-time window is disabled so
// results do not depend on the wall clock.
func newAdminFixture() *adminFixture {
	gin.SetMode(gin.TestMode)

	engine := fraud.NewEngine(config.Fraud{
		VelocityLimit:            5,
		VelocityWindow:           5 * time.Minute,
		UnusualAmountAbsolute:    200,
		UnusualAmountMultiplier:  3,
		UnusualTimeStartHour:     24,
		UnusualTimeEndHour:       0,
		RapidSpendingPercent:     50,
		RapidSpendingWindow:      time.Hour,
		DormantDays:              30,
		LocationMismatchWindow:   5 * time.Minute,
		AutoSuspendVelocity:      10,
		AutoSuspendRapidSpending: 80,
		MaxAlerts:                1000,
		HistoryWindow:            24 * time.Hour,
	}, time.UTC)

	coord := coordinator.New("MAIN", idgen.New("MAIN", time.UTC), locks.NewManager())

	h := NewAdminHandler(engine, coord)
	router := gin.New()
	router.GET("/alerts", h.GetAlerts)
	router.POST("/alerts/:id/resolve", h.ResolveAlert)
	router.GET("/cards/suspended", h.GetSuspendedCards)
	router.GET("/transactions/recent", h.GetRecentTransactions)
	router.GET("/operations/log", h.GetOperationLog)
	router.GET("/stats", h.GetStats)

	return &adminFixture{router: router, engine: engine, coord: coord}
}

func (f *adminFixture) get(t *testing.T, path string) (int, map[string]json.RawMessage) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	body := make(map[string]json.RawMessage)
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w.Code, body
}

func TestGetAlerts(t *testing.T) {
	f := newAdminFixture()
	f.engine.Analyze("MC001", 250.0, models.OperationSpend, "WEST", 10000.0)

	code, body := f.get(t, "/alerts")
	assert.Equal(t, http.StatusOK, code)

	var alerts []models.FraudAlert
	require.NoError(t, json.Unmarshal(body["alerts"], &alerts))
	require.Len(t, alerts, 1)
	assert.Equal(t, models.FraudUnusualAmount, alerts[0].FraudType)
}

func TestGetAlerts_FilterByRisk(t *testing.T) {
	f := newAdminFixture()
	f.engine.Analyze("MC001", 250.0, models.OperationSpend, "WEST", 10000.0)

	code, body := f.get(t, "/alerts?risk_level=high")
	assert.Equal(t, http.StatusOK, code)

	var alerts []models.FraudAlert
	require.NoError(t, json.Unmarshal(body["alerts"], &alerts))
	assert.Empty(t, alerts)
}

func TestGetAlerts_InvalidRisk(t *testing.T) {
	f := newAdminFixture()

	code, _ := f.get(t, "/alerts?risk_level=severe")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestResolveAlert(t *testing.T) {
	f := newAdminFixture()
	alerts := f.engine.Analyze("MC001", 250.0, models.OperationSpend, "WEST", 10000.0)
	require.Len(t, alerts, 1)

	raw, _ := json.Marshal(dto.ResolveAlertRequest{Notes: "student confirmed"})
	req := httptest.NewRequest(http.MethodPost, "/alerts/"+alerts[0].ID+"/resolve", bytes.NewReader(raw))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	stored := f.engine.Alerts(models.AlertFilter{Card: "MC001"})
	require.Len(t, stored, 1)
	assert.True(t, stored[0].Resolved)
}

func TestResolveAlert_NotFound(t *testing.T) {
	f := newAdminFixture()

	raw, _ := json.Marshal(dto.ResolveAlertRequest{Notes: "n/a"})
	req := httptest.NewRequest(http.MethodPost, "/alerts/ALERT-missing/resolve", bytes.NewReader(raw))
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSuspendedCards(t *testing.T) {
	f := newAdminFixture()
	f.engine.SuspendCard("MC001", "reported stolen")

	code, body := f.get(t, "/cards/suspended")
	assert.Equal(t, http.StatusOK, code)

	var records []models.SuspensionRecord
	require.NoError(t, json.Unmarshal(body["suspended_cards"], &records))
	require.Len(t, records, 1)
	assert.Equal(t, "MC001", records[0].Card)
}

func TestGetRecentTransactions(t *testing.T) {
	f := newAdminFixture()
	_, _, err := f.coord.PerformTransaction(context.Background(), "MC001", models.OperationSpend, 25.0,
		func() (any, error) { return nil, nil }, nil)
	require.NoError(t, err)

	code, body := f.get(t, "/transactions/recent?limit=10")
	assert.Equal(t, http.StatusOK, code)

	var records []models.TransactionRecord
	require.NoError(t, json.Unmarshal(body["transactions"], &records))
	require.Len(t, records, 1)
	assert.Equal(t, "MC001", records[0].Card)
}

func TestGetOperationLog(t *testing.T) {
	f := newAdminFixture()
	f.coord.PerformTransaction(context.Background(), "MC001", models.OperationSpend, 25.0,
		func() (any, error) { return nil, nil }, nil)

	code, body := f.get(t, "/operations/log?phase=complete")
	assert.Equal(t, http.StatusOK, code)

	var entries []models.OperationLogEntry
	require.NoError(t, json.Unmarshal(body["entries"], &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, models.PhaseComplete, entries[0].Phase)
}

func TestGetOperationLog_InvalidPhase(t *testing.T) {
	f := newAdminFixture()

	code, _ := f.get(t, "/operations/log?phase=started")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestGetStats(t *testing.T) {
	f := newAdminFixture()
	f.engine.Analyze("MC001", 250.0, models.OperationSpend, "WEST", 10000.0)

	code, body := f.get(t, "/stats")
	assert.Equal(t, http.StatusOK, code)

	var fraudStats fraud.Stats
	require.NoError(t, json.Unmarshal(body["fraud"], &fraudStats))
	assert.Equal(t, 1, fraudStats.TotalAlerts)

	var syncStats coordinator.Stats
	require.NoError(t, json.Unmarshal(body["sync"], &syncStats))
	assert.Equal(t, "MAIN", syncStats.StationID)
}