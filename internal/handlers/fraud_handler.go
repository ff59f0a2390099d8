package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/campus-card-core/internal/coordinator"
	"github.com/jeffleon2/campus-card-core/internal/fraud"
	"github.com/jeffleon2/campus-card-core/internal/models"
	"github.com/jeffleon2/campus-card-core/internal/models/dto"
)

type FraudEngineIn interface {
	Alerts(filter models.AlertFilter) []models.FraudAlert
	ResolveAlert(alertID, notes string) bool
	SuspendedCards() []models.SuspensionRecord
	Stats() fraud.Stats
}

type SyncStatsIn interface {
	RecentTransactions(limit int) []models.TransactionRecord
	OperationLog(limit int, phase models.OperationPhase) []models.OperationLogEntry
	Stats() coordinator.Stats
}

// AdminHandler exposes the read/resolve surface consumed by the staff
// dashboard: alerts, suspensions, audit log and statistics.
type AdminHandler struct {
	Fraud FraudEngineIn
	Sync  SyncStatsIn
}

func NewAdminHandler(f FraudEngineIn, s SyncStatsIn) *AdminHandler {
	return &AdminHandler{Fraud: f, Sync: s}
}

// GET /alerts
func (h *AdminHandler) GetAlerts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	filter := models.AlertFilter{
		Card:           c.Query("card"),
		RiskLevel:      models.RiskLevel(c.Query("risk_level")),
		UnresolvedOnly: c.Query("unresolved") == "true",
		Limit:          limit,
	}
	if filter.RiskLevel != "" && !filter.RiskLevel.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid risk level"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": h.Fraud.Alerts(filter)})
}

// POST /alerts/:id/resolve
func (h *AdminHandler) ResolveAlert(c *gin.Context) {
	var req dto.ResolveAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if !h.Fraud.ResolveAlert(c.Param("id"), req.Notes) {
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alert_id": c.Param("id"), "resolved": true})
}

// GET /cards/suspended
func (h *AdminHandler) GetSuspendedCards(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"suspended_cards": h.Fraud.SuspendedCards()})
}

// GET /transactions/recent
func (h *AdminHandler) GetRecentTransactions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	c.JSON(http.StatusOK, gin.H{"transactions": h.Sync.RecentTransactions(limit)})
}

// GET /operations/log
func (h *AdminHandler) GetOperationLog(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	phase := models.OperationPhase(c.Query("phase"))
	if phase != "" && !phase.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid phase"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": h.Sync.OperationLog(limit, phase)})
}

// GET /stats
func (h *AdminHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fraud": h.Fraud.Stats(),
		"sync":  h.Sync.Stats(),
	})
}
