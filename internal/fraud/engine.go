// Package fraud inspects every spend against a card's rolling 24h
// history and escalates to automatic suspension when multiple
// high-risk rules trigger in a single analysis.
//
// Detection rules:
//  1. Velocity: more than N transactions inside the velocity window
//  2. Unusual amount: above an absolute ceiling, or a multiple of the
//     card's trailing average
//  3. Unusual time: transactions inside the configured night window
//  4. Rapid spending: a large share of the balance gone within an hour
//  5. Dormant reactivation: first transaction after long inactivity
//  6. Location mismatch: different stations within a short window
package fraud

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jeffleon2/campus-card-core/config"
	"github.com/jeffleon2/campus-card-core/internal/models"
	"github.com/sirupsen/logrus"
)

type Engine struct {
	cfg      config.Fraud
	location *time.Location

	mu       sync.Mutex
	history  map[string][]models.CardHistoryEvent
	lastSeen map[string]time.Time
	averages map[string]float64

	alerts    []*models.FraudAlert
	suspended map[string]models.SuspensionRecord

	now func() time.Time
}

func NewEngine(cfg config.Fraud, location *time.Location) *Engine {
	return &Engine{
		cfg:       cfg,
		location:  location,
		history:   make(map[string][]models.CardHistoryEvent),
		lastSeen:  make(map[string]time.Time),
		averages:  make(map[string]float64),
		suspended: make(map[string]models.SuspensionRecord),
		now:       time.Now,
	}
}

// Analyze evaluates one transaction attempt and returns the alerts it
// raised. Spends run the full rule set; loads only update bookkeeping.
//
// A suspended card short-circuits to a single CRITICAL alert, and a
// call that raises two or more HIGH/CRITICAL alerts suspends the card
// before returning.
func (e *Engine) Analyze(card string, amount float64, operation models.OperationType, stationID string, currentBalance float64) []*models.FraudAlert {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now().In(e.location)
	var alerts []*models.FraudAlert

	if record, ok := e.suspended[card]; ok {
		alert := e.newAlert(card, models.FraudCardCloning, models.RiskCritical,
			"Transaction attempted on suspended card",
			map[string]any{"reason": record.Reason})
		alerts = append(alerts, alert)
		e.addAlert(alert)
		return alerts
	}

	balanceAfter := currentBalance + amount
	if operation == models.OperationSpend {
		balanceAfter = currentBalance - amount
	}
	e.history[card] = append(e.history[card], models.CardHistoryEvent{
		Timestamp:    now,
		Amount:       amount,
		Operation:    operation,
		StationID:    stationID,
		BalanceAfter: balanceAfter,
	})
	e.pruneHistory(card, now)

	if operation == models.OperationSpend {
		alerts = appendAlert(alerts, e.checkVelocity(card, now))
		alerts = appendAlert(alerts, e.checkUnusualAmount(card, amount))
		alerts = appendAlert(alerts, e.checkUnusualTime(card, now))
		alerts = appendAlert(alerts, e.checkRapidSpending(card, currentBalance, now))
		alerts = appendAlert(alerts, e.checkDormantReactivation(card, now))
		alerts = appendAlert(alerts, e.checkLocationMismatch(card, now))
	}

	e.lastSeen[card] = now
	e.updateSpendingAverage(card, operation)
	e.checkAutoSuspend(card, alerts, now)

	return alerts
}

func appendAlert(alerts []*models.FraudAlert, alert *models.FraudAlert) []*models.FraudAlert {
	if alert == nil {
		return alerts
	}
	return append(alerts, alert)
}

func (e *Engine) pruneHistory(card string, now time.Time) {
	cutoff := now.Add(-e.cfg.HistoryWindow)
	kept := e.history[card][:0]
	for _, event := range e.history[card] {
		if event.Timestamp.After(cutoff) {
			kept = append(kept, event)
		}
	}
	e.history[card] = kept
}

func (e *Engine) checkVelocity(card string, now time.Time) *models.FraudAlert {
	windowStart := now.Add(-e.cfg.VelocityWindow)
	count := 0
	for _, event := range e.history[card] {
		if event.Timestamp.After(windowStart) {
			count++
		}
	}

	if count <= e.cfg.VelocityLimit {
		return nil
	}

	risk := models.RiskMedium
	if count > e.cfg.AutoSuspendVelocity {
		risk = models.RiskHigh
	}

	minutes := int(e.cfg.VelocityWindow.Minutes())
	alert := e.newAlert(card, models.FraudVelocity, risk,
		fmt.Sprintf("High transaction velocity: %d transactions in %d minutes", count, minutes),
		map[string]any{
			"transaction_count": count,
			"window_minutes":    minutes,
			"threshold":         e.cfg.VelocityLimit,
		})
	e.addAlert(alert)
	return alert
}

func (e *Engine) checkUnusualAmount(card string, amount float64) *models.FraudAlert {
	if amount > e.cfg.UnusualAmountAbsolute {
		alert := e.newAlert(card, models.FraudUnusualAmount, models.RiskMedium,
			fmt.Sprintf("Large transaction: ₱%.2f exceeds ₱%.2f", amount, e.cfg.UnusualAmountAbsolute),
			map[string]any{
				"amount":    amount,
				"threshold": e.cfg.UnusualAmountAbsolute,
			})
		e.addAlert(alert)
		return alert
	}

	avg := e.averages[card]
	if avg > 0 && amount > avg*e.cfg.UnusualAmountMultiplier {
		alert := e.newAlert(card, models.FraudUnusualAmount, models.RiskLow,
			fmt.Sprintf("Transaction ₱%.2f is %.1fx above average (₱%.2f)", amount, amount/avg, avg),
			map[string]any{
				"amount":     amount,
				"average":    avg,
				"multiplier": amount / avg,
			})
		e.addAlert(alert)
		return alert
	}

	return nil
}

func (e *Engine) checkUnusualTime(card string, now time.Time) *models.FraudAlert {
	hour := now.Hour()
	if hour < e.cfg.UnusualTimeStartHour && hour >= e.cfg.UnusualTimeEndHour {
		return nil
	}

	alert := e.newAlert(card, models.FraudUnusualTime, models.RiskLow,
		fmt.Sprintf("Transaction at unusual hour: %02d:00", hour),
		map[string]any{
			"hour":         hour,
			"normal_start": e.cfg.UnusualTimeEndHour,
			"normal_end":   e.cfg.UnusualTimeStartHour,
		})
	e.addAlert(alert)
	return alert
}

func (e *Engine) checkRapidSpending(card string, currentBalance float64, now time.Time) *models.FraudAlert {
	if currentBalance <= 0 {
		return nil
	}

	windowStart := now.Add(-e.cfg.RapidSpendingWindow)
	var spent float64
	for _, event := range e.history[card] {
		if event.Timestamp.After(windowStart) && event.Operation == models.OperationSpend {
			spent += event.Amount
		}
	}

	total := currentBalance + spent
	if total <= 0 {
		return nil
	}

	percent := spent / total * 100
	if percent < e.cfg.RapidSpendingPercent {
		return nil
	}

	risk := models.RiskMedium
	if percent >= e.cfg.AutoSuspendRapidSpending {
		risk = models.RiskHigh
	}

	alert := e.newAlert(card, models.FraudRapidSpending, risk,
		fmt.Sprintf("Rapid spending: %.0f%% of balance in %v", percent, e.cfg.RapidSpendingWindow),
		map[string]any{
			"spent":          spent,
			"balance_before": total,
			"percent":        percent,
		})
	e.addAlert(alert)
	return alert
}

func (e *Engine) checkDormantReactivation(card string, now time.Time) *models.FraudAlert {
	last, ok := e.lastSeen[card]
	if !ok {
		return nil
	}

	daysInactive := int(now.Sub(last).Hours() / 24)
	if daysInactive < e.cfg.DormantDays {
		return nil
	}

	alert := e.newAlert(card, models.FraudDormantActivation, models.RiskMedium,
		fmt.Sprintf("Card activated after %d days of inactivity", daysInactive),
		map[string]any{
			"days_inactive": daysInactive,
			"last_activity": last,
			"threshold":     e.cfg.DormantDays,
		})
	e.addAlert(alert)
	return alert
}

func (e *Engine) checkLocationMismatch(card string, now time.Time) *models.FraudAlert {
	events := e.history[card]
	if len(events) < 2 {
		return nil
	}

	sorted := make([]models.CardHistoryEvent, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.After(sorted[j].Timestamp)
	})

	current, previous := sorted[0], sorted[1]
	diff := current.Timestamp.Sub(previous.Timestamp)
	if diff >= e.cfg.LocationMismatchWindow || current.StationID == previous.StationID {
		return nil
	}

	alert := e.newAlert(card, models.FraudLocationMismatch, models.RiskHigh,
		fmt.Sprintf("Transaction at different station within %.0f seconds", diff.Seconds()),
		map[string]any{
			"current_station":   current.StationID,
			"previous_station":  previous.StationID,
			"time_diff_seconds": diff.Seconds(),
		})
	e.addAlert(alert)
	return alert
}

// updateSpendingAverage keeps a simple moving average over the card's
// last 20 spends still inside the history window.
func (e *Engine) updateSpendingAverage(card string, operation models.OperationType) {
	if operation != models.OperationSpend {
		return
	}

	var spends []float64
	for _, event := range e.history[card] {
		if event.Operation == models.OperationSpend {
			spends = append(spends, event.Amount)
		}
	}
	if len(spends) > 20 {
		spends = spends[len(spends)-20:]
	}
	if len(spends) == 0 {
		return
	}

	var sum float64
	for _, amount := range spends {
		sum += amount
	}
	e.averages[card] = sum / float64(len(spends))
}

func (e *Engine) newAlert(card string, fraudType models.FraudType, risk models.RiskLevel, description string, details map[string]any) *models.FraudAlert {
	return &models.FraudAlert{
		ID:          "ALERT-" + uuid.New().String(),
		Card:        card,
		FraudType:   fraudType,
		RiskLevel:   risk,
		Description: description,
		Details:     details,
		CreatedAt:   e.now().In(e.location),
	}
}

// addAlert appends to the bounded alert log. Callers must hold e.mu.
func (e *Engine) addAlert(alert *models.FraudAlert) {
	e.alerts = append(e.alerts, alert)
	logrus.Warnf("Fraud alert [%s]: %s", alert.RiskLevel, alert.Description)

	if len(e.alerts) > e.cfg.MaxAlerts {
		e.alerts = e.alerts[len(e.alerts)-e.cfg.MaxAlerts:]
	}
}

// checkAutoSuspend suspends the card when this call raised two or more
// HIGH/CRITICAL alerts. Only the current call's alerts count, never
// cumulative history.
func (e *Engine) checkAutoSuspend(card string, alerts []*models.FraudAlert, now time.Time) {
	highRisk := 0
	for _, alert := range alerts {
		if alert.RiskLevel == models.RiskHigh || alert.RiskLevel == models.RiskCritical {
			highRisk++
		}
	}

	if highRisk < 2 {
		return
	}

	e.suspendLocked(card, "Multiple high-risk alerts", true, now)
	for _, alert := range alerts {
		alert.AutoActionTaken = "Card suspended"
	}
}

func (e *Engine) suspendLocked(card, reason string, auto bool, now time.Time) {
	e.suspended[card] = models.SuspensionRecord{
		Card:          card,
		Reason:        reason,
		SuspendedAt:   now,
		AutoSuspended: auto,
	}
	logrus.Warnf("Card suspended: %s - %s (auto=%t)", card, reason, auto)
}

// SuspendCard blocks the card manually until UnsuspendCard.
func (e *Engine) SuspendCard(card, reason string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.suspendLocked(card, reason, false, e.now().In(e.location))
}

// UnsuspendCard removes the suspension. Manual action only; the engine
// never clears a suspension on its own.
func (e *Engine) UnsuspendCard(card string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.suspended[card]; !ok {
		return false
	}

	delete(e.suspended, card)
	logrus.Infof("Card unsuspended: %s", card)
	return true
}

func (e *Engine) IsCardSuspended(card string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.suspended[card]
	return ok
}

func (e *Engine) SuspendedCards() []models.SuspensionRecord {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]models.SuspensionRecord, 0, len(e.suspended))
	for _, record := range e.suspended {
		out = append(out, record)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].SuspendedAt.Before(out[j].SuspendedAt)
	})
	return out
}

// ResolveAlert marks an alert resolved with notes. It does not reverse
// any suspension the alert may have caused.
func (e *Engine) ResolveAlert(alertID, notes string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, alert := range e.alerts {
		if alert.ID == alertID {
			now := e.now().In(e.location)
			alert.Resolved = true
			alert.ResolvedAt = &now
			alert.ResolutionNotes = notes
			return true
		}
	}
	return false
}

// Alerts returns copies of the newest alerts matching the filter.
func (e *Engine) Alerts(filter models.AlertFilter) []models.FraudAlert {
	e.mu.Lock()
	defer e.mu.Unlock()

	var matched []*models.FraudAlert
	for _, alert := range e.alerts {
		if filter.Card != "" && alert.Card != filter.Card {
			continue
		}
		if filter.RiskLevel != "" && alert.RiskLevel != filter.RiskLevel {
			continue
		}
		if filter.UnresolvedOnly && alert.Resolved {
			continue
		}
		matched = append(matched, alert)
	}

	limit := filter.Limit
	if limit <= 0 || limit > len(matched) {
		limit = len(matched)
	}

	out := make([]models.FraudAlert, 0, limit)
	for _, alert := range matched[len(matched)-limit:] {
		out = append(out, *alert)
	}
	return out
}

type Stats struct {
	TotalAlerts      int                      `json:"total_alerts"`
	UnresolvedAlerts int                      `json:"unresolved_alerts"`
	TodayAlerts      int                      `json:"today_alerts"`
	AlertsByType     map[models.FraudType]int `json:"alerts_by_type"`
	AlertsByRisk     map[models.RiskLevel]int `json:"alerts_by_risk"`
	SuspendedCards   int                      `json:"suspended_cards"`
	CardsMonitored   int                      `json:"cards_monitored"`
}

func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now().In(e.location)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, e.location)

	stats := Stats{
		TotalAlerts:    len(e.alerts),
		AlertsByType:   make(map[models.FraudType]int),
		AlertsByRisk:   make(map[models.RiskLevel]int),
		SuspendedCards: len(e.suspended),
		CardsMonitored: len(e.history),
	}

	for _, alert := range e.alerts {
		if !alert.Resolved {
			stats.UnresolvedAlerts++
		}
		if !alert.CreatedAt.Before(todayStart) {
			stats.TodayAlerts++
			stats.AlertsByType[alert.FraudType]++
			stats.AlertsByRisk[alert.RiskLevel]++
		}
	}

	return stats
}
