package service

import (
	"context"
	"testing"
	"time"

	"github.com/jeffleon2/campus-card-core/config"
	"github.com/jeffleon2/campus-card-core/internal/coordinator"
	"github.com/jeffleon2/campus-card-core/internal/fraud"
	"github.com/jeffleon2/campus-card-core/internal/idgen"
	"github.com/jeffleon2/campus-card-core/internal/locks"
	"github.com/jeffleon2/campus-card-core/internal/models"
	"github.com/jeffleon2/campus-card-core/internal/models/dto"
	"github.com/jeffleon2/campus-card-core/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCard() *models.Card {
	return &models.Card{
		ID:      "11111111-1111-1111-1111-111111111111",
		CardUID: "MC001",
		Balance: 100.0,
		Active:  true,
	}
}

// newTestService wires the real coordinator and fraud engine with
// mocked storage and transport. The unusual-time window is disabled so
// results do not depend on the wall clock.
func newTestService(t *testing.T) (*TransactionService, *mocks.MockCardRepo, *mocks.MockPublisher) {
	fraudCfg := config.Fraud{
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
	}

	generator := idgen.New("MAIN", time.UTC)
	lockMgr := locks.NewManagerWith(time.Minute, 200*time.Millisecond, 10*time.Millisecond)

	repo := mocks.NewMockCardRepo(t)
	pub := mocks.NewMockPublisher(t)

	svc := NewTransactionService(
		coordinator.New("MAIN", generator, lockMgr),
		fraud.NewEngine(fraudCfg, time.UTC),
		repo,
		pub,
	)
	return svc, repo, pub
}

// mutateThrough makes the mocked Mutate behave like the repository: run
// the callback against the stored row, abort on error, return the row.
func mutateThrough(repo *mocks.MockCardRepo, card *models.Card) {
	repo.EXPECT().Mutate(mock.Anything, card.ID, mock.Anything).
		RunAndReturn(func(ctx context.Context, id string, fn func(card *models.Card) error) (*models.Card, error) {
			if err := fn(card); err != nil {
				return nil, err
			}
			return card, nil
		})
}

func TestProcessTransaction_SpendSuccess(t *testing.T) {
	svc, repo, pub := newTestService(t)
	card := testCard()

	repo.EXPECT().GetBy(mock.Anything, "card_uid", "MC001").Return(card, nil)
	mutateThrough(repo, card)
	pub.EXPECT().Publish(mock.Anything, models.TopicTransactionCompleted, mock.Anything).Return(nil)

	resp, err := svc.ProcessTransaction(context.Background(), &dto.TransactionRequest{
		CardUID:   "MC001",
		Operation: "spend",
		Amount:    25.0,
		StationID: "west",
	})

	require.NoError(t, err)
	assert.True(t, idgen.Validate(resp.TransactionID))
	assert.Equal(t, "SPEND", resp.Operation)
	assert.Equal(t, 75.0, resp.Balance)
	assert.Empty(t, resp.Alerts)
}

func TestProcessTransaction_LoadSuccess(t *testing.T) {
	svc, repo, pub := newTestService(t)
	card := testCard()

	repo.EXPECT().GetBy(mock.Anything, "card_uid", "MC001").Return(card, nil)
	mutateThrough(repo, card)
	pub.EXPECT().Publish(mock.Anything, models.TopicTransactionCompleted, mock.Anything).Return(nil)

	resp, err := svc.ProcessTransaction(context.Background(), &dto.TransactionRequest{
		CardUID:   "MC001",
		Operation: "LOAD",
		Amount:    50.0,
		StationID: "WEST",
	})

	require.NoError(t, err)
	assert.Equal(t, 150.0, resp.Balance)
	assert.Empty(t, resp.Alerts)
}

func TestProcessTransaction_InvalidOperation(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ProcessTransaction(context.Background(), &dto.TransactionRequest{
		CardUID:   "MC001",
		Operation: "TRANSFER",
		Amount:    25.0,
		StationID: "WEST",
	})

	assert.ErrorContains(t, err, "invalid operation")
}

func TestProcessTransaction_NonPositiveAmount(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ProcessTransaction(context.Background(), &dto.TransactionRequest{
		CardUID:   "MC001",
		Operation: "SPEND",
		Amount:    0,
		StationID: "WEST",
	})

	assert.ErrorContains(t, err, "greater than zero")
}

func TestProcessTransaction_CardNotFound(t *testing.T) {
	svc, repo, _ := newTestService(t)

	repo.EXPECT().GetBy(mock.Anything, "card_uid", "MC404").Return(nil, models.ErrCardNotFound)

	_, err := svc.ProcessTransaction(context.Background(), &dto.TransactionRequest{
		CardUID:   "MC404",
		Operation: "SPEND",
		Amount:    25.0,
		StationID: "WEST",
	})

	assert.ErrorIs(t, err, models.ErrCardNotFound)
}

func TestProcessTransaction_InsufficientBalance(t *testing.T) {
	svc, repo, _ := newTestService(t)
	card := testCard()
	card.Balance = 10.0

	repo.EXPECT().GetBy(mock.Anything, "card_uid", "MC001").Return(card, nil)
	mutateThrough(repo, card)

	_, err := svc.ProcessTransaction(context.Background(), &dto.TransactionRequest{
		CardUID:   "MC001",
		Operation: "SPEND",
		Amount:    25.0,
		StationID: "WEST",
	})

	assert.ErrorIs(t, err, models.ErrInsufficientBalance)
	assert.Equal(t, 10.0, card.Balance, "a rejected spend must not move money")
}

func TestProcessTransaction_InactiveCard(t *testing.T) {
	svc, repo, _ := newTestService(t)
	card := testCard()
	card.Active = false

	repo.EXPECT().GetBy(mock.Anything, "card_uid", "MC001").Return(card, nil)
	mutateThrough(repo, card)

	_, err := svc.ProcessTransaction(context.Background(), &dto.TransactionRequest{
		CardUID:   "MC001",
		Operation: "SPEND",
		Amount:    25.0,
		StationID: "WEST",
	})

	require.Error(t, err)
	var execErr *models.ExecutorError
	assert.ErrorAs(t, err, &execErr)
	assert.ErrorContains(t, err, "inactive")
}

func TestProcessTransaction_SuspendedCardRejected(t *testing.T) {
	svc, repo, pub := newTestService(t)
	card := testCard()
	svc.Fraud.SuspendCard("MC001", "reported stolen")

	repo.EXPECT().GetBy(mock.Anything, "card_uid", "MC001").Return(card, nil)
	pub.EXPECT().Publish(mock.Anything, models.TopicFraudAlertRaised, mock.Anything).Return(nil)

	resp, err := svc.ProcessTransaction(context.Background(), &dto.TransactionRequest{
		CardUID:   "MC001",
		Operation: "SPEND",
		Amount:    25.0,
		StationID: "WEST",
	})

	assert.ErrorIs(t, err, models.ErrCardSuspended)
	require.NotNil(t, resp)
	require.Len(t, resp.Alerts, 1)
	assert.Equal(t, models.FraudCardCloning, resp.Alerts[0].FraudType)
	assert.Equal(t, models.RiskCritical, resp.Alerts[0].RiskLevel)
	assert.Equal(t, 100.0, card.Balance)
}

func TestProcessTransaction_SpendRaisesAlert(t *testing.T) {
	svc, repo, pub := newTestService(t)
	card := testCard()
	card.Balance = 10000.0

	repo.EXPECT().GetBy(mock.Anything, "card_uid", "MC001").Return(card, nil)
	mutateThrough(repo, card)
	pub.EXPECT().Publish(mock.Anything, models.TopicFraudAlertRaised, mock.Anything).Return(nil)
	pub.EXPECT().Publish(mock.Anything, models.TopicTransactionCompleted, mock.Anything).Return(nil)

	resp, err := svc.ProcessTransaction(context.Background(), &dto.TransactionRequest{
		CardUID:   "MC001",
		Operation: "SPEND",
		Amount:    250.0,
		StationID: "WEST",
	})

	require.NoError(t, err)
	assert.Equal(t, 9750.0, resp.Balance)
	require.Len(t, resp.Alerts, 1)
	assert.Equal(t, models.FraudUnusualAmount, resp.Alerts[0].FraudType)
}

func TestCreateCard(t *testing.T) {
	svc, repo, _ := newTestService(t)
	card := &models.Card{CardUID: "MC010", StudentID: "S-42", Balance: 0}

	repo.EXPECT().Create(mock.Anything, card).Return(nil)

	assert.NoError(t, svc.CreateCard(context.Background(), card))
}

func TestCreateCard_Invalid(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.CreateCard(context.Background(), &models.Card{StudentID: "S-42"})

	assert.ErrorContains(t, err, "card UID is required")
}

func TestGetCard(t *testing.T) {
	svc, repo, _ := newTestService(t)
	card := testCard()

	repo.EXPECT().GetBy(mock.Anything, "card_uid", "MC001").Return(card, nil)

	got, err := svc.GetCard(context.Background(), "MC001")

	require.NoError(t, err)
	assert.Equal(t, card, got)
}

func TestUnsuspendCard(t *testing.T) {
	svc, _, _ := newTestService(t)

	assert.False(t, svc.UnsuspendCard(context.Background(), "MC001"))

	svc.Fraud.SuspendCard("MC001", "testing")
	assert.True(t, svc.UnsuspendCard(context.Background(), "MC001"))
	assert.False(t, svc.Fraud.IsCardSuspended("MC001"))
}