package payment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fatflowers/gemcashier/internal/models"
	"github.com/fatflowers/gemcashier/internal/platform/dbtest"
	"github.com/fatflowers/gemcashier/pkg/types"
)

func seedOrder(t *testing.T, db *gorm.DB, id string) *models.Order {
	t.Helper()
	o := &models.Order{
		ID:            id,
		Status:        types.OrderStatusPending,
		PaymentStatus: types.OrderPaymentStatusPending,
		TotalAmount:   decimal.RequireFromString("1000.00"),
		Currency:      "LKR",
	}
	require.NoError(t, db.Create(o).Error)
	return o
}

func newAttempt(orderID string) *models.Payment {
	return &models.Payment{
		ID:       orderID + "-p",
		OrderID:  orderID,
		Amount:   decimal.RequireFromString("1000.00"),
		Currency: "LKR",
		Status:   types.PaymentStatusPending,
	}
}

func loadOrder(t *testing.T, db *gorm.DB, id string) *models.Order {
	t.Helper()
	var o models.Order
	require.NoError(t, db.Where("id = ?", id).First(&o).Error)
	return &o
}

func TestGormStore_CreateNumbersAttempts(t *testing.T) {
	db := dbtest.Open(t)
	s := NewStore(db)
	ctx := context.Background()
	seedOrder(t, db, "A-1")

	first := newAttempt("A-1")
	first.ID = "pay-1"
	require.NoError(t, s.Create(ctx, first))
	require.Equal(t, 1, first.Attempt)

	second := newAttempt("A-1")
	second.ID = "pay-2"
	require.NoError(t, s.Create(ctx, second))
	require.Equal(t, 2, second.Attempt)

	cur, err := s.Current(ctx, "A-1")
	require.NoError(t, err)
	require.Equal(t, "pay-2", cur.ID)
	require.True(t, cur.Amount.Equal(decimal.RequireFromString("1000")))
}

func TestGormStore_CurrentNotFound(t *testing.T) {
	s := NewStore(dbtest.Open(t))
	_, err := s.Current(context.Background(), "A-404")
	require.ErrorIs(t, err, types.ErrPaymentNotFound)
}

func TestGormStore_ApplyTerminalCompleted(t *testing.T) {
	db := dbtest.Open(t)
	s := NewStore(db)
	ctx := context.Background()
	seedOrder(t, db, "A-1")
	p := newAttempt("A-1")
	require.NoError(t, s.Create(ctx, p))

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	applied, err := s.ApplyTerminal(ctx, &Transition{
		PaymentID:        p.ID,
		OrderID:          "A-1",
		To:               types.PaymentStatusCompleted,
		GatewayPaymentID: "320025071278",
		StatusCode:       "2",
		RawResponse:      datatypes.JSON(`{"status_code":"2"}`),
		At:               at,
	})
	require.NoError(t, err)
	require.True(t, applied)

	cur, err := s.Current(ctx, "A-1")
	require.NoError(t, err)
	require.Equal(t, types.PaymentStatusCompleted, cur.Status)
	require.True(t, cur.SignatureValid)
	require.True(t, cur.ProducedBy("320025071278", "2"))
	require.NotNil(t, cur.CompletedAt)

	o := loadOrder(t, db, "A-1")
	require.Equal(t, types.OrderPaymentStatusCompleted, o.PaymentStatus)
	require.Equal(t, types.OrderStatusPending, o.Status)

	// Terminal rows are immutable.
	applied, err = s.ApplyTerminal(ctx, &Transition{
		PaymentID: p.ID, OrderID: "A-1", To: types.PaymentStatusFailed,
		GatewayPaymentID: "320025071278", StatusCode: "-2", At: at.Add(time.Minute),
	})
	require.NoError(t, err)
	require.False(t, applied)

	cur, err = s.Current(ctx, "A-1")
	require.NoError(t, err)
	require.Equal(t, types.PaymentStatusCompleted, cur.Status)
	o = loadOrder(t, db, "A-1")
	require.Equal(t, types.OrderPaymentStatusCompleted, o.PaymentStatus)
	require.Equal(t, types.OrderStatusPending, o.Status)
}

func TestGormStore_ApplyTerminalFailedCancelsPendingOrder(t *testing.T) {
	db := dbtest.Open(t)
	s := NewStore(db)
	ctx := context.Background()
	seedOrder(t, db, "A-2")
	p := newAttempt("A-2")
	require.NoError(t, s.Create(ctx, p))

	applied, err := s.ApplyTerminal(ctx, &Transition{
		PaymentID: p.ID, OrderID: "A-2", To: types.PaymentStatusFailed,
		GatewayPaymentID: "g-2", StatusCode: "-2", At: time.Now(),
	})
	require.NoError(t, err)
	require.True(t, applied)

	o := loadOrder(t, db, "A-2")
	require.Equal(t, types.OrderPaymentStatusFailed, o.PaymentStatus)
	require.Equal(t, types.OrderStatusCancelled, o.Status)
}

func TestGormStore_ApplyTerminalChargebackKeepsOrderStatus(t *testing.T) {
	db := dbtest.Open(t)
	s := NewStore(db)
	ctx := context.Background()
	seedOrder(t, db, "A-3")
	p := newAttempt("A-3")
	require.NoError(t, s.Create(ctx, p))

	applied, err := s.ApplyTerminal(ctx, &Transition{
		PaymentID: p.ID, OrderID: "A-3", To: types.PaymentStatusChargedback,
		GatewayPaymentID: "g-3", StatusCode: "-3", At: time.Now(),
	})
	require.NoError(t, err)
	require.True(t, applied)

	o := loadOrder(t, db, "A-3")
	require.Equal(t, types.OrderPaymentStatusFailed, o.PaymentStatus)
	require.Equal(t, types.OrderStatusPending, o.Status)
}

func TestGormStore_ApplyTerminalRejectsNonTerminal(t *testing.T) {
	s := NewStore(dbtest.Open(t))
	_, err := s.ApplyTerminal(context.Background(), &Transition{To: types.PaymentStatusPending})
	require.Error(t, err)
}

func TestGormStore_ApplyTerminalConcurrentWritersOneWins(t *testing.T) {
	db := dbtest.Open(t)
	s := NewStore(db)
	ctx := context.Background()
	seedOrder(t, db, "A-4")
	p := newAttempt("A-4")
	require.NoError(t, s.Create(ctx, p))

	targets := []types.PaymentStatus{
		types.PaymentStatusCompleted, types.PaymentStatusFailed,
		types.PaymentStatusCompleted, types.PaymentStatusFailed,
	}
	results := make([]bool, len(targets))
	errs := make([]error, len(targets))
	var wg sync.WaitGroup
	for i, to := range targets {
		wg.Add(1)
		go func(i int, to types.PaymentStatus) {
			defer wg.Done()
			applied, err := s.ApplyTerminal(ctx, &Transition{
				PaymentID: p.ID, OrderID: "A-4", To: to,
				GatewayPaymentID: "g-4", StatusCode: "x", At: time.Now(),
			})
			results[i], errs[i] = applied, err
		}(i, to)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	wins := 0
	for _, r := range results {
		if r {
			wins++
		}
	}
	require.Equal(t, 1, wins)

	cur, err := s.Current(ctx, "A-4")
	require.NoError(t, err)
	o := loadOrder(t, db, "A-4")
	require.Equal(t, cur.Status.OrderPaymentStatus(), o.PaymentStatus)
}

func TestGormStore_ListStalePending(t *testing.T) {
	db := dbtest.Open(t)
	s := NewStore(db)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, age := range []time.Duration{5 * time.Hour, 3 * time.Hour, 10 * time.Minute} {
		id := []string{"S-1", "S-2", "S-3"}[i]
		seedOrder(t, db, id)
		p := newAttempt(id)
		p.CreatedAt = now.Add(-age)
		require.NoError(t, s.Create(ctx, p))
	}
	done := newAttempt("S-4")
	seedOrder(t, db, "S-4")
	done.Status = types.PaymentStatusCompleted
	done.CreatedAt = now.Add(-6 * time.Hour)
	require.NoError(t, s.Create(ctx, done))

	rows, err := s.ListStalePending(ctx, now.Add(-2*time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "S-1", rows[0].OrderID)
	require.Equal(t, "S-2", rows[1].OrderID)

	rows, err = s.ListStalePending(ctx, now.Add(-2*time.Hour), 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestAdminService_ScanPayments(t *testing.T) {
	db := dbtest.Open(t)
	s := NewStore(db)
	admin := NewAdminService(db)
	ctx := context.Background()
	for _, id := range []string{"B-1", "B-2", "B-3"} {
		seedOrder(t, db, id)
		require.NoError(t, s.Create(ctx, newAttempt(id)))
	}
	_, err := s.ApplyTerminal(ctx, &Transition{
		PaymentID: "B-2-p", OrderID: "B-2", To: types.PaymentStatusCompleted,
		GatewayPaymentID: "g", StatusCode: "2", At: time.Now(),
	})
	require.NoError(t, err)

	res, err := admin.ScanPayments(ctx, &ScanPaymentsRequest{
		Filters: []*types.CommonFilter{{Field: "status", Operator: types.CommonFilterOperatorEq, Values: []any{"pending"}}},
		SortBy:  "order_id", SortOrder: "asc",
	})
	require.NoError(t, err)
	require.EqualValues(t, 2, res.Total)
	require.Len(t, res.Items, 2)
	require.Equal(t, "B-1", res.Items[0].OrderID)
	require.Equal(t, "B-3", res.Items[1].OrderID)

	_, err = admin.ScanPayments(ctx, &ScanPaymentsRequest{
		Filters: []*types.CommonFilter{{Field: "raw_response", Operator: types.CommonFilterOperatorEq, Values: []any{"x"}}},
	})
	require.Error(t, err)

	_, err = admin.ScanPayments(ctx, &ScanPaymentsRequest{SortBy: "1; DROP TABLE payments"})
	require.Error(t, err)
}
