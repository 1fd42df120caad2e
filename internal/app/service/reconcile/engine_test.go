package reconcile

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fatflowers/gemcashier/internal/app/service/notification_log"
	"github.com/fatflowers/gemcashier/internal/app/service/order"
	"github.com/fatflowers/gemcashier/internal/app/service/payment"
	"github.com/fatflowers/gemcashier/internal/models"
	"github.com/fatflowers/gemcashier/internal/platform/dbtest"
	"github.com/fatflowers/gemcashier/internal/platform/payhere"
	"github.com/fatflowers/gemcashier/pkg/config"
	"github.com/fatflowers/gemcashier/pkg/types"
)

const (
	merchantID = "1211149"
	secret     = "MzE2NzQ0NzUwNjE1MjY3NTA3OTI5MjI4NzE2MTI="
)

type harness struct {
	db       *gorm.DB
	engine   *Engine
	orders   order.Store
	payments payment.Store
	logs     notification_log.Store
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db := dbtest.Open(t)
	cfg := &config.Config{
		Gateway:   config.GatewayConfig{MerchantID: merchantID, MerchantSecret: secret},
		Reconcile: config.ReconcileConfig{PendingHorizon: 2 * time.Hour},
	}
	h := &harness{
		db:       db,
		orders:   order.NewStore(db),
		payments: payment.NewStore(db),
		logs:     notification_log.New(db, zap.NewNop().Sugar()),
	}
	h.engine = NewEngine(cfg, h.orders, h.payments, h.logs, zap.NewNop().Sugar())
	return h
}

// pendingOrder creates an order with one pending payment attempt.
func (h *harness) pendingOrder(t *testing.T, id, amount string) {
	t.Helper()
	ctx := context.Background()
	total := decimal.RequireFromString(amount)
	require.NoError(t, h.orders.Create(ctx, &models.Order{
		ID: id, Status: types.OrderStatusPending, PaymentStatus: types.OrderPaymentStatusPending,
		TotalAmount: total, Currency: "LKR",
		Items: []*models.OrderItem{{ID: id + "-i", OrderID: id, ProductID: "cats-eye", Quantity: 1, UnitPrice: total}},
	}))
	require.NoError(t, h.payments.Create(ctx, &models.Payment{
		ID: id + "-p", OrderID: id, Amount: total, Currency: "LKR", Status: types.PaymentStatusPending,
	}))
}

func signed(orderID, paymentID, amount, currency, code string) *payhere.Notification {
	return &payhere.Notification{
		MerchantID: merchantID,
		OrderID:    orderID,
		PaymentID:  paymentID,
		Amount:     amount,
		Currency:   currency,
		StatusCode: code,
		Signature:  payhere.NotificationHash(merchantID, orderID, decimal.RequireFromString(amount), currency, code, secret),
	}
}

func (h *harness) deliver(t *testing.T, n *payhere.Notification) *Outcome {
	t.Helper()
	out, err := h.engine.HandleNotification(context.Background(), &Inbound{
		Notification: n,
		Raw:          datatypes.JSON(`{"order_id":"` + n.OrderID + `"}`),
		TraceID:      "trace-1",
	})
	require.NoError(t, err)
	return out
}

func (h *harness) state(t *testing.T, orderID string) (*models.Order, *models.Payment) {
	t.Helper()
	o, err := h.orders.Get(context.Background(), orderID)
	require.NoError(t, err)
	p, err := h.payments.Current(context.Background(), orderID)
	require.NoError(t, err)
	return o, p
}

func (h *harness) logRows(t *testing.T, orderID string) []*models.PaymentNotificationLog {
	t.Helper()
	rows, err := h.logs.ListByOrder(context.Background(), orderID, 0)
	require.NoError(t, err)
	return rows
}

func TestEngine_SuccessNotificationCompletesPayment(t *testing.T) {
	h := newHarness(t)
	h.pendingOrder(t, "A-1", "1000.00")

	out := h.deliver(t, signed("A-1", "320025071278", "1000.00", "LKR", "2"))
	require.Equal(t, models.PaymentNotificationLogStatusAccepted, out.ProcessingStatus)
	require.True(t, out.Applied)
	require.NoError(t, out.Err)

	o, p := h.state(t, "A-1")
	require.Equal(t, types.PaymentStatusCompleted, p.Status)
	require.True(t, p.SignatureValid)
	require.NotNil(t, p.RawResponse)
	require.Equal(t, types.OrderPaymentStatusCompleted, o.PaymentStatus)

	rows := h.logRows(t, "A-1")
	require.Len(t, rows, 1)
	require.Equal(t, "trace-1", rows[0].TraceID)
	require.True(t, rows[0].SignatureValid)
}

func TestEngine_ReplayIsIdempotent(t *testing.T) {
	h := newHarness(t)
	h.pendingOrder(t, "A-1", "1000.00")
	n := signed("A-1", "320025071278", "1000.00", "LKR", "2")

	first := h.deliver(t, n)
	second := h.deliver(t, n)
	require.True(t, first.Applied)
	require.False(t, second.Applied)
	require.Equal(t, models.PaymentNotificationLogStatusDuplicateIgnored, second.ProcessingStatus)
	require.ErrorIs(t, second.Err, types.ErrDuplicateNotification)

	_, p := h.state(t, "A-1")
	require.Equal(t, types.PaymentStatusCompleted, p.Status)

	rows := h.logRows(t, "A-1")
	require.Len(t, rows, 2)
	require.Equal(t, models.PaymentNotificationLogStatusAccepted, rows[0].ProcessingStatus)
	require.Equal(t, models.PaymentNotificationLogStatusDuplicateIgnored, rows[1].ProcessingStatus)
}

func TestEngine_TamperedSignatureRejected(t *testing.T) {
	h := newHarness(t)
	h.pendingOrder(t, "A-1", "1000.00")

	n := signed("A-1", "320025071278", "1000.00", "LKR", "2")
	n.Amount = "1.00"
	out := h.deliver(t, n)
	require.Equal(t, models.PaymentNotificationLogStatusRejectedBadSignature, out.ProcessingStatus)
	require.ErrorIs(t, out.Err, types.ErrSignatureMismatch)
	require.False(t, out.SignatureValid)

	o, p := h.state(t, "A-1")
	require.Equal(t, types.PaymentStatusPending, p.Status)
	require.Equal(t, types.OrderPaymentStatusPending, o.PaymentStatus)
	rows := h.logRows(t, "A-1")
	require.Len(t, rows, 1)
	require.False(t, rows[0].SignatureValid)
}

func TestEngine_ValidlySignedWrongAmountRejected(t *testing.T) {
	h := newHarness(t)
	h.pendingOrder(t, "A-1", "1000.00")

	out := h.deliver(t, signed("A-1", "320025071278", "999.00", "LKR", "2"))
	require.Equal(t, models.PaymentNotificationLogStatusRejectedAmount, out.ProcessingStatus)
	require.ErrorIs(t, out.Err, types.ErrAmountMismatch)

	out = h.deliver(t, signed("A-1", "320025071278", "1000.00", "USD", "2"))
	require.Equal(t, models.PaymentNotificationLogStatusRejectedAmount, out.ProcessingStatus)

	o, p := h.state(t, "A-1")
	require.Equal(t, types.PaymentStatusPending, p.Status)
	require.Equal(t, types.OrderPaymentStatusPending, o.PaymentStatus)
}

func TestEngine_UnknownOrder(t *testing.T) {
	h := newHarness(t)
	h.pendingOrder(t, "A-1", "1000.00")

	out := h.deliver(t, signed("A-999", "320025071278", "1000.00", "LKR", "2"))
	require.Equal(t, models.PaymentNotificationLogStatusRejectedUnknownOrder, out.ProcessingStatus)
	require.ErrorIs(t, out.Err, types.ErrUnknownOrder)

	require.Len(t, h.logRows(t, "A-999"), 1)
	_, p := h.state(t, "A-1")
	require.Equal(t, types.PaymentStatusPending, p.Status)

	var count int64
	require.NoError(t, h.db.Model(&models.Order{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestEngine_OrderWithoutAttemptIsUnknown(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.orders.Create(context.Background(), &models.Order{
		ID: "A-2", Status: types.OrderStatusPending, PaymentStatus: types.OrderPaymentStatusPending,
		TotalAmount: decimal.NewFromInt(10), Currency: "LKR",
	}))
	out := h.deliver(t, signed("A-2", "g", "10.00", "LKR", "2"))
	require.Equal(t, models.PaymentNotificationLogStatusRejectedUnknownOrder, out.ProcessingStatus)
}

func TestEngine_TerminalIsImmutable(t *testing.T) {
	h := newHarness(t)
	h.pendingOrder(t, "A-1", "1000.00")

	require.True(t, h.deliver(t, signed("A-1", "320025071278", "1000.00", "LKR", "2")).Applied)
	out := h.deliver(t, signed("A-1", "320025071278", "1000.00", "LKR", "-2"))
	require.Equal(t, models.PaymentNotificationLogStatusRejectedStaleTerminal, out.ProcessingStatus)
	require.ErrorIs(t, out.Err, types.ErrStaleTerminalOverwrite)

	out = h.deliver(t, signed("A-1", "other-payment", "1000.00", "LKR", "2"))
	require.Equal(t, models.PaymentNotificationLogStatusRejectedStaleTerminal, out.ProcessingStatus)

	out = h.deliver(t, signed("A-1", "320025071278", "1000.00", "LKR", "0"))
	require.Equal(t, models.PaymentNotificationLogStatusIgnoredNonTerminal, out.ProcessingStatus)

	o, p := h.state(t, "A-1")
	require.Equal(t, types.PaymentStatusCompleted, p.Status)
	require.Equal(t, types.OrderPaymentStatusCompleted, o.PaymentStatus)
	require.Equal(t, types.OrderStatusPending, o.Status)
	require.Len(t, h.logRows(t, "A-1"), 4)
}

func TestEngine_StatusCodeMapping(t *testing.T) {
	cases := []struct {
		code         string
		processing   models.PaymentNotificationLogStatus
		payment      types.PaymentStatus
		orderPayment types.OrderPaymentStatus
		orderStatus  types.OrderStatus
	}{
		{"2", models.PaymentNotificationLogStatusAccepted, types.PaymentStatusCompleted, types.OrderPaymentStatusCompleted, types.OrderStatusPending},
		{"-1", models.PaymentNotificationLogStatusAccepted, types.PaymentStatusFailed, types.OrderPaymentStatusFailed, types.OrderStatusCancelled},
		{"-2", models.PaymentNotificationLogStatusAccepted, types.PaymentStatusFailed, types.OrderPaymentStatusFailed, types.OrderStatusCancelled},
		{"-3", models.PaymentNotificationLogStatusAccepted, types.PaymentStatusChargedback, types.OrderPaymentStatusFailed, types.OrderStatusPending},
		{"0", models.PaymentNotificationLogStatusIgnoredNonTerminal, types.PaymentStatusPending, types.OrderPaymentStatusPending, types.OrderStatusPending},
		{"7", models.PaymentNotificationLogStatusIgnoredNonTerminal, types.PaymentStatusPending, types.OrderPaymentStatusPending, types.OrderStatusPending},
	}
	for _, c := range cases {
		t.Run(c.code, func(t *testing.T) {
			h := newHarness(t)
			h.pendingOrder(t, "A-1", "1000.00")

			out := h.deliver(t, signed("A-1", "g-1", "1000.00", "LKR", c.code))
			require.Equal(t, c.processing, out.ProcessingStatus)

			o, p := h.state(t, "A-1")
			require.Equal(t, c.payment, p.Status)
			require.Equal(t, c.orderPayment, o.PaymentStatus)
			require.Equal(t, c.orderStatus, o.Status)
		})
	}
}

func TestEngine_ConcurrentConflictingNotifications(t *testing.T) {
	h := newHarness(t)
	h.pendingOrder(t, "A-1", "1000.00")
	success := signed("A-1", "320025071278", "1000.00", "LKR", "2")
	failure := signed("A-1", "320025071278", "1000.00", "LKR", "-2")

	outs := make([]*Outcome, 6)
	errs := make([]error, 6)
	var wg sync.WaitGroup
	for i := range outs {
		n := success
		if i%2 == 1 {
			n = failure
		}
		wg.Add(1)
		go func(i int, n *payhere.Notification) {
			defer wg.Done()
			outs[i], errs[i] = h.engine.HandleNotification(context.Background(), &Inbound{Notification: n})
		}(i, n)
	}
	wg.Wait()

	applied := 0
	for i := range outs {
		require.NoError(t, errs[i])
		if outs[i].Applied {
			applied++
		}
	}
	require.Equal(t, 1, applied)

	o, p := h.state(t, "A-1")
	require.True(t, p.IsTerminal())
	require.Equal(t, p.Status.OrderPaymentStatus(), o.PaymentStatus)
	require.Len(t, h.logRows(t, "A-1"), 6)
}

func TestEngine_EmptyDeliveryIsLogged(t *testing.T) {
	h := newHarness(t)
	out, err := h.engine.HandleNotification(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, models.PaymentNotificationLogStatusRejectedBadSignature, out.ProcessingStatus)
}

func TestEngine_StalePending(t *testing.T) {
	h := newHarness(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	h.engine.now = func() time.Time { return now }
	ctx := context.Background()

	for _, c := range []struct {
		id  string
		age time.Duration
	}{{"O-1", 3 * time.Hour}, {"O-2", time.Hour}} {
		require.NoError(t, h.orders.Create(ctx, &models.Order{
			ID: c.id, Status: types.OrderStatusPending, PaymentStatus: types.OrderPaymentStatusPending,
			TotalAmount: decimal.NewFromInt(5), Currency: "LKR",
		}))
		require.NoError(t, h.payments.Create(ctx, &models.Payment{
			ID: c.id + "-p", OrderID: c.id, Amount: decimal.NewFromInt(5), Currency: "LKR",
			Status: types.PaymentStatusPending, CreatedAt: now.Add(-c.age),
		}))
	}

	rows, err := h.engine.StalePending(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "O-1", rows[0].OrderID)

	rows, err = h.engine.StalePending(ctx, 30*time.Minute, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
}
