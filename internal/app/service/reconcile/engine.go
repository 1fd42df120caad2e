package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/fatflowers/gemcashier/internal/app/service/notification_log"
	"github.com/fatflowers/gemcashier/internal/app/service/order"
	"github.com/fatflowers/gemcashier/internal/app/service/payment"
	"github.com/fatflowers/gemcashier/internal/models"
	"github.com/fatflowers/gemcashier/internal/platform/payhere"
	"github.com/fatflowers/gemcashier/pkg/config"
	"github.com/fatflowers/gemcashier/pkg/logctx"
	"github.com/fatflowers/gemcashier/pkg/metrics"
	"github.com/fatflowers/gemcashier/pkg/types"
)

// Inbound is one notification delivery as received over HTTP.
type Inbound struct {
	Notification *payhere.Notification
	// Raw is the payload persisted verbatim in the audit log and on the payment.
	Raw        datatypes.JSON
	TraceID    string
	ReceivedAt time.Time
}

// Outcome is what the engine did with a delivery. Err carries the matching
// sentinel for rejected and ignored deliveries and is nil when accepted.
type Outcome struct {
	ProcessingStatus models.PaymentNotificationLogStatus
	// PaymentStatus is the payment status after processing, empty when no
	// payment was resolved.
	PaymentStatus  types.PaymentStatus
	Applied        bool
	SignatureValid bool
	Err            error
}

func (o *Outcome) Detail() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

var errNonTerminal = errors.New("non-terminal status")

// Engine merges gateway notifications into order and payment state. Every
// delivery is recorded in the notification log, whatever its outcome.
type Engine struct {
	gateway  config.GatewayConfig
	horizon  time.Duration
	limit    int
	orders   order.Store
	payments payment.Store
	logs     notification_log.Store
	log      *zap.SugaredLogger
	now      func() time.Time
}

func NewEngine(cfg *config.Config, orders order.Store, payments payment.Store, logs notification_log.Store, log *zap.SugaredLogger) *Engine {
	return &Engine{
		gateway:  cfg.Gateway,
		horizon:  cfg.Reconcile.PendingHorizon,
		limit:    cfg.Reconcile.StaleLimit,
		orders:   orders,
		payments: payments,
		logs:     logs,
		log:      log,
		now:      time.Now,
	}
}

// HandleNotification processes a delivery and appends its audit row. The
// returned error is non-nil only for infrastructure failures, in which case
// the gateway should retry.
func (e *Engine) HandleNotification(ctx context.Context, in *Inbound) (*Outcome, error) {
	start := time.Now()
	if in == nil || in.Notification == nil {
		in = &Inbound{Notification: &payhere.Notification{}}
	}
	if in.ReceivedAt.IsZero() {
		in.ReceivedAt = e.now()
	}
	if in.TraceID == "" {
		in.TraceID = logctx.TraceID(ctx)
	}
	n := in.Notification
	l := logctx.FromCtx(ctx, e.log).With("order_id", n.OrderID, "gateway_payment_id", n.PaymentID, "status_code", n.StatusCode)

	out, err := e.reconcile(ctx, in)
	if err != nil {
		l.Errorw("notification_failed", "error", err)
		return nil, err
	}

	entry := &models.PaymentNotificationLog{
		OrderID:          n.OrderID,
		GatewayPaymentID: n.PaymentID,
		StatusCode:       n.StatusCode,
		TraceID:          in.TraceID,
		SignatureValid:   out.SignatureValid,
		Data:             in.Raw,
		ProcessingStatus: out.ProcessingStatus,
		Detail:           out.Detail(),
		ReceivedAt:       in.ReceivedAt,
	}
	if err := e.logs.Append(ctx, entry); err != nil {
		return nil, err
	}

	metrics.IncNotificationOutcome(string(out.ProcessingStatus))
	metrics.ObserveBusinessProcess("notification", string(out.ProcessingStatus), start)
	if out.ProcessingStatus == models.PaymentNotificationLogStatusRejectedStaleTerminal ||
		out.ProcessingStatus == models.PaymentNotificationLogStatusRejectedAmount {
		l.Warnw("notification_anomaly", "processing_status", out.ProcessingStatus, "detail", entry.Detail)
	} else {
		l.Infow("notification_processed", "processing_status", out.ProcessingStatus, "payment_status", out.PaymentStatus, "applied", out.Applied)
	}
	return out, nil
}

func (e *Engine) reconcile(ctx context.Context, in *Inbound) (*Outcome, error) {
	n := in.Notification
	v := payhere.Verify(n, e.gateway.MerchantID, e.gateway.MerchantSecret)
	if !v.Authentic {
		return &Outcome{
			ProcessingStatus: models.PaymentNotificationLogStatusRejectedBadSignature,
			Err:              fmt.Errorf("%s: %w", v.Reason, types.ErrSignatureMismatch),
		}, nil
	}

	unknown := func(err error) *Outcome {
		return &Outcome{
			ProcessingStatus: models.PaymentNotificationLogStatusRejectedUnknownOrder,
			SignatureValid:   true,
			Err:              err,
		}
	}
	if _, err := e.orders.Get(ctx, n.OrderID); err != nil {
		if errors.Is(err, types.ErrUnknownOrder) {
			return unknown(err), nil
		}
		return nil, err
	}
	cur, err := e.payments.Current(ctx, n.OrderID)
	if err != nil {
		if errors.Is(err, types.ErrPaymentNotFound) {
			return unknown(fmt.Errorf("%w: %w", types.ErrUnknownOrder, err)), nil
		}
		return nil, err
	}

	if cur.IsTerminal() {
		return classifyTerminal(cur, n.PaymentID, v.Status), nil
	}
	if !v.Amount.Equal(cur.Amount) || strings.ToUpper(n.Currency) != cur.Currency {
		return &Outcome{
			ProcessingStatus: models.PaymentNotificationLogStatusRejectedAmount,
			PaymentStatus:    cur.Status,
			SignatureValid:   true,
			Err: fmt.Errorf("notified %s %s, expected %s %s: %w",
				payhere.FormatAmount(v.Amount), n.Currency, payhere.FormatAmount(cur.Amount), cur.Currency, types.ErrAmountMismatch),
		}, nil
	}

	target, terminal := v.Status.PaymentStatus()
	if !terminal {
		return &Outcome{
			ProcessingStatus: models.PaymentNotificationLogStatusIgnoredNonTerminal,
			PaymentStatus:    cur.Status,
			SignatureValid:   true,
			Err:              fmt.Errorf("%w: %s", errNonTerminal, v.Status),
		}, nil
	}

	applied, err := e.payments.ApplyTerminal(ctx, &payment.Transition{
		PaymentID:        cur.ID,
		OrderID:          cur.OrderID,
		To:               target,
		GatewayPaymentID: n.PaymentID,
		StatusCode:       v.Status.Raw,
		RawResponse:      in.Raw,
		At:               e.now(),
	})
	if err != nil {
		return nil, err
	}
	if applied {
		return &Outcome{
			ProcessingStatus: models.PaymentNotificationLogStatusAccepted,
			PaymentStatus:    target,
			Applied:          true,
			SignatureValid:   true,
		}, nil
	}

	// Another delivery won the conditional write.
	cur, err = e.payments.Current(ctx, n.OrderID)
	if err != nil {
		return nil, err
	}
	return classifyTerminal(cur, n.PaymentID, v.Status), nil
}

// classifyTerminal decides between a retried delivery and a conflicting one
// for a payment that is no longer pending.
func classifyTerminal(cur *models.Payment, gatewayPaymentID string, status payhere.Status) *Outcome {
	out := &Outcome{PaymentStatus: cur.Status, SignatureValid: true}
	if _, terminal := status.PaymentStatus(); !terminal {
		out.ProcessingStatus = models.PaymentNotificationLogStatusIgnoredNonTerminal
		out.Err = fmt.Errorf("%w: %s after %s", errNonTerminal, status, cur.Status)
		return out
	}
	if cur.ProducedBy(gatewayPaymentID, status.Raw) {
		out.ProcessingStatus = models.PaymentNotificationLogStatusDuplicateIgnored
		out.Err = fmt.Errorf("payment already %s: %w", cur.Status, types.ErrDuplicateNotification)
		return out
	}
	out.ProcessingStatus = models.PaymentNotificationLogStatusRejectedStaleTerminal
	out.Err = fmt.Errorf("payment is %s, notification says %s: %w", cur.Status, status, types.ErrStaleTerminalOverwrite)
	return out
}
