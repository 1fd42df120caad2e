package verification

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/fatflowers/gemcashier/internal/app/service/payment"
	"github.com/fatflowers/gemcashier/internal/platform/payhere"
	"github.com/fatflowers/gemcashier/pkg/config"
	"github.com/fatflowers/gemcashier/pkg/logctx"
	"github.com/fatflowers/gemcashier/pkg/types"
)

// Cache holds verification results keyed by order id.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Result is the authoritative payment state reported to the storefront.
type Result struct {
	OrderID  string                   `json:"order_id"`
	Status   types.VerificationStatus `json:"status" example:"completed"`
	Amount   string                   `json:"amount,omitempty" example:"1000.00"`
	Currency string                   `json:"currency,omitempty" example:"LKR"`
}

func (r *Result) terminal() bool {
	return types.PaymentStatus(r.Status).IsTerminal()
}

// Service answers status queries from the payment store only. Redirect
// parameters never reach it.
type Service struct {
	payments payment.Store
	cache    Cache
	ttl      time.Duration
	log      *zap.SugaredLogger
}

// NewService builds the service; cache may be nil.
func NewService(cfg *config.Config, payments payment.Store, cache Cache, log *zap.SugaredLogger) *Service {
	return &Service{payments: payments, cache: cache, ttl: cfg.Redis.ResultTTL, log: log}
}

func (s *Service) Status(ctx context.Context, orderID string) (*Result, error) {
	l := logctx.FromCtx(ctx, s.log)
	if s.cache != nil {
		var cached Result
		found, err := s.cache.Get(ctx, orderID, &cached)
		if err != nil {
			l.Warnw("verification cache get failed", "order_id", orderID, "error", err)
		} else if found && cached.terminal() {
			return &cached, nil
		}
	}

	p, err := s.payments.Current(ctx, orderID)
	if errors.Is(err, types.ErrPaymentNotFound) {
		return &Result{OrderID: orderID, Status: types.VerificationStatusNotFound}, nil
	}
	if err != nil {
		return nil, err
	}
	res := &Result{
		OrderID:  orderID,
		Status:   types.VerificationStatus(p.Status),
		Amount:   payhere.FormatAmount(p.Amount),
		Currency: p.Currency,
	}
	// Terminal payments never change, so only they are cached.
	if s.cache != nil && res.terminal() {
		if err := s.cache.Set(ctx, orderID, res, s.ttl); err != nil {
			l.Warnw("verification cache set failed", "order_id", orderID, "error", err)
		}
	}
	return res, nil
}
