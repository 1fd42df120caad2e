package order

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fatflowers/gemcashier/pkg/logctx"
	"github.com/fatflowers/gemcashier/pkg/types"
)

// allowedTransitions is the fulfilment lifecycle driven by back-office staff.
// Payment-driven cancellation happens in the reconciliation engine instead.
var allowedTransitions = map[types.OrderStatus][]types.OrderStatus{
	types.OrderStatusPending:    {types.OrderStatusProcessing, types.OrderStatusCancelled},
	types.OrderStatusProcessing: {types.OrderStatusShipped, types.OrderStatusCancelled},
	types.OrderStatusShipped:    {types.OrderStatusDelivered},
}

func CanTransition(from, to types.OrderStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type Service struct {
	store Store
	log   *zap.SugaredLogger
}

func NewService(store Store, log *zap.SugaredLogger) *Service {
	return &Service{store: store, log: log}
}

// Transition applies an admin status change. Orders only enter processing
// once their payment has completed.
func (s *Service) Transition(ctx context.Context, id string, to types.OrderStatus) error {
	if !to.Valid() {
		return fmt.Errorf("unknown status %q: %w", to, types.ErrInvalidStatusTransition)
	}
	o, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if !CanTransition(o.Status, to) {
		return fmt.Errorf("%s -> %s: %w", o.Status, to, types.ErrInvalidStatusTransition)
	}
	if to == types.OrderStatusProcessing && o.PaymentStatus != types.OrderPaymentStatusCompleted {
		return fmt.Errorf("order %s payment is %s: %w", id, o.PaymentStatus, types.ErrInvalidStatusTransition)
	}
	if err := s.store.TransitionStatus(ctx, id, o.Status, to); err != nil {
		return err
	}
	logctx.FromCtx(ctx, s.log).Infow("order_status_changed", "order_id", id, "from", o.Status, "to", to)
	return nil
}
