package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fatflowers/gemcashier/internal/models"
	"github.com/fatflowers/gemcashier/pkg/types"
)

// Transition describes the move of a pending payment to a terminal status and
// the matching order update.
type Transition struct {
	PaymentID        string
	OrderID          string
	To               types.PaymentStatus
	GatewayPaymentID string
	StatusCode       string
	RawResponse      datatypes.JSON
	At               time.Time
}

// cancelsOrder reports whether the order itself is cancelled by the outcome.
func (t *Transition) cancelsOrder() bool {
	return t.To == types.PaymentStatusFailed
}

// Store persists payment attempts.
type Store interface {
	// Create inserts p as the next attempt for its order and sets p.Attempt.
	Create(ctx context.Context, p *models.Payment) error
	// Current returns the latest attempt for an order; types.ErrPaymentNotFound if none.
	Current(ctx context.Context, orderID string) (*models.Payment, error)
	// ApplyTerminal performs t only if the payment is still pending. applied
	// is false when another writer got there first.
	ApplyTerminal(ctx context.Context, t *Transition) (applied bool, err error)
	// ListStalePending returns pending payments created before olderThan, oldest first.
	ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]*models.Payment, error)
}

type GormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &GormStore{db: db}
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, types.ErrStoreUnavailable, err)
}

func (s *GormStore) Create(ctx context.Context, p *models.Payment) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last int
		if err := tx.Model(&models.Payment{}).
			Where("order_id = ?", p.OrderID).
			Select("COALESCE(MAX(attempt), 0)").
			Scan(&last).Error; err != nil {
			return err
		}
		p.Attempt = last + 1
		// The unique (order_id, attempt) index rejects a concurrent twin.
		return tx.Create(p).Error
	})
	if err != nil {
		return unavailable("create payment", err)
	}
	return nil
}

func (s *GormStore) Current(ctx context.Context, orderID string) (*models.Payment, error) {
	var p models.Payment
	err := s.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("attempt desc").
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %s: %w", orderID, types.ErrPaymentNotFound)
		}
		return nil, unavailable("get current payment", err)
	}
	return &p, nil
}

func (s *GormStore) ApplyTerminal(ctx context.Context, t *Transition) (bool, error) {
	if !t.To.IsTerminal() {
		return false, fmt.Errorf("transition to non-terminal status %q", t.To)
	}
	applied := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"status":             t.To,
			"gateway_payment_id": t.GatewayPaymentID,
			"status_code":        t.StatusCode,
			"signature_valid":    true,
			"completed_at":       t.At,
			"updated_at":         t.At,
		}
		if len(t.RawResponse) > 0 {
			updates["raw_response"] = t.RawResponse
		}
		res := tx.Model(&models.Payment{}).
			Where("id = ? AND status = ?", t.PaymentID, types.PaymentStatusPending).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		orderUpdates := map[string]any{
			"payment_status": t.To.OrderPaymentStatus(),
			"updated_at":     t.At,
		}
		q := tx.Model(&models.Order{}).Where("id = ?", t.OrderID)
		if t.cancelsOrder() {
			orderUpdates["status"] = gorm.Expr("CASE WHEN status = ? THEN ? ELSE status END", types.OrderStatusPending, types.OrderStatusCancelled)
		}
		if err := q.Updates(orderUpdates).Error; err != nil {
			return err
		}
		applied = true
		return nil
	})
	if err != nil {
		return false, unavailable("apply terminal payment status", err)
	}
	return applied, nil
}

func (s *GormStore) ListStalePending(ctx context.Context, olderThan time.Time, limit int) ([]*models.Payment, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []*models.Payment
	if err := s.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", types.PaymentStatusPending, olderThan).
		Order("created_at asc").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, unavailable("list stale payments", err)
	}
	return rows, nil
}
