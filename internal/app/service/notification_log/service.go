package notification_log

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fatflowers/gemcashier/internal/models"
	"github.com/fatflowers/gemcashier/pkg/logctx"
	"github.com/fatflowers/gemcashier/pkg/tool"
	"github.com/fatflowers/gemcashier/pkg/types"
)

// Store is the append-only notification audit trail.
type Store interface {
	Append(ctx context.Context, log *models.PaymentNotificationLog) error
	ListByOrder(ctx context.Context, orderID string, limit int) ([]*models.PaymentNotificationLog, error)
}

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

func New(db *gorm.DB, log *zap.SugaredLogger) Store { return &Service{db: db, log: log} }

// Append synchronously inserts a log row. Rows are never updated, so Create
// is used rather than Save.
func (s *Service) Append(ctx context.Context, log *models.PaymentNotificationLog) error {
	if log == nil {
		return nil
	}
	if log.ID == "" {
		log.ID = tool.GenerateUUIDV7()
	}
	if log.ReceivedAt.IsZero() {
		log.ReceivedAt = time.Now()
	}
	if err := s.db.WithContext(ctx).Create(log).Error; err != nil {
		logctx.FromCtx(ctx, s.log).Errorw("failed to save notification log", "order_id", log.OrderID, "error", err)
		return fmt.Errorf("append notification log: %w: %w", types.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *Service) ListByOrder(ctx context.Context, orderID string, limit int) ([]*models.PaymentNotificationLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []*models.PaymentNotificationLog
	if err := s.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("received_at asc").
		Order("id asc").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list notification logs: %w: %w", types.ErrStoreUnavailable, err)
	}
	return rows, nil
}

var Module = fx.Options(
	fx.Provide(New),
)
