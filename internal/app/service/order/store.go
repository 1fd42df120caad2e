package order

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fatflowers/gemcashier/internal/models"
	"github.com/fatflowers/gemcashier/pkg/types"
)

// Store persists orders and their line items.
type Store interface {
	// Create inserts the order and its items in one transaction.
	Create(ctx context.Context, o *models.Order) error
	// Get loads an order with items; types.ErrUnknownOrder if absent.
	Get(ctx context.Context, id string) (*models.Order, error)
	// TransitionStatus moves the order from one status to another only if it
	// is still in from; types.ErrInvalidStatusTransition otherwise.
	TransitionStatus(ctx context.Context, id string, from, to types.OrderStatus) error
}

type GormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &GormStore{db: db}
}

func (s *GormStore) Create(ctx context.Context, o *models.Order) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Items are written explicitly so their positions are preserved.
		if err := tx.Omit("Items").Create(o).Error; err != nil {
			return err
		}
		if len(o.Items) == 0 {
			return nil
		}
		return tx.Create(o.Items).Error
	})
	if err != nil {
		return fmt.Errorf("create order %s: %w: %w", o.ID, types.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *GormStore) Get(ctx context.Context, id string) (*models.Order, error) {
	var o models.Order
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Where("id = ?", id).
		First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %s: %w", id, types.ErrUnknownOrder)
		}
		return nil, fmt.Errorf("get order %s: %w: %w", id, types.ErrStoreUnavailable, err)
	}
	return &o, nil
}

func (s *GormStore) TransitionStatus(ctx context.Context, id string, from, to types.OrderStatus) error {
	res := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return fmt.Errorf("transition order %s: %w: %w", id, types.ErrStoreUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order %s is no longer %s: %w", id, from, types.ErrInvalidStatusTransition)
	}
	return nil
}
