package payment

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fatflowers/gemcashier/internal/models"
	"github.com/fatflowers/gemcashier/pkg/types"
)

// scanFields are the payment columns the back office may filter and sort on.
var scanFields = map[string]bool{
	"order_id":           true,
	"status":             true,
	"currency":           true,
	"amount":             true,
	"gateway_payment_id": true,
	"signature_valid":    true,
	"created_at":         true,
	"completed_at":       true,
}

type ScanPaymentsRequest struct {
	Filters   []*types.CommonFilter `json:"filters"`
	From      int                   `json:"from"`
	Size      int                   `json:"size"`
	SortBy    string                `json:"sort_by"`
	SortOrder string                `json:"sort_order"`
}

type ScanPaymentsResponse struct {
	Items []*models.Payment `json:"items"`
	Total int64             `json:"total"`
}

// AdminService serves back-office payment queries straight from the database.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// ScanPayments implements paginated/admin listing with filters
func (s *AdminService) ScanPayments(ctx context.Context, req *ScanPaymentsRequest) (*ScanPaymentsResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}
	for _, f := range req.Filters {
		if err := f.Validate(scanFields); err != nil {
			return nil, err
		}
	}
	if req.SortBy != "" && !scanFields[req.SortBy] {
		return nil, fmt.Errorf("sort field not allowed: %q", req.SortBy)
	}
	if req.Size <= 0 || req.Size > 200 {
		req.Size = 20
	}
	if req.From < 0 {
		req.From = 0
	}

	tx := s.db.WithContext(ctx).Model(&models.Payment{})
	if len(req.Filters) > 0 {
		tx = tx.Where(clause.Where{Exprs: []clause.Expression{types.FiltersAnd(req.Filters)}})
	}
	// Count and Find must not share one mutable statement.
	tx = tx.Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, unavailable("count payments", err)
	}

	q := tx.Limit(req.Size).Offset(req.From)
	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	q = q.Order(clause.OrderBy{Columns: []clause.OrderByColumn{{Column: clause.Column{Name: sortBy}, Desc: req.SortOrder != "asc"}}})

	var rows []*models.Payment
	if err := q.Find(&rows).Error; err != nil {
		return nil, unavailable("list payments", err)
	}
	return &ScanPaymentsResponse{Items: rows, Total: total}, nil
}
