package statistics

import (
	"context"
	"fmt"
	"sync"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fatflowers/gemcashier/internal/models"
	"github.com/fatflowers/gemcashier/internal/platform/payhere"
	"github.com/fatflowers/gemcashier/pkg/types"
)

type StatisticType string

const (
	StatisticTypePaymentCountByStatus StatisticType = "payment_count_by_status"
	StatisticTypeDailyPaymentCount    StatisticType = "daily_payment_count"
	StatisticTypeDailyGmv             StatisticType = "daily_gmv"
	StatisticTypeTotalGmv             StatisticType = "total_gmv"
)

// filterFields are the payment columns statistics may be narrowed by.
var filterFields = map[string]bool{
	"currency":   true,
	"created_at": true,
	"status":     true,
}

type PaymentStatisticDataItem struct {
	ID StatisticType `json:"id"`
}

type PaymentStatisticRequest struct {
	Filters   []*types.CommonFilter       `json:"filters"`
	DataItems []*PaymentStatisticDataItem `json:"data_items"`
}

type PaymentStatisticResponseDataItem struct {
	Date   string `json:"date,omitempty"`
	Label  string `json:"label,omitempty"`
	Count  int64  `json:"count"`
	Amount string `json:"amount,omitempty" example:"1000.00"`
}

type PaymentStatisticResponse struct {
	DataItems map[StatisticType][]PaymentStatisticResponseDataItem `json:"data_items"`
}

type row struct {
	Date   string
	Label  string
	Count  int64
	Amount decimal.NullDecimal
}

func (r row) item() PaymentStatisticResponseDataItem {
	it := PaymentStatisticResponseDataItem{Date: r.Date, Label: r.Label, Count: r.Count}
	if r.Amount.Valid {
		it.Amount = payhere.FormatAmount(r.Amount.Decimal)
	}
	return it
}

// Service aggregates payment attempts for the back office.
type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{db: db} }

// dayExpr renders created_at as YYYY-MM-DD for the active dialect.
func (s *Service) dayExpr() string {
	if s.db.Dialector.Name() == "sqlite" {
		return "strftime('%Y-%m-%d', created_at)"
	}
	return "TO_CHAR(created_at, 'YYYY-MM-DD')"
}

func (s *Service) base(ctx context.Context, filters []*types.CommonFilter) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&models.Payment{})
	if len(filters) > 0 {
		q = q.Where(clause.Where{Exprs: []clause.Expression{types.FiltersAnd(filters)}})
	}
	return q
}

func (s *Service) getPaymentCountByStatus(ctx context.Context, request *PaymentStatisticRequest) ([]row, error) {
	var rows []row
	err := s.base(ctx, request.Filters).
		Select("status AS label, count(*) AS count").
		Group("status").
		Order("label").
		Scan(&rows).Error
	return rows, err
}

func (s *Service) getDailyPaymentCount(ctx context.Context, request *PaymentStatisticRequest) ([]row, error) {
	var rows []row
	day := s.dayExpr()
	err := s.base(ctx, request.Filters).
		Select(day + " AS date, count(*) AS count").
		Group(day).
		Order("date").
		Scan(&rows).Error
	return rows, err
}

func (s *Service) getDailyGmv(ctx context.Context, request *PaymentStatisticRequest) ([]row, error) {
	var rows []row
	day := s.dayExpr()
	err := s.base(ctx, request.Filters).
		Select(day+" AS date, currency AS label, count(*) AS count, sum(amount) AS amount").
		Where("status = ?", types.PaymentStatusCompleted).
		Group(day).
		Group("currency").
		Order(clause.OrderByColumn{Column: clause.Column{Name: "date"}, Desc: true}).
		Order("label").
		Scan(&rows).Error
	return rows, err
}

func (s *Service) getTotalGmv(ctx context.Context, request *PaymentStatisticRequest) ([]row, error) {
	var rows []row
	err := s.base(ctx, request.Filters).
		Select("currency AS label, count(*) AS count, sum(amount) AS amount").
		Where("status = ?", types.PaymentStatusCompleted).
		Group("currency").
		Order("label").
		Scan(&rows).Error
	return rows, err
}

func (s *Service) getPaymentStatistic(ctx context.Context, request *PaymentStatisticRequest, dataItem *PaymentStatisticDataItem) ([]PaymentStatisticResponseDataItem, error) {
	var (
		rows []row
		err  error
	)
	switch dataItem.ID {
	case StatisticTypePaymentCountByStatus:
		rows, err = s.getPaymentCountByStatus(ctx, request)
	case StatisticTypeDailyPaymentCount:
		rows, err = s.getDailyPaymentCount(ctx, request)
	case StatisticTypeDailyGmv:
		rows, err = s.getDailyGmv(ctx, request)
	case StatisticTypeTotalGmv:
		rows, err = s.getTotalGmv(ctx, request)
	default:
		return nil, fmt.Errorf("invalid data item id: %s", dataItem.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", dataItem.ID, types.ErrStoreUnavailable, err)
	}
	return lo.Map(rows, func(r row, _ int) PaymentStatisticResponseDataItem { return r.item() }), nil
}

// GetPaymentStatistic computes the requested data items concurrently.
func (s *Service) GetPaymentStatistic(ctx context.Context, request *PaymentStatisticRequest) (*PaymentStatisticResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("nil request")
	}
	for _, f := range request.Filters {
		if err := f.Validate(filterFields); err != nil {
			return nil, err
		}
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(request.DataItems))
	resChan := make(chan *lo.Entry[StatisticType, []PaymentStatisticResponseDataItem], len(request.DataItems))

	for _, item := range request.DataItems {
		wg.Add(1)
		go func(di *PaymentStatisticDataItem) {
			defer wg.Done()
			res, err := s.getPaymentStatistic(ctx, request, di)
			if err != nil {
				errChan <- err
				return
			}
			resChan <- &lo.Entry[StatisticType, []PaymentStatisticResponseDataItem]{Key: di.ID, Value: res}
		}(item)
	}

	wg.Wait()
	close(errChan)
	close(resChan)
	if err := <-errChan; err != nil {
		return nil, err
	}

	results := make(map[StatisticType][]PaymentStatisticResponseDataItem, len(request.DataItems))
	for entry := range resChan {
		results[entry.Key] = entry.Value
	}
	return &PaymentStatisticResponse{DataItems: results}, nil
}

var Module = fx.Options(
	fx.Provide(New),
)
