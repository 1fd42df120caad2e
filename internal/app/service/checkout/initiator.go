package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/fatflowers/gemcashier/internal/app/service/order"
	"github.com/fatflowers/gemcashier/internal/app/service/payment"
	"github.com/fatflowers/gemcashier/internal/models"
	"github.com/fatflowers/gemcashier/internal/platform/payhere"
	"github.com/fatflowers/gemcashier/pkg/config"
	"github.com/fatflowers/gemcashier/pkg/logctx"
	"github.com/fatflowers/gemcashier/pkg/metrics"
	"github.com/fatflowers/gemcashier/pkg/tool"
	"github.com/fatflowers/gemcashier/pkg/types"
)

type CreateOrderItem struct {
	ProductID string          `json:"product_id" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" example:"1000.00"`
}

type CreateOrderRequest struct {
	Currency       string                 `json:"currency" binding:"required" example:"LKR"`
	Items          []*CreateOrderItem     `json:"items" binding:"required"`
	BillingDetails *models.BillingDetails `json:"billing_details"`
}

type CheckoutRequest struct {
	OrderID  string          `json:"order_id" binding:"required"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"string" example:"1000.00"`
	Currency string          `json:"currency" binding:"required" example:"LKR"`
	// BillingDetails overrides the details captured with the order when set.
	BillingDetails *models.BillingDetails `json:"billing_details"`
}

// Initiator creates orders and the signed gateway requests that pay for them.
type Initiator struct {
	gateway  config.GatewayConfig
	orders   order.Store
	payments payment.Store
	log      *zap.SugaredLogger
}

func NewInitiator(cfg *config.Config, orders order.Store, payments payment.Store, log *zap.SugaredLogger) *Initiator {
	return &Initiator{gateway: cfg.Gateway, orders: orders, payments: payments, log: log}
}

func normalizeCurrency(c string) string {
	return strings.ToUpper(strings.TrimSpace(c))
}

// CreateOrder fixes the order total from its items. The total is never
// recomputed afterwards.
func (s *Initiator) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*models.Order, error) {
	if req == nil || len(req.Items) == 0 {
		return nil, fmt.Errorf("order has no items: %w", types.ErrInvalidAmount)
	}
	currency := normalizeCurrency(req.Currency)
	if len(currency) != 3 {
		return nil, fmt.Errorf("currency %q: %w", req.Currency, types.ErrInvalidAmount)
	}

	id := tool.GenerateOrderID()
	o := &models.Order{
		ID:            id,
		Status:        types.OrderStatusPending,
		PaymentStatus: types.OrderPaymentStatusPending,
		Currency:      currency,
	}
	for i, it := range req.Items {
		if it == nil || strings.TrimSpace(it.ProductID) == "" {
			return nil, fmt.Errorf("item %d has no product: %w", i, types.ErrInvalidAmount)
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("item %d quantity %d: %w", i, it.Quantity, types.ErrInvalidAmount)
		}
		if it.UnitPrice.IsNegative() || !it.UnitPrice.Equal(it.UnitPrice.Truncate(2)) {
			return nil, fmt.Errorf("item %d unit price %s: %w", i, it.UnitPrice, types.ErrInvalidAmount)
		}
		o.Items = append(o.Items, &models.OrderItem{
			ID:        tool.GenerateUUIDV7(),
			OrderID:   id,
			Position:  i,
			ProductID: strings.TrimSpace(it.ProductID),
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	o.TotalAmount = o.ItemsTotal()
	if !payhere.IsMinorUnitSafe(o.TotalAmount) {
		return nil, fmt.Errorf("order total %s: %w", o.TotalAmount, types.ErrInvalidAmount)
	}
	if req.BillingDetails != nil {
		o.BillingDetails = datatypes.NewJSONType(req.BillingDetails)
	}

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}
	logctx.FromCtx(ctx, s.log).Infow("order_created", "order_id", o.ID, "total", payhere.FormatAmount(o.TotalAmount), "currency", o.Currency, "items", len(o.Items))
	return o, nil
}

// Initiate records a new pending payment attempt and returns the signed
// fields the browser posts to the gateway.
func (s *Initiator) Initiate(ctx context.Context, req *CheckoutRequest) (form *payhere.CheckoutForm, err error) {
	start := time.Now()
	defer func() {
		metrics.IncCheckoutAttempt(checkoutResult(err))
		metrics.ObserveBusinessProcess("checkout", "initiate", start)
	}()

	if req == nil {
		return nil, fmt.Errorf("nil checkout request: %w", types.ErrInvalidAmount)
	}
	o, err := s.orders.Get(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() || !req.Amount.Equal(o.TotalAmount) {
		return nil, fmt.Errorf("amount %s for order total %s: %w", req.Amount, o.TotalAmount, types.ErrInvalidAmount)
	}
	if normalizeCurrency(req.Currency) != o.Currency {
		return nil, fmt.Errorf("currency %q for order currency %s: %w", req.Currency, o.Currency, types.ErrInvalidAmount)
	}
	if o.Status != types.OrderStatusPending {
		return nil, fmt.Errorf("order %s is %s: %w", o.ID, o.Status, types.ErrOrderNotPayable)
	}
	cur, err := s.payments.Current(ctx, o.ID)
	switch {
	case errors.Is(err, types.ErrPaymentNotFound):
	case err != nil:
		return nil, err
	case cur.IsTerminal():
		return nil, fmt.Errorf("order %s payment is %s: %w", o.ID, cur.Status, types.ErrOrderNotPayable)
	}

	p := &models.Payment{
		ID:       tool.GenerateUUIDV7(),
		OrderID:  o.ID,
		Amount:   o.TotalAmount,
		Currency: o.Currency,
		Status:   types.PaymentStatusPending,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, err
	}

	billing := o.GetBillingDetails()
	if req.BillingDetails != nil {
		billing = req.BillingDetails
	}
	form = &payhere.CheckoutForm{
		ActionURL:  s.gateway.CheckoutURL,
		MerchantID: s.gateway.MerchantID,
		ReturnURL:  s.gateway.ReturnURL,
		CancelURL:  s.gateway.CancelURL,
		NotifyURL:  s.gateway.NotifyURL,
		OrderID:    o.ID,
		Items:      itemsSummary(o.Items),
		Currency:   o.Currency,
		FirstName:  billing.FirstName,
		LastName:   billing.LastName,
		Email:      billing.Email,
		Phone:      billing.Phone,
		Address:    billing.Address,
		City:       billing.City,
		Country:    billing.Country,
	}
	form.Sign(o.TotalAmount, s.gateway.MerchantSecret)

	logctx.FromCtx(ctx, s.log).Infow("checkout_initiated", "order_id", o.ID, "payment_id", p.ID, "attempt", p.Attempt, "amount", form.Amount, "currency", form.Currency)
	return form, nil
}

func itemsSummary(items []*models.OrderItem) string {
	names := lo.Map(items, func(it *models.OrderItem, _ int) string {
		if it.Quantity == 1 {
			return it.ProductID
		}
		return fmt.Sprintf("%s x%d", it.ProductID, it.Quantity)
	})
	return strings.Join(names, ", ")
}

func checkoutResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, types.ErrUnknownOrder):
		return "unknown_order"
	case errors.Is(err, types.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, types.ErrOrderNotPayable):
		return "not_payable"
	default:
		return "error"
	}
}
