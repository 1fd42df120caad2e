package handlers

import (
	"time"

	"github.com/samber/lo"

	"github.com/fatflowers/gemcashier/internal/models"
	"github.com/fatflowers/gemcashier/internal/platform/payhere"
	"github.com/fatflowers/gemcashier/pkg/types"
)

// Views render amounts as fixed two-decimal strings.

type OrderItemView struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	UnitPrice string `json:"unit_price" example:"1000.00"`
}

type OrderView struct {
	ID            string                   `json:"id"`
	Status        types.OrderStatus        `json:"status"`
	PaymentStatus types.OrderPaymentStatus `json:"payment_status"`
	TotalAmount   string                   `json:"total_amount" example:"1000.00"`
	Currency      string                   `json:"currency" example:"LKR"`
	Items         []OrderItemView          `json:"items"`
	CreatedAt     time.Time                `json:"created_at"`
}

func toOrderView(o *models.Order) *OrderView {
	return &OrderView{
		ID:            o.ID,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		TotalAmount:   payhere.FormatAmount(o.TotalAmount),
		Currency:      o.Currency,
		Items: lo.Map(o.Items, func(it *models.OrderItem, _ int) OrderItemView {
			return OrderItemView{ProductID: it.ProductID, Quantity: it.Quantity, UnitPrice: payhere.FormatAmount(it.UnitPrice)}
		}),
		CreatedAt: o.CreatedAt,
	}
}

type PaymentView struct {
	ID               string              `json:"id"`
	OrderID          string              `json:"order_id"`
	Attempt          int                 `json:"attempt"`
	Amount           string              `json:"amount" example:"1000.00"`
	Currency         string              `json:"currency" example:"LKR"`
	GatewayPaymentID string              `json:"gateway_payment_id,omitempty"`
	Status           types.PaymentStatus `json:"status"`
	StatusCode       string              `json:"status_code,omitempty"`
	SignatureValid   bool                `json:"signature_valid"`
	CompletedAt      *time.Time          `json:"completed_at,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
}

func toPaymentView(p *models.Payment) PaymentView {
	return PaymentView{
		ID:               p.ID,
		OrderID:          p.OrderID,
		Attempt:          p.Attempt,
		Amount:           payhere.FormatAmount(p.Amount),
		Currency:         p.Currency,
		GatewayPaymentID: lo.FromPtr(p.GatewayPaymentID),
		Status:           p.Status,
		StatusCode:       lo.FromPtr(p.StatusCode),
		SignatureValid:   p.SignatureValid,
		CompletedAt:      p.CompletedAt,
		CreatedAt:        p.CreatedAt,
	}
}

func toPaymentViews(ps []*models.Payment) []PaymentView {
	return lo.Map(ps, func(p *models.Payment, _ int) PaymentView { return toPaymentView(p) })
}
