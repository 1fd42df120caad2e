package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/fatflowers/gemcashier/pkg/types"
)

// Payment is one checkout attempt for an order. Re-attempts add a row with a
// higher Attempt; a terminal row is never modified.
type Payment struct {
	ID               string              `gorm:"column:id;type:varchar(64);primary_key" json:"id"`
	OrderID          string              `gorm:"column:order_id;type:varchar(64);not null;uniqueIndex:uniq_payment_order_attempt,priority:1" json:"order_id"`
	Attempt          int                 `gorm:"column:attempt;not null;uniqueIndex:uniq_payment_order_attempt,priority:2" json:"attempt"`
	Amount           decimal.Decimal     `gorm:"column:amount;type:numeric(15,2);not null" json:"amount"`
	Currency         string              `gorm:"column:currency;type:varchar(8);not null" json:"currency"`
	GatewayPaymentID *string             `gorm:"column:gateway_payment_id;type:varchar(64);index" json:"gateway_payment_id"`
	Status           types.PaymentStatus `gorm:"column:status;type:varchar(32);not null;index" json:"status"`
	// StatusCode is the gateway code that produced the terminal status.
	StatusCode     *string         `gorm:"column:status_code;type:varchar(16)" json:"status_code"`
	SignatureValid bool            `gorm:"column:signature_valid;not null;default:false" json:"signature_valid"`
	RawResponse    *datatypes.JSON `gorm:"column:raw_response;type:jsonb" json:"raw_response"`
	CompletedAt    *time.Time      `gorm:"column:completed_at" json:"completed_at"`
	CreatedAt      time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (Payment) TableName() string { return "payments" }

func (p *Payment) IsTerminal() bool {
	return p != nil && p.Status.IsTerminal()
}

// ProducedBy reports whether the terminal state was written by a
// notification carrying the same gateway payment id and status code.
func (p *Payment) ProducedBy(gatewayPaymentID, statusCode string) bool {
	if p == nil || p.GatewayPaymentID == nil || p.StatusCode == nil {
		return false
	}
	return *p.GatewayPaymentID == gatewayPaymentID && *p.StatusCode == statusCode
}
