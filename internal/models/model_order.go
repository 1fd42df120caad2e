package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/fatflowers/gemcashier/pkg/types"
)

// BillingDetails is forwarded to the gateway as-is.
type BillingDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Country   string `json:"country"`
}

// Order is a storefront purchase. TotalAmount is fixed at creation and equals
// the sum of quantity*unit_price over Items.
type Order struct {
	ID             string                              `gorm:"column:id;type:varchar(64);primary_key" json:"id"`
	Status         types.OrderStatus                   `gorm:"column:status;type:varchar(32);not null;index" json:"status"`
	PaymentStatus  types.OrderPaymentStatus            `gorm:"column:payment_status;type:varchar(32);not null" json:"payment_status"`
	TotalAmount    decimal.Decimal                     `gorm:"column:total_amount;type:numeric(15,2);not null" json:"total_amount"`
	Currency       string                              `gorm:"column:currency;type:varchar(8);not null" json:"currency"`
	BillingDetails datatypes.JSONType[*BillingDetails] `gorm:"column:billing_details;type:jsonb" json:"billing_details"`
	Items          []*OrderItem                        `gorm:"foreignKey:OrderID;references:ID" json:"items"`
	CreatedAt      time.Time                           `json:"created_at"`
	UpdatedAt      time.Time                           `json:"updated_at"`
}

func (Order) TableName() string { return "orders" }

// ItemsTotal sums quantity*unit_price over the order's items.
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	if o == nil {
		return total
	}
	for _, it := range o.Items {
		total = total.Add(it.LineTotal())
	}
	return total
}

func (o *Order) GetBillingDetails() *BillingDetails {
	if o == nil || o.BillingDetails.Data() == nil {
		return &BillingDetails{}
	}
	return o.BillingDetails.Data()
}

// OrderItem is one line of an order, kept in submission order via Position.
type OrderItem struct {
	ID        string          `gorm:"column:id;type:varchar(64);primary_key" json:"id"`
	OrderID   string          `gorm:"column:order_id;type:varchar(64);not null;index:idx_order_item_position,priority:1" json:"order_id"`
	Position  int             `gorm:"column:position;not null;index:idx_order_item_position,priority:2" json:"position"`
	ProductID string          `gorm:"column:product_id;type:varchar(64);not null" json:"product_id"`
	Quantity  int64           `gorm:"column:quantity;not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:numeric(15,2);not null" json:"unit_price"`
	CreatedAt time.Time       `json:"created_at"`
}

func (OrderItem) TableName() string { return "order_items" }

func (it *OrderItem) LineTotal() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity))
}
