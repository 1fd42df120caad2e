package types

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderPaymentStatus is the order-level view of payment. It mirrors the
// terminal outcome of the order's current payment attempt.
type OrderPaymentStatus string

const (
	OrderPaymentStatusPending   OrderPaymentStatus = "pending"
	OrderPaymentStatusCompleted OrderPaymentStatus = "completed"
	OrderPaymentStatusFailed    OrderPaymentStatus = "failed"
)
