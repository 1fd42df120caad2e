package types

// PaymentStatus is the gateway-reported outcome recorded on a payment attempt.
type PaymentStatus string

const (
	PaymentStatusPending     PaymentStatus = "pending"
	PaymentStatusCompleted   PaymentStatus = "completed"
	PaymentStatusFailed      PaymentStatus = "failed"
	PaymentStatusChargedback PaymentStatus = "chargedback"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s PaymentStatus) IsTerminal() bool {
	switch s {
	case PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusChargedback:
		return true
	}
	return false
}

// OrderPaymentStatus maps a terminal payment outcome onto the order.
// Chargebacks surface as failed on the order; order.status is left alone.
func (s PaymentStatus) OrderPaymentStatus() OrderPaymentStatus {
	switch s {
	case PaymentStatusCompleted:
		return OrderPaymentStatusCompleted
	case PaymentStatusFailed, PaymentStatusChargedback:
		return OrderPaymentStatusFailed
	}
	return OrderPaymentStatusPending
}

// VerificationStatus is what the client-facing verification query reports.
type VerificationStatus string

const (
	VerificationStatusPending     VerificationStatus = "pending"
	VerificationStatusCompleted   VerificationStatus = "completed"
	VerificationStatusFailed      VerificationStatus = "failed"
	VerificationStatusChargedback VerificationStatus = "chargedback"
	VerificationStatusNotFound    VerificationStatus = "not_found"
)
