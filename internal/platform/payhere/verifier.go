package payhere

import (
	"github.com/shopspring/decimal"
)

type Reason string

const (
	ReasonOK                Reason = "ok"
	ReasonMissingField      Reason = "missing_field"
	ReasonMalformedAmount   Reason = "malformed_amount"
	ReasonMerchantMismatch  Reason = "merchant_mismatch"
	ReasonSignatureMismatch Reason = "signature_mismatch"
	ReasonNotConfigured     Reason = "merchant_not_configured"
)

// Verification is the outcome of checking a notification's signature. Amount
// and Status are only meaningful when Authentic is true.
type Verification struct {
	Authentic bool
	Reason    Reason
	Amount    decimal.Decimal
	Status    Status
}

// Verify recomputes the notification signature with the merchant credentials
// and compares it with the supplied one. It has no side effects.
func Verify(n *Notification, merchantID, secret string) Verification {
	if merchantID == "" || secret == "" {
		return Verification{Reason: ReasonNotConfigured}
	}
	if n == nil || n.MerchantID == "" || n.OrderID == "" || n.PaymentID == "" || n.Amount == "" ||
		n.Currency == "" || n.StatusCode == "" || n.Signature == "" {
		return Verification{Reason: ReasonMissingField}
	}
	if n.MerchantID != merchantID {
		return Verification{Reason: ReasonMerchantMismatch}
	}
	amount, err := ParseAmount(n.Amount)
	if err != nil {
		return Verification{Reason: ReasonMalformedAmount}
	}
	status := ParseStatus(n.StatusCode)

	expected := NotificationHash(merchantID, n.OrderID, amount, n.Currency, status.Raw, secret)
	if !equalSignature(expected, n.Signature) {
		return Verification{Reason: ReasonSignatureMismatch}
	}
	return Verification{Authentic: true, Reason: ReasonOK, Amount: amount, Status: status}
}
