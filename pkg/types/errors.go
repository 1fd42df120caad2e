package types

import "errors"

var (
	// ErrInvalidAmount is returned to checkout callers for non-positive or
	// mismatching amounts and currencies.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrSignatureMismatch marks notifications whose signature does not verify.
	ErrSignatureMismatch = errors.New("signature mismatch")
	// ErrUnknownOrder is returned when an order id does not resolve.
	ErrUnknownOrder = errors.New("unknown order")
	// ErrPaymentNotFound is returned when an order has no payment attempt yet.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrDuplicateNotification marks a retried delivery that was already applied.
	ErrDuplicateNotification = errors.New("duplicate notification")
	// ErrStaleTerminalOverwrite marks a notification that disagrees with an
	// already terminal payment.
	ErrStaleTerminalOverwrite = errors.New("stale terminal overwrite")
	// ErrAmountMismatch marks a notification whose amount or currency differs
	// from the recorded payment.
	ErrAmountMismatch = errors.New("amount mismatch")
	// ErrOrderNotPayable is returned when checkout is attempted on an order
	// that is cancelled or already has a terminal payment.
	ErrOrderNotPayable = errors.New("order not payable")
	// ErrInvalidStatusTransition is returned for illegal order status changes.
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	// ErrStoreUnavailable wraps infrastructure failures from the stores.
	ErrStoreUnavailable = errors.New("store unavailable")
)
