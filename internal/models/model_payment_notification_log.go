package models

import (
	"time"

	"gorm.io/datatypes"
)

type PaymentNotificationLogStatus string

const (
	PaymentNotificationLogStatusAccepted              PaymentNotificationLogStatus = "accepted"
	PaymentNotificationLogStatusDuplicateIgnored      PaymentNotificationLogStatus = "duplicate_ignored"
	PaymentNotificationLogStatusRejectedBadSignature  PaymentNotificationLogStatus = "rejected_bad_signature"
	PaymentNotificationLogStatusRejectedUnknownOrder  PaymentNotificationLogStatus = "rejected_unknown_order"
	PaymentNotificationLogStatusRejectedAmount        PaymentNotificationLogStatus = "rejected_amount_mismatch"
	PaymentNotificationLogStatusRejectedStaleTerminal PaymentNotificationLogStatus = "rejected_stale_terminal"
	PaymentNotificationLogStatusIgnoredNonTerminal    PaymentNotificationLogStatus = "ignored_non_terminal"
)

// PaymentNotificationLog is an append-only record of every inbound gateway
// notification delivery, kept for forensic replay.
type PaymentNotificationLog struct {
	ID               string                       `gorm:"column:id;type:varchar(64);primary_key" json:"id"`
	OrderID          string                       `gorm:"column:order_id;type:varchar(64);index" json:"order_id"`
	GatewayPaymentID string                       `gorm:"column:gateway_payment_id;type:varchar(64);index" json:"gateway_payment_id"`
	StatusCode       string                       `gorm:"column:status_code;type:varchar(16)" json:"status_code"`
	TraceID          string                       `gorm:"column:trace_id;type:varchar(128)" json:"trace_id"`
	SignatureValid   bool                         `gorm:"column:signature_valid;not null" json:"signature_valid"`
	Data             datatypes.JSON               `gorm:"column:data;type:jsonb" json:"data"`
	ProcessingStatus PaymentNotificationLogStatus `gorm:"column:processing_status;type:varchar(64);not null" json:"processing_status"`
	Detail           string                       `gorm:"column:detail;type:text" json:"detail"`
	ReceivedAt       time.Time                    `gorm:"column:received_at" json:"received_at"`
	CreatedAt        time.Time                    `json:"created_at"`
}

func (PaymentNotificationLog) TableName() string { return "payment_notification_log" }
