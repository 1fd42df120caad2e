package notification_handler

import (
	"context"
	"time"

	"github.com/fatflowers/gemcashier/internal/platform/payhere"
)

type NotificationParser interface {
	GetNotificationTime(ctx context.Context) time.Time
	GetOrderID(ctx context.Context) string
	GetGatewayPaymentID(ctx context.Context) string
	GetNotification(ctx context.Context) *payhere.Notification
	GetData(ctx context.Context) any
}
