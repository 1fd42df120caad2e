package notification_handler

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/fatflowers/gemcashier/internal/app/service/reconcile"
	"github.com/fatflowers/gemcashier/pkg/logctx"
)

type NotificationHandler struct {
	engine *reconcile.Engine
	Logger *zap.SugaredLogger
}

func NewNotificationHandler(engine *reconcile.Engine, log *zap.SugaredLogger) *NotificationHandler {
	return &NotificationHandler{engine: engine, Logger: log}
}

// HandleNotification parses one webhook delivery and hands it to the
// reconciliation engine. A non-nil error means the delivery was not recorded.
func (h *NotificationHandler) HandleNotification(c *gin.Context) (*reconcile.Outcome, error) {
	ctx := c.Request.Context()
	parser, err := GetPayHereNotificationParser(c, time.Now())
	if err != nil {
		return nil, err
	}

	dataBytes, err := json.Marshal(parser.GetData(ctx))
	if err != nil {
		return nil, err
	}
	var traceID string
	if v, ok := c.Get(logctx.GinTraceIDKey); ok {
		traceID, _ = v.(string)
	}

	logctx.FromGin(c, h.Logger).Debugw("notification_received", "order_id", parser.GetOrderID(ctx), "gateway_payment_id", parser.GetGatewayPaymentID(ctx))
	return h.engine.HandleNotification(ctx, &reconcile.Inbound{
		Notification: parser.GetNotification(ctx),
		Raw:          datatypes.JSON(dataBytes),
		TraceID:      traceID,
		ReceivedAt:   parser.GetNotificationTime(ctx),
	})
}

var Module = fx.Options(
	fx.Provide(NewNotificationHandler),
)
