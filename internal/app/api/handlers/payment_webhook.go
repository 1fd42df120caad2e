package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	nh "github.com/fatflowers/gemcashier/internal/app/service/notification_handler"
	"github.com/fatflowers/gemcashier/pkg/logctx"
	"github.com/fatflowers/gemcashier/pkg/response"
	"github.com/fatflowers/gemcashier/pkg/types"
)

// @Summary      Gateway notification
// @Description  Server-to-server payment notification. Accepts form or JSON bodies. Every recorded delivery is acknowledged with 200; the gateway retries on 5xx.
// @Tags         Webhook
// @Accept       x-www-form-urlencoded
// @Accept       json
// @Produce      json
// @Param        merchant_id formData string true "Merchant ID"
// @Param        order_id formData string true "Order ID"
// @Param        payment_id formData string true "Gateway payment ID"
// @Param        payhere_amount formData string true "Amount"
// @Param        payhere_currency formData string true "Currency"
// @Param        status_code formData string true "Gateway status code"
// @Param        md5sig formData string true "Signature"
// @Success      200  {object}  handlers.RespOK
// @Failure      503  {object}  handlers.RespOK
// @Router       /payments/notify [post]
func ApiPaymentNotify(h *nh.NotificationHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		l := logctx.FromGin(c, h.Logger)
		outcome, err := h.HandleNotification(c)
		if err != nil {
			if errors.Is(err, types.ErrStoreUnavailable) {
				l.Errorw("webhook_store_unavailable", "error", err)
				c.JSON(http.StatusServiceUnavailable, response.ErrorT[any](response.APIResponseCodeUnavailable, nil))
				return
			}
			l.Warnw("webhook_unreadable", "error", err)
			c.JSON(http.StatusBadRequest, response.ErrorT[any](response.APIResponseCodeBadRequest, nil))
			return
		}
		l.Infow("webhook_handled", "processing_status", outcome.ProcessingStatus)
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}
