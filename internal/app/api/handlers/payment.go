package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fatflowers/gemcashier/internal/app/service/checkout"
	nh "github.com/fatflowers/gemcashier/internal/app/service/notification_handler"
	"github.com/fatflowers/gemcashier/internal/app/service/verification"
	"github.com/fatflowers/gemcashier/pkg/response"
)

// @Summary      Start checkout
// @Description  Records a pending payment attempt and returns the signed form fields to post to the gateway.
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Param        request body checkout.CheckoutRequest true "Checkout request"
// @Success      200  {object}  handlers.RespCheckout
// @Failure      400  {object}  handlers.RespOK
// @Failure      404  {object}  handlers.RespOK
// @Failure      409  {object}  handlers.RespOK
// @Router       /payments [post]
func ApiCheckout(initiator *checkout.Initiator, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkout.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		form, err := initiator.Initiate(c.Request.Context(), &req)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(form))
	}
}

// @Summary      Verify payment
// @Description  Returns the recorded payment status for an order. Status parameters on the gateway redirect are ignored.
// @Tags         Payment
// @Produce      json
// @Param        order_id query string true "Order ID"
// @Success      200  {object}  handlers.RespVerify
// @Failure      400  {object}  handlers.RespOK
// @Router       /payments/verify [get]
func ApiVerifyPayment(svc *verification.Service, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Query("order_id")
		if orderID == "" {
			badRequest(c, errors.New("order_id is required"))
			return
		}
		res, err := svc.Status(c.Request.Context(), orderID)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

func RegisterPaymentRoutes(r gin.IRouter, initiator *checkout.Initiator, verify *verification.Service, notifHandler *nh.NotificationHandler, log *zap.SugaredLogger) {
	r.POST("", ApiCheckout(initiator, log))
	r.GET("/verify", ApiVerifyPayment(verify, log))
	r.POST("/notify", ApiPaymentNotify(notifHandler))
}
