package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fatflowers/gemcashier/internal/app/service/checkout"
	"github.com/fatflowers/gemcashier/pkg/response"
)

// @Summary      Create order
// @Description  Creates a pending order from line items. The total is computed server-side and fixed.
// @Tags         Order
// @Accept       json
// @Produce      json
// @Param        request body checkout.CreateOrderRequest true "Order items"
// @Success      200  {object}  handlers.RespOrder
// @Failure      400  {object}  handlers.RespOK
// @Router       /orders [post]
func ApiCreateOrder(initiator *checkout.Initiator, log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkout.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		o, err := initiator.CreateOrder(c.Request.Context(), &req)
		if err != nil {
			respondError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(toOrderView(o)))
	}
}

func RegisterOrderRoutes(r gin.IRouter, initiator *checkout.Initiator, log *zap.SugaredLogger) {
	r.POST("/orders", ApiCreateOrder(initiator, log))
}
