package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"go.uber.org/zap"

	notificationlog "github.com/fatflowers/gemcashier/internal/app/service/notification_log"
	"github.com/fatflowers/gemcashier/internal/app/service/order"
	"github.com/fatflowers/gemcashier/internal/app/service/payment"
	"github.com/fatflowers/gemcashier/internal/app/service/reconcile"
	"github.com/fatflowers/gemcashier/internal/app/service/statistics"
	"github.com/fatflowers/gemcashier/pkg/response"
	"github.com/fatflowers/gemcashier/pkg/types"
)

type TransitionOrderRequest struct {
	Status types.OrderStatus `json:"status" binding:"required" example:"processing"`
}

type ListPaymentsResponse struct {
	Items []PaymentView `json:"items"`
	Total int64         `json:"total"`
}

// AdminDeps groups the services behind the back-office API.
type AdminDeps struct {
	Orders     *order.Service
	Payments   *payment.AdminService
	Logs       notificationlog.Store
	Reconciler *reconcile.Engine
	Stats      *statistics.Service
	Log        *zap.SugaredLogger
}

// @Summary      Transition order status (Admin)
// @Description  Moves an order along pending → processing → shipped → delivered, or cancels it.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID"
// @Param        request body TransitionOrderRequest true "Target status"
// @Success      200  {object}  handlers.RespOK
// @Failure      409  {object}  handlers.RespOK
// @Router       /api/v1/admin/orders/{id}/status [patch]
func ApiTransitionOrder(d *AdminDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TransitionOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		if err := d.Orders.Transition(c.Request.Context(), c.Param("id"), req.Status); err != nil {
			respondError(c, d.Log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT[any](nil))
	}
}

// @Summary      List payments (Admin)
// @Description  Paginated, filterable list of payment attempts.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body payment.ScanPaymentsRequest true "Filters, pagination and sorting"
// @Success      200  {object}  handlers.RespPaymentList
// @Router       /api/v1/admin/payments/list [post]
func ApiListPayments(d *AdminDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req payment.ScanPaymentsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
		res, err := d.Payments.ScanPayments(c.Request.Context(), &req)
		if err != nil {
			if _, code := errorStatus(err); code == response.APIResponseCodeError {
				// Unknown errors here come from filter validation.
				badRequest(c, err)
				return
			}
			respondError(c, d.Log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(&ListPaymentsResponse{Items: toPaymentViews(res.Items), Total: res.Total}))
	}
}

// @Summary      Notification audit (Admin)
// @Description  Every gateway notification delivery recorded for an order, oldest first.
// @Tags         Admin
// @Produce      json
// @Param        order_id path string true "Order ID"
// @Param        limit query int false "Max rows" default(100)
// @Success      200  {object}  handlers.RespNotificationLogs
// @Router       /api/v1/admin/payments/{order_id}/notifications [get]
func ApiListNotifications(d *AdminDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
		rows, err := d.Logs.ListByOrder(c.Request.Context(), c.Param("order_id"), limit)
		if err != nil {
			respondError(c, d.Log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(rows))
	}
}

// @Summary      Stale pending payments (Admin)
// @Description  Pending payments older than the given age, for manual reconciliation with the gateway.
// @Tags         Admin
// @Produce      json
// @Param        older_than query string false "Age such as 2h or 90m; defaults to the configured horizon"
// @Param        limit query int false "Max rows; defaults to the configured stale limit"
// @Success      200  {object}  handlers.RespPaymentViews
// @Router       /api/v1/admin/payments/stale [get]
func ApiStalePayments(d *AdminDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var olderThan time.Duration
		if v := c.Query("older_than"); v != "" {
			dur, err := time.ParseDuration(v)
			if err != nil || dur <= 0 {
				badRequest(c, fmt.Errorf("invalid older_than %q", v))
				return
			}
			olderThan = dur
		}
		limit, _ := strconv.Atoi(c.Query("limit"))
		rows, err := d.Reconciler.StalePending(c.Request.Context(), olderThan, limit)
		if err != nil {
			respondError(c, d.Log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(toPaymentViews(rows)))
	}
}

// @Summary      Payment statistics (Admin)
// @Description  Payment counts and completed GMV. data_items is a comma-separated list of payment_count_by_status, daily_payment_count, daily_gmv, total_gmv.
// @Tags         Admin
// @Produce      json
// @Param        data_items query string false "Statistic ids" default(payment_count_by_status,total_gmv)
// @Param        currency query string false "Restrict to one currency"
// @Success      200  {object}  handlers.RespPaymentStatistic
// @Router       /api/v1/admin/statistics/payments [get]
func ApiPaymentStatistics(d *AdminDeps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ids := strings.Split(c.DefaultQuery("data_items", "payment_count_by_status,total_gmv"), ",")
		req := &statistics.PaymentStatisticRequest{}
		for _, id := range lo.Uniq(ids) {
			if id = strings.TrimSpace(id); id != "" {
				req.DataItems = append(req.DataItems, &statistics.PaymentStatisticDataItem{ID: statistics.StatisticType(id)})
			}
		}
		if cur := c.Query("currency"); cur != "" {
			req.Filters = append(req.Filters, &types.CommonFilter{
				Field: "currency", Operator: types.CommonFilterOperatorEq, Values: []any{strings.ToUpper(cur)},
			})
		}
		res, err := d.Stats.GetPaymentStatistic(c.Request.Context(), req)
		if err != nil {
			if _, code := errorStatus(err); code == response.APIResponseCodeError {
				badRequest(c, err)
				return
			}
			respondError(c, d.Log, err)
			return
		}
		c.JSON(http.StatusOK, response.OKT(res))
	}
}

func RegisterAdminRoutes(r gin.IRouter, d *AdminDeps) {
	r.PATCH("/orders/:id/status", ApiTransitionOrder(d))
	r.POST("/payments/list", ApiListPayments(d))
	r.GET("/payments/stale", ApiStalePayments(d))
	r.GET("/payments/:order_id/notifications", ApiListNotifications(d))
	r.GET("/statistics/payments", ApiPaymentStatistics(d))
}
