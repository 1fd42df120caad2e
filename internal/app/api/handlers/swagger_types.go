package handlers

import (
	"github.com/fatflowers/gemcashier/internal/app/service/statistics"
	"github.com/fatflowers/gemcashier/internal/app/service/verification"
	"github.com/fatflowers/gemcashier/internal/models"
	"github.com/fatflowers/gemcashier/internal/platform/payhere"
	"github.com/fatflowers/gemcashier/pkg/response"
)

// RespOK is a generic OK envelope for endpoints returning no specific data.
type RespOK struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    interface{}              `json:"data"`
}

type RespOrder struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    OrderView                `json:"data"`
}

// RespCheckout carries the fields the browser posts to the gateway.
type RespCheckout struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    payhere.CheckoutForm     `json:"data"`
}

type RespVerify struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    verification.Result      `json:"data"`
}

type RespPaymentList struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    ListPaymentsResponse     `json:"data"`
}

type RespPaymentViews struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []PaymentView            `json:"data"`
}

type RespNotificationLogs struct {
	Code    response.APIResponseCode        `json:"code"`
	Message string                          `json:"message"`
	Data    []models.PaymentNotificationLog `json:"data"`
}

type RespPaymentStatistic struct {
	Code    response.APIResponseCode            `json:"code"`
	Message string                              `json:"message"`
	Data    statistics.PaymentStatisticResponse `json:"data"`
}
