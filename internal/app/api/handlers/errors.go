package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fatflowers/gemcashier/pkg/logctx"
	"github.com/fatflowers/gemcashier/pkg/response"
	"github.com/fatflowers/gemcashier/pkg/types"
)

func errorStatus(err error) (int, response.APIResponseCode) {
	switch {
	case errors.Is(err, types.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, response.APIResponseCodeUnavailable
	case errors.Is(err, types.ErrUnknownOrder), errors.Is(err, types.ErrPaymentNotFound):
		return http.StatusNotFound, response.APIResponseCodeNotFound
	case errors.Is(err, types.ErrOrderNotPayable), errors.Is(err, types.ErrInvalidStatusTransition):
		return http.StatusConflict, response.APIResponseCodeConflict
	case errors.Is(err, types.ErrInvalidAmount):
		return http.StatusBadRequest, response.APIResponseCodeBadRequest
	default:
		return http.StatusInternalServerError, response.APIResponseCodeError
	}
}

// respondError writes the envelope for err. Server-side failures are logged
// and their details kept out of the response.
func respondError(c *gin.Context, log *zap.SugaredLogger, err error) {
	status, code := errorStatus(err)
	l := logctx.FromGin(c, log)
	if status >= http.StatusInternalServerError {
		l.Errorw("request_failed", "path", c.FullPath(), "error", err)
		c.JSON(status, response.ErrorT[any](code, nil))
		return
	}
	l.Infow("request_rejected", "path", c.FullPath(), "error", err.Error())
	c.JSON(status, response.ErrorT[any](code, err.Error()))
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
}
