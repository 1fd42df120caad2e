package notification_handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newContext(body, contentType string) *gin.Context {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payments/notify", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", contentType)
	return c
}

func TestParser_Form(t *testing.T) {
	c := newContext("merchant_id=1211149&order_id=A-1&payment_id=320025071278&payhere_amount=1000.00&payhere_currency=LKR&status_code=2&md5sig=ABC",
		"application/x-www-form-urlencoded")
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	p, err := GetPayHereNotificationParser(c, now)
	require.NoError(t, err)
	n := p.GetNotification(c)
	require.Equal(t, "A-1", n.OrderID)
	require.Equal(t, "1000.00", n.Amount)
	require.Equal(t, "LKR", n.Currency)
	require.Equal(t, "ABC", n.Signature)
	require.Equal(t, now, p.GetNotificationTime(c))
	require.Equal(t, "320025071278", p.GetGatewayPaymentID(c))
}

func TestParser_JSONKeepsNumbersVerbatim(t *testing.T) {
	c := newContext(`{"merchant_id":"1211149","order_id":"A-1","payment_id":320025071278,"amount":"1000.00","currency":"LKR","status_code":-2,"signature":"ABC"}`,
		"application/json")

	p, err := GetPayHereNotificationParser(c, time.Now())
	require.NoError(t, err)
	n := p.GetNotification(c)
	require.Equal(t, "320025071278", n.PaymentID)
	require.Equal(t, "-2", n.StatusCode)
	require.Equal(t, "1000.00", n.Amount)
}

func TestParser_UndecodableBodyIsKept(t *testing.T) {
	c := newContext(`{"order_id": `, "application/json")

	p, err := GetPayHereNotificationParser(c, time.Now())
	require.NoError(t, err)
	require.Empty(t, p.GetOrderID(c))
	require.Equal(t, map[string]string{"body": `{"order_id": `}, p.GetData(c))
}
