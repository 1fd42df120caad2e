package notification_handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fatflowers/gemcashier/internal/platform/payhere"
)

const maxNotificationBody = 64 << 10

type PayHereNotificationParser struct {
	NotificationTime time.Time
	Notification     *payhere.Notification
	// Values are the flat fields as delivered; Body is kept only when the
	// payload could not be decoded.
	Values map[string]string
	Body   string
}

func (p *PayHereNotificationParser) GetNotificationTime(ctx context.Context) time.Time {
	return p.NotificationTime
}

func (p *PayHereNotificationParser) GetOrderID(ctx context.Context) string {
	return p.Notification.OrderID
}

func (p *PayHereNotificationParser) GetGatewayPaymentID(ctx context.Context) string {
	return p.Notification.PaymentID
}

func (p *PayHereNotificationParser) GetNotification(ctx context.Context) *payhere.Notification {
	return p.Notification
}

func (p *PayHereNotificationParser) GetData(ctx context.Context) any {
	if p.Values == nil {
		return map[string]string{"body": p.Body}
	}
	return p.Values
}

// GetPayHereNotificationParser reads the request body as a form or JSON
// object. A body that decodes as neither still yields a parser, with empty
// fields, so the delivery is recorded.
func GetPayHereNotificationParser(c *gin.Context, now time.Time) (*PayHereNotificationParser, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxNotificationBody))
	if err != nil {
		return nil, fmt.Errorf("read notification body: %w", err)
	}

	p := &PayHereNotificationParser{NotificationTime: now}
	values, err := decodeValues(c.ContentType(), body)
	if err != nil {
		p.Body = string(body)
		p.Notification = &payhere.Notification{}
		return p, nil
	}
	p.Values = values
	p.Notification = payhere.NotificationFromValues(values)
	return p, nil
}

func decodeValues(contentType string, body []byte) (map[string]string, error) {
	trimmed := bytes.TrimSpace(body)
	if contentType == gin.MIMEJSON || bytes.HasPrefix(trimmed, []byte("{")) {
		return decodeJSON(trimmed)
	}
	form, err := url.ParseQuery(string(trimmed))
	if err != nil {
		return nil, err
	}
	values := make(map[string]string, len(form))
	for k, v := range form {
		if len(v) > 0 {
			values[k] = v[0]
		}
	}
	return values, nil
}

// decodeJSON keeps numbers verbatim so amounts are signed as sent.
func decodeJSON(body []byte) (map[string]string, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	values := make(map[string]string, len(raw))
	for k, v := range raw {
		switch t := v.(type) {
		case nil:
		case string:
			values[k] = t
		case json.Number:
			values[k] = t.String()
		case bool, float64:
			values[k] = fmt.Sprint(t)
		default:
			b, _ := json.Marshal(t)
			values[k] = strings.TrimSpace(string(b))
		}
	}
	return values, nil
}
