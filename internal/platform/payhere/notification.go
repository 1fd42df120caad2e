package payhere

import "strings"

// Notification is the server-to-server payment notification as received.
// Fields stay strings so the signature is checked against what was sent.
type Notification struct {
	MerchantID    string `json:"merchant_id"`
	OrderID       string `json:"order_id"`
	PaymentID     string `json:"payment_id"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	StatusCode    string `json:"status_code"`
	Signature     string `json:"signature"`
	StatusMessage string `json:"status_message,omitempty"`
	Method        string `json:"method,omitempty"`
}

// fieldAliases lists accepted names per field, preferred name first. The
// gateway's native form names are accepted next to the API names.
var fieldAliases = map[string][]string{
	"merchant_id":    {"merchant_id"},
	"order_id":       {"order_id"},
	"payment_id":     {"payment_id"},
	"amount":         {"amount", "payhere_amount"},
	"currency":       {"currency", "payhere_currency"},
	"status_code":    {"status_code"},
	"signature":      {"signature", "md5sig"},
	"status_message": {"status_message"},
	"method":         {"method"},
}

// NotificationFromValues builds a Notification from flat key/value pairs,
// e.g. a parsed form body.
func NotificationFromValues(values map[string]string) *Notification {
	get := func(field string) string {
		for _, k := range fieldAliases[field] {
			if v, ok := values[k]; ok {
				return strings.TrimSpace(v)
			}
		}
		return ""
	}
	return &Notification{
		MerchantID:    get("merchant_id"),
		OrderID:       get("order_id"),
		PaymentID:     get("payment_id"),
		Amount:        get("amount"),
		Currency:      get("currency"),
		StatusCode:    get("status_code"),
		Signature:     get("signature"),
		StatusMessage: get("status_message"),
		Method:        get("method"),
	}
}
