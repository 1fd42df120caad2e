package payhere

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/shopspring/decimal"
)

// hashUpper is the gateway's hash primitive: upper-case hex MD5.
func hashUpper(s string) string {
	sum := md5.Sum([]byte(s))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// CheckoutHash signs a checkout request:
//
//	UPPER(MD5(merchant_id + order_id + amount + currency + UPPER(MD5(secret))))
func CheckoutHash(merchantID, orderID string, amount decimal.Decimal, currency, secret string) string {
	return hashUpper(merchantID + orderID + FormatAmount(amount) + currency + hashUpper(secret))
}

// NotificationHash is the signature the gateway attaches to a notification:
//
//	UPPER(MD5(merchant_id + order_id + amount + currency + status_code + UPPER(MD5(secret))))
func NotificationHash(merchantID, orderID string, amount decimal.Decimal, currency, statusCode, secret string) string {
	return hashUpper(merchantID + orderID + FormatAmount(amount) + currency + statusCode + hashUpper(secret))
}

// equalSignature compares case-insensitively in constant time.
func equalSignature(expected, got string) bool {
	return subtle.ConstantTimeCompare([]byte(strings.ToUpper(expected)), []byte(strings.ToUpper(strings.TrimSpace(got)))) == 1
}
