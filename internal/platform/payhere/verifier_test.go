package payhere

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const (
	testMerchantID = "1211149"
	testSecret     = "MzE0NzY2NTQ4MjQzNTQ1"
)

func signed(n Notification) *Notification {
	amount, err := ParseAmount(n.Amount)
	if err != nil {
		amount = decimal.Zero
	}
	n.Signature = NotificationHash(n.MerchantID, n.OrderID, amount, n.Currency, strings.TrimSpace(n.StatusCode), testSecret)
	return &n
}

func flipLast(s string) string {
	last := byte('0')
	if s[len(s)-1] == '0' {
		last = '1'
	}
	return s[:len(s)-1] + string(last)
}

func validNotification() Notification {
	return Notification{
		MerchantID: testMerchantID,
		OrderID:    "A-1",
		PaymentID:  "320025071278",
		Amount:     "1000.00",
		Currency:   "LKR",
		StatusCode: "2",
	}
}

func TestVerify_Table(t *testing.T) {
	good := signed(validNotification())

	tamper := func(mut func(n *Notification)) *Notification {
		cp := *good
		mut(&cp)
		return &cp
	}

	tests := []struct {
		name   string
		n      *Notification
		secret string
		want   Reason
	}{
		{name: "authentic", n: good, secret: testSecret, want: ReasonOK},
		{name: "lower-case signature", n: tamper(func(n *Notification) { n.Signature = strings.ToLower(n.Signature) }), secret: testSecret, want: ReasonOK},
		{name: "amount without decimals signs the same", n: tamper(func(n *Notification) { n.Amount = "1000" }), secret: testSecret, want: ReasonOK},
		{name: "tampered amount", n: tamper(func(n *Notification) { n.Amount = "999.00" }), secret: testSecret, want: ReasonSignatureMismatch},
		{name: "tampered currency", n: tamper(func(n *Notification) { n.Currency = "USD" }), secret: testSecret, want: ReasonSignatureMismatch},
		{name: "tampered status", n: tamper(func(n *Notification) { n.StatusCode = "-2" }), secret: testSecret, want: ReasonSignatureMismatch},
		{name: "tampered order", n: tamper(func(n *Notification) { n.OrderID = "A-2" }), secret: testSecret, want: ReasonSignatureMismatch},
		{name: "tampered signature", n: tamper(func(n *Notification) { n.Signature = flipLast(n.Signature) }), secret: testSecret, want: ReasonSignatureMismatch},
		{name: "wrong secret", n: good, secret: "other", want: ReasonSignatureMismatch},
		{name: "other merchant", n: tamper(func(n *Notification) { n.MerchantID = "42" }), secret: testSecret, want: ReasonMerchantMismatch},
		{name: "missing signature", n: tamper(func(n *Notification) { n.Signature = "" }), secret: testSecret, want: ReasonMissingField},
		{name: "missing payment id", n: tamper(func(n *Notification) { n.PaymentID = "" }), secret: testSecret, want: ReasonMissingField},
		{name: "unparsable amount", n: tamper(func(n *Notification) { n.Amount = "1,000.00" }), secret: testSecret, want: ReasonMalformedAmount},
		{name: "nil notification", n: nil, secret: testSecret, want: ReasonMissingField},
		{name: "no secret configured", n: good, secret: "", want: ReasonNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Verify(tt.n, testMerchantID, tt.secret)
			require.Equal(t, tt.want, v.Reason)
			require.Equal(t, tt.want == ReasonOK, v.Authentic)
		})
	}
}

func TestVerify_ReturnsParsedFields(t *testing.T) {
	v := Verify(signed(validNotification()), testMerchantID, testSecret)
	require.True(t, v.Authentic)
	require.True(t, decimal.RequireFromString("1000").Equal(v.Amount))
	require.Equal(t, StatusSuccess, v.Status.Code)
}

func TestVerify_UnknownStatusStillAuthentic(t *testing.T) {
	n := validNotification()
	n.StatusCode = "5"
	v := Verify(signed(n), testMerchantID, testSecret)
	require.True(t, v.Authentic)
	require.False(t, v.Status.Known)
	_, terminal := v.Status.PaymentStatus()
	require.False(t, terminal)
}

func FuzzVerify_TamperedSignatureNeverAuthentic(f *testing.F) {
	f.Add("A-1", "1000.00", "LKR", "2", "deadbeef")
	f.Add("A-999", "0.01", "USD", "-3", "")
	f.Fuzz(func(t *testing.T, orderID, amount, currency, status, sig string) {
		n := &Notification{
			MerchantID: testMerchantID,
			OrderID:    orderID,
			PaymentID:  "p",
			Amount:     amount,
			Currency:   currency,
			StatusCode: status,
			Signature:  sig,
		}
		v := Verify(n, testMerchantID, testSecret)
		if !v.Authentic {
			return
		}
		parsed, err := ParseAmount(amount)
		if err != nil {
			t.Fatalf("authentic with malformed amount %q", amount)
		}
		expected := NotificationHash(testMerchantID, orderID, parsed, currency, strings.TrimSpace(status), testSecret)
		if !strings.EqualFold(expected, strings.TrimSpace(sig)) {
			t.Fatalf("authentic with foreign signature %q", sig)
		}
	})
}

func TestNotificationFromValues_Aliases(t *testing.T) {
	n := NotificationFromValues(map[string]string{
		"merchant_id":      "1211149",
		"order_id":         "A-1",
		"payment_id":       "320025071278",
		"payhere_amount":   "1000.00",
		"payhere_currency": "LKR",
		"status_code":      " 2 ",
		"md5sig":           "ABC",
	})
	require.Equal(t, "1000.00", n.Amount)
	require.Equal(t, "LKR", n.Currency)
	require.Equal(t, "2", n.StatusCode)
	require.Equal(t, "ABC", n.Signature)

	preferred := NotificationFromValues(map[string]string{"amount": "1.00", "payhere_amount": "2.00"})
	require.Equal(t, "1.00", preferred.Amount)
}
