package payhere

import "github.com/shopspring/decimal"

// CheckoutForm is the set of fields the browser posts to the gateway's
// checkout page. Hash is the only credential-derived value it carries.
type CheckoutForm struct {
	ActionURL  string `json:"action_url"`
	MerchantID string `json:"merchant_id"`
	ReturnURL  string `json:"return_url"`
	CancelURL  string `json:"cancel_url"`
	NotifyURL  string `json:"notify_url"`
	OrderID    string `json:"order_id"`
	Items      string `json:"items"`
	Currency   string `json:"currency"`
	Amount     string `json:"amount"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Country    string `json:"country"`
	Hash       string `json:"hash"`
}

// Sign fills Amount and Hash from amount using the merchant secret.
func (f *CheckoutForm) Sign(amount decimal.Decimal, secret string) {
	f.Amount = FormatAmount(amount)
	f.Hash = CheckoutHash(f.MerchantID, f.OrderID, amount, f.Currency, secret)
}
