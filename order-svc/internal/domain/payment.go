package domain

import "github.com/shopspring/decimal"

const ChargeSuccess = "charge.success"

type PaystackEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
		Metadata  struct {
			OrderID string `json:"order_id"`
		} `json:"metadata"`
	} `json:"data"`
}

// AmountPaid converts the minor-unit amount (kobo) to the order currency.
func (e PaystackEvent) AmountPaid() decimal.Decimal {
	return decimal.New(e.Data.Amount, -2)
}
