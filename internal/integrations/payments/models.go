package payments

import "github.com/shopspring/decimal"

// CheckoutRequest параметры оплаты группы записей
type CheckoutRequest struct {
	Amount decimal.Decimal
	// Reference идентификатор группы записей на бэкенде
	Reference      string
	Description    string
	CustomerEmail  string
	CustomerName   string
	IdempotencyKey string
}

// Checkout созданная платежная сессия
type Checkout struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}
