package pay_appointment_group

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-GarageDesk/pkg/types"
)

// Request оплата одной группы записей клиента
type Request struct {
	CustomerID     int64
	CustomerName   string
	CustomerEmail  string
	GroupID        string
	IdempotencyKey string
}

// Response созданная платежная сессия
type Response struct {
	CheckoutID  string
	CheckoutURL string
	GroupID     string
	CarModel    string
	Date        types.Date
	Total       decimal.Decimal
	AmountMinor int64
	Currency    string
}
