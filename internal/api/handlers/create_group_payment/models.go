package create_group_payment

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-GarageDesk/internal/usecase/pay_appointment_group"
	"github.com/m04kA/SMC-GarageDesk/pkg/types"
)

// CheckoutResponse платежная сессия для перехода на страницу оплаты
type CheckoutResponse struct {
	CheckoutID      string          `json:"checkoutId"`
	CheckoutURL     string          `json:"checkoutUrl"`
	GroupID         string          `json:"groupId"`
	CarModel        string          `json:"carModel"`
	AppointmentDate types.Date      `json:"appointmentDate"`
	TotalBudget     decimal.Decimal `json:"totalBudget"`
	Amount          int64           `json:"amount"`
	Currency        string          `json:"currency"`
}

func FromUseCaseResponse(resp *pay_appointment_group.Response) CheckoutResponse {
	return CheckoutResponse{
		CheckoutID:      resp.CheckoutID,
		CheckoutURL:     resp.CheckoutURL,
		GroupID:         resp.GroupID,
		CarModel:        resp.CarModel,
		AppointmentDate: resp.Date,
		TotalBudget:     resp.Total,
		Amount:          resp.AmountMinor,
		Currency:        resp.Currency,
	}
}
