package pay_appointment_group

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
	"github.com/m04kA/SMC-GarageDesk/internal/integrations/garageapi"
	"github.com/m04kA/SMC-GarageDesk/internal/integrations/payments"
	"github.com/m04kA/SMC-GarageDesk/internal/service/grouping"
)

type UseCase struct {
	client   AppointmentsClient
	checkout CheckoutCreator
	logger   Logger
}

func NewUseCase(client AppointmentsClient, checkout CheckoutCreator, logger Logger) *UseCase {
	return &UseCase{
		client:   client,
		checkout: checkout,
		logger:   logger,
	}
}

// Execute создает платежную сессию на полную сумму группы записей
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	groupID := strings.TrimSpace(req.GroupID)
	if groupID == "" {
		return nil, ErrInvalidInput
	}

	uc.logger.Info("PayAppointmentGroup: customer_id=%d, group_id=%s", req.CustomerID, groupID)

	// 1. Актуальные записи клиента
	appointments, err := uc.client.GetCustomerAppointments(ctx, req.CustomerID)
	if err != nil {
		switch {
		case errors.Is(err, garageapi.ErrUnauthorized):
			return nil, ErrUnauthorized
		case errors.Is(err, garageapi.ErrNotFound):
			return nil, ErrGroupNotFound
		default:
			return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}
	}

	// 2. Группа по идентификатору бэкенда
	cars := grouping.GroupByCar(appointments)
	group, ok := grouping.FindDateGroup(cars, groupID)
	if !ok {
		return nil, ErrGroupNotFound
	}
	if group.IsPaid() {
		return nil, ErrAlreadyPaid
	}
	if !group.TotalBudget.IsPositive() {
		return nil, ErrNothingToPay
	}

	carModel := carModelOf(group)

	// 3. Платежная сессия на сумму группы
	checkout, err := uc.checkout.CreateCheckout(ctx, payments.CheckoutRequest{
		Amount:         group.TotalBudget,
		Reference:      groupID,
		Description:    fmt.Sprintf("%s service on %s", carModel, group.Date),
		CustomerEmail:  req.CustomerEmail,
		CustomerName:   req.CustomerName,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrDisabled):
			return nil, ErrPaymentsDisabled
		case errors.Is(err, payments.ErrInvalidAmount):
			return nil, fmt.Errorf("%w: %v", ErrNothingToPay, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
		}
	}

	return &Response{
		CheckoutID:  checkout.ID,
		CheckoutURL: checkout.URL,
		GroupID:     groupID,
		CarModel:    carModel,
		Date:        group.Date,
		Total:       group.TotalBudget,
		AmountMinor: checkout.Amount,
		Currency:    checkout.Currency,
	}, nil
}

func carModelOf(g *domain.DateGroup) string {
	if len(g.Members) == 0 {
		return ""
	}
	return g.Members[0].CarModel
}
