package create_group_payment

import (
	"context"

	"github.com/m04kA/SMC-GarageDesk/internal/usecase/pay_appointment_group"
)

type PaymentUseCase interface {
	Execute(ctx context.Context, req *pay_appointment_group.Request) (*pay_appointment_group.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
