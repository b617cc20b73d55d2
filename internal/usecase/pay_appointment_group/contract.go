package pay_appointment_group

import (
	"context"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
	"github.com/m04kA/SMC-GarageDesk/internal/integrations/payments"
)

// AppointmentsClient записи клиента на бэкенде
type AppointmentsClient interface {
	GetCustomerAppointments(ctx context.Context, customerID int64) ([]*domain.Appointment, error)
}

// CheckoutCreator платежный шлюз
type CheckoutCreator interface {
	CreateCheckout(ctx context.Context, req payments.CheckoutRequest) (*payments.Checkout, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
