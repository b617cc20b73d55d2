package get_my_appointments

import (
	"context"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
)

type AppointmentsClient interface {
	GetCustomerAppointments(ctx context.Context, customerID int64) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
