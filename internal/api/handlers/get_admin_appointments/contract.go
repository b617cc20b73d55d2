package get_admin_appointments

import (
	"context"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
)

type AppointmentsClient interface {
	GetAllAppointments(ctx context.Context) ([]*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
