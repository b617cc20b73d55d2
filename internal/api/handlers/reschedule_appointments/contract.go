package reschedule_appointments

import (
	"context"

	"github.com/m04kA/SMC-GarageDesk/internal/integrations/garageapi"
)

type AppointmentsClient interface {
	RescheduleAppointments(ctx context.Context, carID int64, req garageapi.RescheduleRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
