package change_appointment_status

import (
	"context"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
)

// AppointmentsClient интерфейс клиента бэкенда для записей
type AppointmentsClient interface {
	GetAllAppointments(ctx context.Context) ([]*domain.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID int64, status domain.AppointmentStatus) error
}

// CommandJournal интерфейс журнала команд
type CommandJournal interface {
	Record(ctx context.Context, cmd *domain.StatusCommand) error
}

// Metrics интерфейс метрик команд
type Metrics interface {
	StatusCommand(kind, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
