package change_kit_status

import (
	"context"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
)

// KitBookingsClient интерфейс клиента бэкенда для бронирований комплектов
type KitBookingsClient interface {
	UpdateKitBookingStatus(ctx context.Context, bookingID int64, status domain.KitBookingStatus) error
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
