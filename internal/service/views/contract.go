package views

import (
	"context"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
	"github.com/m04kA/SMC-GarageDesk/internal/service/livestatus"
)

// FetchFunc загружает бронирования, видимые представлению
type FetchFunc func(ctx context.Context) ([]domain.KitBooking, error)

// Subscriber открывает подписку на push-канал статусов
type Subscriber interface {
	Subscribe(ctx context.Context, onEvent func(domain.StatusUpdateEvent)) *livestatus.Subscription
}

// StatusChanger отправляет изменение статуса бронирования на бэкенд
type StatusChanger interface {
	ChangeKitStatus(ctx context.Context, bookingID int64, status string, actor string) error
}

// Metrics метрики представлений
type Metrics interface {
	PushEvent(result string)
	ViewOpened(role string)
	ViewClosed(role string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ChangerFunc адаптер функции к StatusChanger
type ChangerFunc func(ctx context.Context, bookingID int64, status string, actor string) error

func (f ChangerFunc) ChangeKitStatus(ctx context.Context, bookingID int64, status string, actor string) error {
	return f(ctx, bookingID, status, actor)
}
