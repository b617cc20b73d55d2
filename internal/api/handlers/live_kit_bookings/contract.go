package live_kit_bookings

import (
	"context"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
	"github.com/m04kA/SMC-GarageDesk/internal/usecase/change_kit_status"
)

type KitBookingsClient interface {
	GetAllKitBookings(ctx context.Context) ([]domain.KitBooking, error)
	GetCustomerKitBookings(ctx context.Context, customerID int64) ([]domain.KitBooking, error)
}

type StatusUseCase interface {
	Execute(ctx context.Context, req *change_kit_status.Request) (*change_kit_status.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
