package get_kit_bookings

import (
	"context"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
)

type KitBookingsClient interface {
	GetAllKitBookings(ctx context.Context) ([]domain.KitBooking, error)
	GetCustomerKitBookings(ctx context.Context, customerID int64) ([]domain.KitBooking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
