package update_kit_booking_status

import (
	"context"

	"github.com/m04kA/SMC-GarageDesk/internal/usecase/change_kit_status"
)

type StatusUseCase interface {
	Execute(ctx context.Context, req *change_kit_status.Request) (*change_kit_status.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
