package update_appointment_group_status

import (
	"context"

	"github.com/m04kA/SMC-GarageDesk/internal/usecase/change_appointment_status"
)

type StatusUseCase interface {
	Execute(ctx context.Context, req *change_appointment_status.Request) (*change_appointment_status.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
