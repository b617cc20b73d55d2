package delete_appointment_group

import "context"

type AppointmentsClient interface {
	DeleteAppointmentGroup(ctx context.Context, customerID int64, groupID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
