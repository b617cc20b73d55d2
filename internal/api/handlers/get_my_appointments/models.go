package get_my_appointments

import "github.com/m04kA/SMC-GarageDesk/internal/api/handlers"

// MyAppointmentsResponse записи клиента: машины -> даты
type MyAppointmentsResponse struct {
	Cars []handlers.CarGroupResponse `json:"cars"`
}
