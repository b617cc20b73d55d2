package reschedule_appointments

import (
	"github.com/m04kA/SMC-GarageDesk/internal/integrations/garageapi"
	"github.com/m04kA/SMC-GarageDesk/pkg/types"
)

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	AppointmentDate types.Date `json:"appointmentDate"`
	ServiceIDs      []int64    `json:"serviceIds"`
}

// ToClientRequest конвертирует HTTP request в запрос к бэкенду
func (r *RescheduleRequest) ToClientRequest() garageapi.RescheduleRequest {
	return garageapi.RescheduleRequest{
		AppointmentDate: r.AppointmentDate,
		ServiceIDs:      r.ServiceIDs,
	}
}

// Validate дата обязательна и не раньше today, услуги без повторов
func (r *RescheduleRequest) Validate(today types.Date) string {
	if r.AppointmentDate.IsZero() {
		return msgDateRequired
	}
	if r.AppointmentDate.Before(today) {
		return msgDateInPast
	}
	if len(r.ServiceIDs) == 0 {
		return msgServicesRequired
	}
	seen := make(map[int64]struct{}, len(r.ServiceIDs))
	for _, id := range r.ServiceIDs {
		if id <= 0 {
			return msgInvalidService
		}
		if _, ok := seen[id]; ok {
			return msgInvalidService
		}
		seen[id] = struct{}{}
	}
	return ""
}
