package change_appointment_status

import (
	"fmt"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
)

func validateRequest(req *Request) (domain.AppointmentStatus, error) {
	if req == nil || len(req.AppointmentIDs) == 0 {
		return "", fmt.Errorf("%w: appointment ids are required", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(req.AppointmentIDs))
	for _, id := range req.AppointmentIDs {
		if id <= 0 {
			return "", fmt.Errorf("%w: invalid appointment id %d", ErrInvalidInput, id)
		}
		if _, ok := seen[id]; ok {
			return "", fmt.Errorf("%w: duplicate appointment id %d", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	status, err := domain.ParseAppointmentStatus(req.Status)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	return status, nil
}
