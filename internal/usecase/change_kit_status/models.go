package change_kit_status

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
)

// Request запрос на смену статуса бронирования комплекта
type Request struct {
	BookingID int64
	Status    string
	Actor     string
}

// Response подтвержденное изменение
type Response struct {
	CommandID uuid.UUID
	BookingID int64
	Status    domain.KitBookingStatus
}
