package get_kit_bookings

import "github.com/m04kA/SMC-GarageDesk/internal/api/handlers"

// KitBookingsResponse бронирования комплектов с прогрессом
type KitBookingsResponse struct {
	Bookings []handlers.KitBookingResponse `json:"bookings"`
}
