package live_kit_bookings

import "github.com/m04kA/SMC-GarageDesk/internal/api/handlers"

const (
	frameSnapshot     = "snapshot"
	frameError        = "error"
	frameUnauthorized = "unauthorized"

	actionUpdateStatus = "updateStatus"
)

// ServerFrame сообщение браузеру
type ServerFrame struct {
	Type       string                        `json:"type"`
	Bookings   []handlers.KitBookingResponse `json:"bookings,omitempty"`
	UpdatingID int64                         `json:"updatingId,omitempty"`
	BookingID  int64                         `json:"bookingId,omitempty"`
	Message    string                        `json:"message,omitempty"`
	Redirect   string                        `json:"redirect,omitempty"`
}

// ClientFrame команда от браузера
type ClientFrame struct {
	Action    string `json:"action"`
	BookingID int64  `json:"bookingId"`
	Status    string `json:"status"`
}
