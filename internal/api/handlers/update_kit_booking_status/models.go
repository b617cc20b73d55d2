package update_kit_booking_status

import (
	"github.com/m04kA/SMC-GarageDesk/internal/domain"
	"github.com/m04kA/SMC-GarageDesk/internal/usecase/change_kit_status"
)

// UpdateKitStatusRequest HTTP request model
type UpdateKitStatusRequest struct {
	Status string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP request в модель usecase
func (r *UpdateKitStatusRequest) ToUseCaseRequest(bookingID int64, actor string) *change_kit_status.Request {
	return &change_kit_status.Request{
		BookingID: bookingID,
		Status:    r.Status,
		Actor:     actor,
	}
}

// UpdateKitStatusResponse подтвержденное изменение
type UpdateKitStatusResponse struct {
	CommandID     string                  `json:"commandId"`
	BookingID     int64                   `json:"bookingId"`
	BookingStatus domain.KitBookingStatus `json:"bookingStatus"`
	StatusLabel   string                  `json:"statusLabel"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP response
func FromUseCaseResponse(resp *change_kit_status.Response) UpdateKitStatusResponse {
	return UpdateKitStatusResponse{
		CommandID:     resp.CommandID.String(),
		BookingID:     resp.BookingID,
		BookingStatus: resp.Status,
		StatusLabel:   resp.Status.Label(),
	}
}
