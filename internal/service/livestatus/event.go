package livestatus

import (
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
)

// wireEvent сообщение push-канала
// Указатели позволяют отличить отсутствующее поле от нулевого значения
type wireEvent struct {
	BookingID *int64  `json:"bookingId"`
	NewStatus *string `json:"newStatus"`
}

// DecodeEvent разбирает тело сообщения push-канала
func DecodeEvent(body []byte) (domain.StatusUpdateEvent, error) {
	var w wireEvent
	if err := json.Unmarshal(body, &w); err != nil {
		return domain.StatusUpdateEvent{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if w.BookingID == nil {
		return domain.StatusUpdateEvent{}, fmt.Errorf("%w: bookingId is missing", ErrMalformedEvent)
	}
	if w.NewStatus == nil || *w.NewStatus == "" {
		return domain.StatusUpdateEvent{}, fmt.Errorf("%w: newStatus is missing", ErrMalformedEvent)
	}

	status, err := domain.ParseKitBookingStatus(*w.NewStatus)
	if err != nil {
		return domain.StatusUpdateEvent{}, fmt.Errorf("%w: unknown newStatus %q", ErrMalformedEvent, *w.NewStatus)
	}

	return domain.StatusUpdateEvent{BookingID: *w.BookingID, NewStatus: status}, nil
}

// EncodeEvent формирует тело сообщения (используется тестовыми издателями)
func EncodeEvent(e domain.StatusUpdateEvent) []byte {
	status := string(e.NewStatus)
	body, _ := json.Marshal(wireEvent{BookingID: &e.BookingID, NewStatus: &status})
	return body
}
