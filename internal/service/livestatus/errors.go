package livestatus

import "errors"

var (
	// ErrMalformedEvent возвращается, когда в сообщении нет bookingId или newStatus
	ErrMalformedEvent = errors.New("livestatus: malformed status event")

	// ErrBookingNotFound возвращается, когда бронирования нет в коллекции
	ErrBookingNotFound = errors.New("livestatus: booking not found in collection")
)
