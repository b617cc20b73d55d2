package views

import "errors"

var (
	// ErrNotActive возвращается при обращении к неактивному представлению
	ErrNotActive = errors.New("views: view is not active")

	// ErrUpdateInFlight возвращается, пока предыдущее изменение статуса в представлении не завершено
	ErrUpdateInFlight = errors.New("views: status update already in flight")

	// ErrReadOnly возвращается при попытке изменить статус в клиентском представлении
	ErrReadOnly = errors.New("views: view is read-only")

	// ErrFetchFailed возвращается, когда не удалось загрузить бронирования
	ErrFetchFailed = errors.New("views: failed to fetch bookings")
)
