package change_kit_status

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном идентификаторе бронирования
	ErrInvalidInput = errors.New("change_kit_status: invalid input data")

	// ErrInvalidStatus возвращается, когда статус не входит в допустимый набор
	ErrInvalidStatus = errors.New("change_kit_status: invalid status")

	// ErrUpdateInFlight возвращается, пока предыдущее изменение этого бронирования не завершено
	ErrUpdateInFlight = errors.New("change_kit_status: update already in flight")

	// ErrBookingNotFound возвращается, когда бэкенд не знает бронирование
	ErrBookingNotFound = errors.New("change_kit_status: booking not found")

	// ErrRejected возвращается, когда бэкенд отклонил переход статуса
	ErrRejected = errors.New("change_kit_status: status change rejected")

	// ErrUnauthorized возвращается, когда бэкенд отклонил сессию администратора
	ErrUnauthorized = errors.New("change_kit_status: unauthorized")

	// ErrUpdateFailed возвращается при недоступности бэкенда
	ErrUpdateFailed = errors.New("change_kit_status: update failed")
)
