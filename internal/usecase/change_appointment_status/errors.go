package change_appointment_status

import "errors"

var (
	// ErrInvalidInput возвращается при пустом или повторяющемся списке записей
	ErrInvalidInput = errors.New("change_appointment_status: invalid input data")

	// ErrInvalidStatus возвращается, когда статус не входит в допустимый набор
	ErrInvalidStatus = errors.New("change_appointment_status: invalid status")

	// ErrGroupNotFound возвращается, когда записи не составляют одну группу (клиент, машина, дата)
	ErrGroupNotFound = errors.New("change_appointment_status: appointments do not belong to one date group")

	// ErrUnauthorized возвращается, когда бэкенд отклонил сессию администратора
	ErrUnauthorized = errors.New("change_appointment_status: unauthorized")

	// ErrFetchFailed возвращается, когда не удалось получить актуальный список записей
	ErrFetchFailed = errors.New("change_appointment_status: failed to fetch appointments")

	// ErrPartialFailure возвращается вместе с отчетом, когда обновилась только часть группы
	ErrPartialFailure = errors.New("change_appointment_status: partial failure")

	// ErrCommandFailed возвращается вместе с отчетом, когда не обновилась ни одна запись
	ErrCommandFailed = errors.New("change_appointment_status: no appointment was updated")
)
