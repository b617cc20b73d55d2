package garageapi

import "errors"

var (
	// ErrUnauthorized возвращается, когда бэкенд не признал сессию (401/403)
	ErrUnauthorized = errors.New("garageapi client: unauthorized")

	// ErrNotFound возвращается, когда запрошенный ресурс не найден
	ErrNotFound = errors.New("garageapi client: not found")

	// ErrConflict возвращается, когда бэкенд отклонил изменение (409)
	ErrConflict = errors.New("garageapi client: conflict")

	// ErrBadRequest возвращается, когда бэкенд отклонил параметры запроса (400)
	ErrBadRequest = errors.New("garageapi client: bad request")

	// ErrUnavailable возвращается при сетевых ошибках и ответах 5xx
	ErrUnavailable = errors.New("garageapi client: backend unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("garageapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от бэкенда
	ErrInvalidResponse = errors.New("garageapi client: invalid response")
)
