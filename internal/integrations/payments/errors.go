package payments

import "errors"

var (
	// ErrDisabled возвращается, когда прием платежей выключен в конфигурации
	ErrDisabled = errors.New("payments: checkout disabled")

	// ErrInvalidAmount возвращается для нулевой или отрицательной суммы
	ErrInvalidAmount = errors.New("payments: invalid amount")

	// ErrGateway возвращается, когда платежный шлюз отклонил создание сессии
	ErrGateway = errors.New("payments: gateway error")
)
