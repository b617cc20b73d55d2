package pay_appointment_group

import "errors"

var (
	// ErrInvalidInput возвращается при пустом идентификаторе группы
	ErrInvalidInput = errors.New("pay_appointment_group: invalid input data")

	// ErrGroupNotFound возвращается, когда у клиента нет группы с таким идентификатором
	ErrGroupNotFound = errors.New("pay_appointment_group: group not found")

	// ErrAlreadyPaid возвращается для уже оплаченной группы
	ErrAlreadyPaid = errors.New("pay_appointment_group: group already paid")

	// ErrNothingToPay возвращается, когда сумма группы равна нулю
	ErrNothingToPay = errors.New("pay_appointment_group: nothing to pay")

	// ErrUnauthorized возвращается, когда бэкенд отклонил сессию клиента
	ErrUnauthorized = errors.New("pay_appointment_group: unauthorized")

	// ErrFetchFailed возвращается, когда не удалось получить записи клиента
	ErrFetchFailed = errors.New("pay_appointment_group: failed to fetch appointments")

	// ErrPaymentsDisabled возвращается, когда прием платежей выключен
	ErrPaymentsDisabled = errors.New("pay_appointment_group: payments disabled")

	// ErrCheckoutFailed возвращается, когда шлюз не создал платежную сессию
	ErrCheckoutFailed = errors.New("pay_appointment_group: checkout failed")
)
