package domain

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-GarageDesk/pkg/types"
)

// AppointmentStatus статус записи на обслуживание
type AppointmentStatus string

const (
	AppointmentPending  AppointmentStatus = "Pending"
	AppointmentAccepted AppointmentStatus = "Accepted"
	AppointmentRejected AppointmentStatus = "Rejected"
	AppointmentCanceled AppointmentStatus = "Canceled"
)

// AppointmentStatuses все допустимые статусы записи
var AppointmentStatuses = []AppointmentStatus{
	AppointmentPending,
	AppointmentAccepted,
	AppointmentRejected,
	AppointmentCanceled,
}

// PaymentStatusPaid статус оплаченной группы записей
const PaymentStatusPaid = "PAID"

// Appointment одна услуга, записанная на конкретную машину клиента на конкретную дату
type Appointment struct {
	ID           int64
	CustomerName string
	Mobile       string
	CarModel     string
	CarID        int64
	LicensePlate string
	Date         types.Date
	ServiceID    int64
	ServiceName  string
	Budget       decimal.Decimal
	Status       AppointmentStatus
	GroupID      string

	// Заполняется только в клиентской выдаче
	PaymentStatus string
}

// IsPaid returns true if the appointment's group has been paid for
func (a *Appointment) IsPaid() bool {
	return a.PaymentStatus == PaymentStatusPaid
}

// ParseAppointmentStatus проверяет, что строка является допустимым статусом записи
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	for _, status := range AppointmentStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", ErrUnknownStatus
}
