package garageapi

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
	"github.com/m04kA/SMC-GarageDesk/pkg/types"
)

// sessionResponse ответ GET /session
type sessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	UserID        int64  `json:"userId"`
	AdminID       int64  `json:"adminId"`
}

func (s sessionResponse) toDomain(role domain.Role) *domain.Session {
	id := s.UserID
	if role == domain.RoleAdmin && s.AdminID != 0 {
		id = s.AdminID
	}
	return &domain.Session{
		Authenticated: s.Authenticated,
		Role:          role,
		UserID:        id,
		Name:          s.Name,
		Email:         s.Email,
	}
}

// appointmentResponse одна запись в выдаче бэкенда
type appointmentResponse struct {
	AppointmentID   int64           `json:"appointmentId"`
	CustomerName    string          `json:"customerName"`
	Mobile          string          `json:"mobile"`
	CarModel        string          `json:"carModel"`
	CarID           int64           `json:"carId"`
	LicensePlate    string          `json:"licensePlate"`
	AppointmentDate types.Date      `json:"appointmentDate"`
	ServiceID       int64           `json:"serviceId"`
	ServiceName     string          `json:"serviceName"`
	Budget          decimal.Decimal `json:"budget"`
	Status          string          `json:"status"`
	GroupID         string          `json:"groupId"`
	PaymentStatus   string          `json:"paymentStatus"`
}

func (a appointmentResponse) toDomain() *domain.Appointment {
	return &domain.Appointment{
		ID:            a.AppointmentID,
		CustomerName:  a.CustomerName,
		Mobile:        a.Mobile,
		CarModel:      a.CarModel,
		CarID:         a.CarID,
		LicensePlate:  a.LicensePlate,
		Date:          a.AppointmentDate,
		ServiceID:     a.ServiceID,
		ServiceName:   a.ServiceName,
		Budget:        a.Budget,
		Status:        domain.AppointmentStatus(a.Status),
		GroupID:       a.GroupID,
		PaymentStatus: a.PaymentStatus,
	}
}

// kitBookingResponse бронирование комплекта в выдаче бэкенда
type kitBookingResponse struct {
	BookingID     int64           `json:"bookingId"`
	KitName       string          `json:"kitName"`
	CustomerName  string          `json:"customerName"`
	Mobile        string          `json:"mobile"`
	CarModel      string          `json:"carModel"`
	DropOffDate   types.Date      `json:"dropOffDate"`
	PickUpDate    types.Date      `json:"pickUpDate"`
	Price         decimal.Decimal `json:"price"`
	BookingStatus string          `json:"bookingStatus"`
	Images        []string        `json:"images"`
}

func (k kitBookingResponse) toDomain() domain.KitBooking {
	return domain.KitBooking{
		ID:           k.BookingID,
		KitName:      k.KitName,
		CustomerName: k.CustomerName,
		Mobile:       k.Mobile,
		CarModel:     k.CarModel,
		DropOffDate:  k.DropOffDate,
		PickUpDate:   k.PickUpDate,
		Price:        k.Price,
		Status:       domain.KitBookingStatus(k.BookingStatus),
		Images:       k.Images,
	}
}

// statusRequest тело PUT .../status
type statusRequest struct {
	Status string `json:"status"`
}

// RescheduleRequest тело PUT /appointments/{carId}
type RescheduleRequest struct {
	AppointmentDate types.Date `json:"appointmentDate"`
	ServiceIDs      []int64    `json:"serviceIds"`
}
