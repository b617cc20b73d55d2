package handlers

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
	"github.com/m04kA/SMC-GarageDesk/internal/service/grouping"
	"github.com/m04kA/SMC-GarageDesk/pkg/types"
)

// AppointmentResponse одна запись внутри группы
type AppointmentResponse struct {
	AppointmentID int64                    `json:"appointmentId"`
	ServiceID     int64                    `json:"serviceId,omitempty"`
	ServiceName   string                   `json:"serviceName"`
	Budget        decimal.Decimal          `json:"budget"`
	Status        domain.AppointmentStatus `json:"status"`
	LicensePlate  string                   `json:"licensePlate,omitempty"`
	CarID         int64                    `json:"carId,omitempty"`
}

// DateGroupResponse записи на одну дату
type DateGroupResponse struct {
	GroupID        string                   `json:"groupId"`
	Date           types.Date               `json:"appointmentDate"`
	TotalBudget    decimal.Decimal          `json:"totalBudget"`
	UnifiedStatus  domain.AppointmentStatus `json:"unifiedStatus"`
	StatusUniform  bool                     `json:"statusUniform"`
	PaymentStatus  string                   `json:"paymentStatus,omitempty"`
	Paid           bool                     `json:"paid"`
	AppointmentIDs []int64                  `json:"appointmentIds"`
	Appointments   []AppointmentResponse    `json:"appointments"`
}

// CarGroupResponse группы по датам для одной машины
type CarGroupResponse struct {
	CarModel string              `json:"carModel"`
	Dates    []DateGroupResponse `json:"dates"`
}

// CustomerGroupResponse записи клиента
type CustomerGroupResponse struct {
	CustomerName     string             `json:"customerName"`
	Mobile           string             `json:"mobile"`
	AppointmentCount int                `json:"appointmentCount"`
	Cars             []CarGroupResponse `json:"cars"`
}

// TableRowResponse строка плоской таблицы с объединением ячеек
type TableRowResponse struct {
	AppointmentID   int64                    `json:"appointmentId"`
	CustomerName    string                   `json:"customerName"`
	Mobile          string                   `json:"mobile"`
	CarModel        string                   `json:"carModel"`
	AppointmentDate types.Date               `json:"appointmentDate"`
	ServiceName     string                   `json:"serviceName"`
	Budget          decimal.Decimal          `json:"budget"`
	Status          domain.AppointmentStatus `json:"status"`
	FirstOfCustomer bool                     `json:"firstOfCustomer"`
	FirstOfCar      bool                     `json:"firstOfCar"`
	FirstOfDate     bool                     `json:"firstOfDate"`
	CustomerSpan    int                      `json:"customerRowSpan"`
	CarSpan         int                      `json:"carRowSpan"`
	DateSpan        int                      `json:"dateRowSpan"`
	TotalBudget     decimal.Decimal          `json:"totalBudget"`
	UnifiedStatus   domain.AppointmentStatus `json:"unifiedStatus"`
	GroupIDs        []int64                  `json:"groupAppointmentIds"`
}

// KitProgressStep шаг прогресса бронирования комплекта
type KitProgressStep struct {
	Status    domain.KitBookingStatus `json:"status"`
	Label     string                  `json:"label"`
	Completed bool                    `json:"completed"`
	Current   bool                    `json:"current"`
}

// KitBookingResponse бронирование комплекта с прогрессом
type KitBookingResponse struct {
	BookingID       int64                   `json:"bookingId"`
	KitName         string                  `json:"kitName"`
	CustomerName    string                  `json:"customerName"`
	Mobile          string                  `json:"mobile"`
	CarModel        string                  `json:"carModel"`
	DropOffDate     types.Date              `json:"dropOffDate"`
	PickUpDate      types.Date              `json:"pickUpDate"`
	Price           decimal.Decimal         `json:"price"`
	BookingStatus   domain.KitBookingStatus `json:"bookingStatus"`
	StatusLabel     string                  `json:"statusLabel"`
	StepIndex       int                     `json:"stepIndex"`
	ProgressPercent int                     `json:"progressPercent"`
	Steps           []KitProgressStep       `json:"steps"`
	Images          []string                `json:"images"`
}

func FromDateGroup(g domain.DateGroup) DateGroupResponse {
	resp := DateGroupResponse{
		GroupID:        g.GroupID(),
		Date:           g.Date,
		TotalBudget:    g.TotalBudget,
		UnifiedStatus:  g.UnifiedStatus,
		StatusUniform:  grouping.Uniform(g),
		Paid:           g.IsPaid(),
		AppointmentIDs: g.AppointmentIDs(),
		Appointments:   make([]AppointmentResponse, len(g.Members)),
	}
	if len(g.Members) > 0 {
		resp.PaymentStatus = g.Members[0].PaymentStatus
	}
	for i, m := range g.Members {
		resp.Appointments[i] = AppointmentResponse{
			AppointmentID: m.ID,
			ServiceID:     m.ServiceID,
			ServiceName:   m.ServiceName,
			Budget:        m.Budget,
			Status:        m.Status,
			LicensePlate:  m.LicensePlate,
			CarID:         m.CarID,
		}
	}
	return resp
}

func FromCarGroups(cars []domain.CarGroup) []CarGroupResponse {
	out := make([]CarGroupResponse, len(cars))
	for i, c := range cars {
		dates := make([]DateGroupResponse, len(c.Dates))
		for j, d := range c.Dates {
			dates[j] = FromDateGroup(d)
		}
		out[i] = CarGroupResponse{CarModel: c.CarModel, Dates: dates}
	}
	return out
}

func FromCustomerGroups(groups []domain.CustomerGroup) []CustomerGroupResponse {
	out := make([]CustomerGroupResponse, len(groups))
	for i := range groups {
		out[i] = CustomerGroupResponse{
			CustomerName:     groups[i].CustomerName,
			Mobile:           groups[i].Mobile,
			AppointmentCount: groups[i].AppointmentCount(),
			Cars:             FromCarGroups(groups[i].Cars),
		}
	}
	return out
}

func FromTableRows(rows []grouping.TableRow) []TableRowResponse {
	out := make([]TableRowResponse, len(rows))
	for i, r := range rows {
		out[i] = TableRowResponse{
			AppointmentID:   r.Appointment.ID,
			CustomerName:    r.CustomerName,
			Mobile:          r.Mobile,
			CarModel:        r.CarModel,
			AppointmentDate: r.Appointment.Date,
			ServiceName:     r.Appointment.ServiceName,
			Budget:          r.Appointment.Budget,
			Status:          r.Appointment.Status,
			FirstOfCustomer: r.FirstOfCustomer,
			FirstOfCar:      r.FirstOfCar,
			FirstOfDate:     r.FirstOfDate,
			CustomerSpan:    r.CustomerSpan,
			CarSpan:         r.CarSpan,
			DateSpan:        r.DateSpan,
			TotalBudget:     r.TotalBudget,
			UnifiedStatus:   r.UnifiedStatus,
			GroupIDs:        r.GroupIDs,
		}
	}
	return out
}

func FromKitBooking(b domain.KitBooking) KitBookingResponse {
	steps := b.Status.Steps()
	respSteps := make([]KitProgressStep, len(steps))
	for i, s := range steps {
		respSteps[i] = KitProgressStep(s)
	}

	images := b.Images
	if images == nil {
		images = []string{}
	}

	return KitBookingResponse{
		BookingID:       b.ID,
		KitName:         b.KitName,
		CustomerName:    b.CustomerName,
		Mobile:          b.Mobile,
		CarModel:        b.CarModel,
		DropOffDate:     b.DropOffDate,
		PickUpDate:      b.PickUpDate,
		Price:           b.Price,
		BookingStatus:   b.Status,
		StatusLabel:     b.Status.Label(),
		StepIndex:       b.Status.StepIndex(),
		ProgressPercent: b.Status.ProgressPercent(),
		Steps:           respSteps,
		Images:          images,
	}
}

func FromKitBookings(list []domain.KitBooking) []KitBookingResponse {
	out := make([]KitBookingResponse, len(list))
	for i, b := range list {
		out[i] = FromKitBooking(b)
	}
	return out
}
