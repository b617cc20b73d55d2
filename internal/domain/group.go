package domain

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-GarageDesk/pkg/types"
)

// DateGroup записи одного клиента на одну машину на одну дату
// Производная структура, пересчитывается при каждой выборке
type DateGroup struct {
	Date          types.Date
	Members       []*Appointment
	TotalBudget   decimal.Decimal
	UnifiedStatus AppointmentStatus
}

// CarGroup группы по датам для одной модели машины
type CarGroup struct {
	CarModel string
	Dates    []DateGroup
}

// CustomerGroup записи одного клиента, сгруппированные по машинам
type CustomerGroup struct {
	CustomerName string
	Mobile       string
	Cars         []CarGroup
}

// GroupID идентификатор группы на бэкенде (берется у первой записи)
func (g *DateGroup) GroupID() string {
	if len(g.Members) == 0 {
		return ""
	}
	return g.Members[0].GroupID
}

// AppointmentIDs идентификаторы записей группы в порядке отображения
func (g *DateGroup) AppointmentIDs() []int64 {
	ids := make([]int64, len(g.Members))
	for i, m := range g.Members {
		ids[i] = m.ID
	}
	return ids
}

// IsPaid returns true if the first member reports the group as paid
func (g *DateGroup) IsPaid() bool {
	return len(g.Members) > 0 && g.Members[0].IsPaid()
}

// AppointmentCount количество записей по машине
func (c *CarGroup) AppointmentCount() int {
	n := 0
	for _, d := range c.Dates {
		n += len(d.Members)
	}
	return n
}

// AppointmentCount количество записей клиента
func (c *CustomerGroup) AppointmentCount() int {
	n := 0
	for i := range c.Cars {
		n += c.Cars[i].AppointmentCount()
	}
	return n
}

// CarsByModel отображение модели машины на группы по датам
func (c *CustomerGroup) CarsByModel() map[string][]DateGroup {
	m := make(map[string][]DateGroup, len(c.Cars))
	for _, car := range c.Cars {
		m[car.CarModel] = car.Dates
	}
	return m
}
