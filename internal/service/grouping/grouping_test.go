package grouping

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
	"github.com/m04kA/SMC-GarageDesk/pkg/types"
)

func appt(id int64, customer, car, date string, budget int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:           id,
		CustomerName: customer,
		Mobile:       "+91-" + customer,
		CarModel:     car,
		Date:         types.MustParseDate(date),
		ServiceName:  "service",
		Budget:       decimal.NewFromInt(budget),
		Status:       status,
		GroupID:      customer + "-" + car + "-" + date,
	}
}

func flatten(groups []domain.CustomerGroup) []*domain.Appointment {
	var out []*domain.Appointment
	for _, c := range groups {
		for _, car := range c.Cars {
			for _, d := range car.Dates {
				out = append(out, d.Members...)
			}
		}
	}
	return out
}

func TestGroupByCustomer_Empty(t *testing.T) {
	groups := GroupByCustomer(nil)
	require.NotNil(t, groups)
	assert.Empty(t, groups)

	groups = GroupByCustomer([]*domain.Appointment{})
	require.NotNil(t, groups)
	assert.Empty(t, groups)

	assert.NotNil(t, GroupByCar(nil))
	assert.NotNil(t, TableRows(nil))
}

func TestGroupByCustomer_MembersShareKey(t *testing.T) {
	input := []*domain.Appointment{
		appt(1, "Asha", "Swift", "2024-01-10", 500, domain.AppointmentPending),
		appt(2, "Ravi", "City", "2024-03-01", 900, domain.AppointmentAccepted),
		appt(3, "Asha", "Swift", "2024-01-10", 300, domain.AppointmentPending),
		appt(4, "Asha", "Creta", "2024-01-10", 100, domain.AppointmentPending),
		appt(5, "Asha", "Swift", "2024-02-15", 700, domain.AppointmentRejected),
		appt(6, "Ravi", "City", "2024-03-01", 100, domain.AppointmentAccepted),
	}

	groups := GroupByCustomer(input)

	for _, c := range groups {
		for _, car := range c.Cars {
			for _, d := range car.Dates {
				require.NotEmpty(t, d.Members)
				for _, m := range d.Members {
					assert.Equal(t, c.CustomerName, m.CustomerName)
					assert.Equal(t, car.CarModel, m.CarModel)
					assert.True(t, d.Date.Equal(m.Date))
				}
			}
		}
	}

	// Ни одна запись не потеряна и не продублирована
	flat := flatten(groups)
	require.Len(t, flat, len(input))
	seen := make(map[int64]int)
	for _, m := range flat {
		seen[m.ID]++
	}
	for _, in := range input {
		assert.Equal(t, 1, seen[in.ID], "appointment %d", in.ID)
	}
}

func TestGroupByCustomer_OrderAndShape(t *testing.T) {
	input := []*domain.Appointment{
		appt(1, "Asha", "Swift", "2024-01-10", 500, domain.AppointmentPending),
		appt(2, "Ravi", "City", "2024-03-01", 900, domain.AppointmentAccepted),
		appt(3, "Asha", "Swift", "2024-01-10", 300, domain.AppointmentPending),
		appt(4, "Asha", "Creta", "2024-01-10", 100, domain.AppointmentPending),
		appt(5, "Asha", "Swift", "2024-02-15", 700, domain.AppointmentRejected),
	}

	groups := GroupByCustomer(input)
	require.Len(t, groups, 2)

	// Ravi появляется первым после сортировки по дате
	assert.Equal(t, "Ravi", groups[0].CustomerName)
	assert.Equal(t, "Asha", groups[1].CustomerName)
	assert.Equal(t, "+91-Asha", groups[1].Mobile)

	asha := groups[1]
	require.Len(t, asha.Cars, 2)
	assert.Equal(t, "Swift", asha.Cars[0].CarModel)
	assert.Equal(t, "Creta", asha.Cars[1].CarModel)

	swift := asha.Cars[0]
	require.Len(t, swift.Dates, 2)
	assert.Equal(t, "2024-02-15", swift.Dates[0].Date.String())
	assert.Equal(t, "2024-01-10", swift.Dates[1].Date.String())
	assert.Equal(t, []int64{1, 3}, swift.Dates[1].AppointmentIDs())

	byModel := asha.CarsByModel()
	require.Contains(t, byModel, "Creta")
	assert.Len(t, byModel["Creta"], 1)
	assert.Equal(t, 4, asha.AppointmentCount())
}

func TestGroupByCustomer_DateDescending(t *testing.T) {
	input := []*domain.Appointment{
		appt(1, "Asha", "Swift", "2024-01-10", 1, domain.AppointmentPending),
		appt(2, "Asha", "Swift", "2024-03-01", 1, domain.AppointmentPending),
		appt(3, "Asha", "Swift", "2024-02-15", 1, domain.AppointmentPending),
	}

	groups := GroupByCustomer(input)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Cars, 1)

	var dates []string
	for _, d := range groups[0].Cars[0].Dates {
		dates = append(dates, d.Date.String())
	}
	assert.Equal(t, []string{"2024-03-01", "2024-02-15", "2024-01-10"}, dates)

	// Исходный срез не изменен
	assert.Equal(t, int64(1), input[0].ID)
}

func TestGroupByCustomer_TotalBudget(t *testing.T) {
	input := []*domain.Appointment{
		appt(1, "Asha", "Swift", "2024-01-10", 1200, domain.AppointmentPending),
		appt(2, "Asha", "Swift", "2024-01-10", 800, domain.AppointmentPending),
	}

	groups := GroupByCustomer(input)
	group := groups[0].Cars[0].Dates[0]
	assert.True(t, decimal.NewFromInt(2000).Equal(group.TotalBudget), "got %s", group.TotalBudget)
}

func TestGroupByCustomer_TotalBudgetDecimal(t *testing.T) {
	a := appt(1, "Asha", "Swift", "2024-01-10", 0, domain.AppointmentPending)
	a.Budget = decimal.RequireFromString("0.1")
	b := appt(2, "Asha", "Swift", "2024-01-10", 0, domain.AppointmentPending)
	b.Budget = decimal.RequireFromString("0.2")

	group := GroupByCustomer([]*domain.Appointment{a, b})[0].Cars[0].Dates[0]
	assert.Equal(t, "0.3", group.TotalBudget.String())
}

// Статус группы берется у первой записи; единообразие статусов в группе
// должно обеспечиваться бэкендом, поэтому здесь фиксируется только поведение
func TestGroupByCustomer_UnifiedStatusIsFirstMember(t *testing.T) {
	input := []*domain.Appointment{
		appt(1, "Asha", "Swift", "2024-01-10", 1, domain.AppointmentAccepted),
		appt(2, "Asha", "Swift", "2024-01-10", 1, domain.AppointmentRejected),
	}

	group := GroupByCustomer(input)[0].Cars[0].Dates[0]
	assert.Equal(t, domain.AppointmentAccepted, group.UnifiedStatus)
	assert.False(t, Uniform(group))

	input[1].Status = domain.AppointmentAccepted
	group = GroupByCustomer(input)[0].Cars[0].Dates[0]
	assert.True(t, Uniform(group))
}

func TestGroupByCustomer_NoKeyNormalization(t *testing.T) {
	input := []*domain.Appointment{
		appt(1, "Asha", "Swift", "2024-01-10", 1, domain.AppointmentPending),
		appt(2, "asha", "Swift", "2024-01-10", 1, domain.AppointmentPending),
		appt(3, "Asha ", "Swift", "2024-01-10", 1, domain.AppointmentPending),
	}

	assert.Len(t, GroupByCustomer(input), 3)
}

func TestGroupByCar(t *testing.T) {
	input := []*domain.Appointment{
		appt(1, "Asha", "Swift", "2024-01-10", 100, domain.AppointmentPending),
		appt(2, "Asha", "Creta", "2024-02-01", 200, domain.AppointmentPending),
		appt(3, "Asha", "Swift", "2024-01-10", 300, domain.AppointmentPending),
	}

	cars := GroupByCar(input)
	require.Len(t, cars, 2)
	assert.Equal(t, "Creta", cars[0].CarModel)
	assert.Equal(t, "Swift", cars[1].CarModel)
	assert.True(t, decimal.NewFromInt(400).Equal(cars[1].Dates[0].TotalBudget))

	group, ok := FindDateGroup(cars, "Asha-Swift-2024-01-10")
	require.True(t, ok)
	assert.Equal(t, []int64{1, 3}, group.AppointmentIDs())

	_, ok = FindDateGroup(cars, "missing")
	assert.False(t, ok)
	_, ok = FindDateGroup(cars, "")
	assert.False(t, ok)
}

func TestDateGroupOf(t *testing.T) {
	groups := GroupByCustomer([]*domain.Appointment{
		appt(1, "Asha", "Swift", "2024-01-10", 1, domain.AppointmentPending),
		appt(2, "Asha", "Swift", "2024-01-10", 1, domain.AppointmentPending),
		appt(3, "Asha", "Swift", "2024-02-10", 1, domain.AppointmentPending),
	})

	group, ok := DateGroupOf(groups, []int64{2, 1})
	require.True(t, ok)
	assert.Equal(t, "2024-01-10", group.Date.String())

	_, ok = DateGroupOf(groups, []int64{1, 3})
	assert.False(t, ok, "ids from different date groups")

	_, ok = DateGroupOf(groups, []int64{99})
	assert.False(t, ok)

	_, ok = DateGroupOf(groups, nil)
	assert.False(t, ok)
}
