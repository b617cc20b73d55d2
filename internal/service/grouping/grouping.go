package grouping

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
)

// GroupByCustomer группирует плоский список записей: клиент -> модель машины -> дата
//
// Перед группировкой записи стабильно сортируются по дате (сначала новые).
// Группы создаются в порядке первого появления ключа, порядок записей внутри
// группы совпадает с порядком после сортировки. Ключи сравниваются как есть,
// без нормализации регистра и пробелов.
//
// Входной срез не изменяется. Пустой вход дает пустой (не nil) результат.
func GroupByCustomer(appointments []*domain.Appointment) []domain.CustomerGroup {
	sorted := sortByDateDesc(appointments)

	result := make([]domain.CustomerGroup, 0)
	index := make(map[string]int)
	members := make([][]*domain.Appointment, 0)

	for _, appt := range sorted {
		i, ok := index[appt.CustomerName]
		if !ok {
			i = len(result)
			index[appt.CustomerName] = i
			result = append(result, domain.CustomerGroup{
				CustomerName: appt.CustomerName,
				Mobile:       appt.Mobile,
			})
			members = append(members, nil)
		}
		members[i] = append(members[i], appt)
	}

	for i := range result {
		result[i].Cars = groupCars(members[i])
	}

	return result
}

// GroupByCar группировка для клиентской выдачи: модель машины -> дата
func GroupByCar(appointments []*domain.Appointment) []domain.CarGroup {
	return groupCars(sortByDateDesc(appointments))
}

// groupCars группирует уже отсортированные записи по модели машины, затем по дате
func groupCars(sorted []*domain.Appointment) []domain.CarGroup {
	cars := make([]domain.CarGroup, 0)
	index := make(map[string]int)
	members := make([][]*domain.Appointment, 0)

	for _, appt := range sorted {
		i, ok := index[appt.CarModel]
		if !ok {
			i = len(cars)
			index[appt.CarModel] = i
			cars = append(cars, domain.CarGroup{CarModel: appt.CarModel})
			members = append(members, nil)
		}
		members[i] = append(members[i], appt)
	}

	for i := range cars {
		cars[i].Dates = groupDates(members[i])
	}

	return cars
}

func groupDates(sorted []*domain.Appointment) []domain.DateGroup {
	dates := make([]domain.DateGroup, 0)
	index := make(map[string]int)

	for _, appt := range sorted {
		key := appt.Date.String()
		i, ok := index[key]
		if !ok {
			i = len(dates)
			index[key] = i
			dates = append(dates, domain.DateGroup{Date: appt.Date})
		}
		dates[i].Members = append(dates[i].Members, appt)
	}

	for i := range dates {
		dates[i].TotalBudget = TotalBudget(dates[i].Members)
		// Статус группы - статус первой записи, единообразие не проверяется
		dates[i].UnifiedStatus = dates[i].Members[0].Status
	}

	return dates
}

// TotalBudget точная сумма бюджетов записей
func TotalBudget(appointments []*domain.Appointment) decimal.Decimal {
	total := decimal.Zero
	for _, appt := range appointments {
		total = total.Add(appt.Budget)
	}
	return total
}

// Uniform returns true if every member of the group shares the unified status
func Uniform(group domain.DateGroup) bool {
	for _, m := range group.Members {
		if m.Status != group.UnifiedStatus {
			return false
		}
	}
	return true
}

// sortByDateDesc возвращает копию, стабильно отсортированную по дате по убыванию
func sortByDateDesc(appointments []*domain.Appointment) []*domain.Appointment {
	sorted := make([]*domain.Appointment, len(appointments))
	copy(sorted, appointments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}
