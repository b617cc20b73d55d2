package grouping

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
)

// TableRow строка таблицы с объединенными ячейками
// First* - строка первая в своей группе и рисует объединенную ячейку,
// *Span - сколько строк эта ячейка занимает
type TableRow struct {
	Appointment *domain.Appointment

	CustomerName    string
	Mobile          string
	CarModel        string
	FirstOfCustomer bool
	FirstOfCar      bool
	FirstOfDate     bool
	CustomerSpan    int
	CarSpan         int
	DateSpan        int

	// Заполняются для всех строк группы, отображаются только в первой
	TotalBudget   decimal.Decimal
	UnifiedStatus domain.AppointmentStatus
	GroupIDs      []int64
}

// TableRows разворачивает вложенную группировку в строки таблицы
// Флаги и размеры объединений вычисляются только по позиции в структуре
func TableRows(groups []domain.CustomerGroup) []TableRow {
	rows := make([]TableRow, 0)

	for _, customer := range groups {
		customerSpan := customer.AppointmentCount()
		customerRow := 0

		for _, car := range customer.Cars {
			carSpan := car.AppointmentCount()
			carRow := 0

			for _, date := range car.Dates {
				ids := date.AppointmentIDs()
				for i, appt := range date.Members {
					rows = append(rows, TableRow{
						Appointment:     appt,
						CustomerName:    customer.CustomerName,
						Mobile:          customer.Mobile,
						CarModel:        car.CarModel,
						FirstOfCustomer: customerRow == 0,
						FirstOfCar:      carRow == 0,
						FirstOfDate:     i == 0,
						CustomerSpan:    customerSpan,
						CarSpan:         carSpan,
						DateSpan:        len(date.Members),
						TotalBudget:     date.TotalBudget,
						UnifiedStatus:   date.UnifiedStatus,
						GroupIDs:        ids,
					})
					customerRow++
					carRow++
				}
			}
		}
	}

	return rows
}
