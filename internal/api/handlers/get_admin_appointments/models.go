package get_admin_appointments

import "github.com/m04kA/SMC-GarageDesk/internal/api/handlers"

// GroupsResponse клиенты -> машины -> даты
type GroupsResponse struct {
	Customers []handlers.CustomerGroupResponse `json:"customers"`
}

// TableResponse плоская таблица с объединением ячеек
type TableResponse struct {
	Rows []handlers.TableRowResponse `json:"rows"`
}
