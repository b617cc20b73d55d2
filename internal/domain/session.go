package domain

// Role роль пользователя веб-интерфейса
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// Session результат проверки сессии на бэкенде
type Session struct {
	Authenticated bool
	Role          Role
	// UserID - идентификатор клиента или администратора
	UserID int64
	Name   string
	Email  string
}
