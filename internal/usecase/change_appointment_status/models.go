package change_appointment_status

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
)

// Request запрос на смену статуса группы записей
type Request struct {
	AppointmentIDs []int64 // Записи одной группы (клиент, машина, дата)
	Status         string  // Новый статус
	Actor          string  // Email администратора, попадает в журнал
}

// MemberOutcome результат по одной записи группы
type MemberOutcome struct {
	AppointmentID  int64
	PreviousStatus domain.AppointmentStatus
	Succeeded      bool
	Compensated    bool
	Error          string
}

// Report отчет о выполнении команды для оператора
type Report struct {
	CommandID   uuid.UUID
	GroupID     string
	Status      domain.AppointmentStatus
	Outcome     domain.CommandOutcome
	Members     []MemberOutcome
	Succeeded   []int64
	Failed      []int64
	Compensated []int64
}

// Response отчет и пересчитанные группы
type Response struct {
	Report Report
	Groups []domain.CustomerGroup
	// Stale - повторная выборка не удалась, группы пересчитаны по локально исправленному снимку
	Stale bool
}
