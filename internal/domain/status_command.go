package domain

import (
	"time"

	"github.com/google/uuid"
)

// CommandKind тип команды смены статуса
type CommandKind string

const (
	CommandAppointmentGroup CommandKind = "appointment_group"
	CommandKitBooking       CommandKind = "kit_booking"
)

// CommandOutcome итог выполнения команды
type CommandOutcome string

const (
	OutcomeSucceeded CommandOutcome = "succeeded"
	// OutcomePartial часть записей группы обновлена, часть нет
	OutcomePartial CommandOutcome = "partial"
	OutcomeFailed  CommandOutcome = "failed"
)

// StatusCommand запись журнала команд смены статуса
type StatusCommand struct {
	ID           uuid.UUID
	Kind         CommandKind
	TargetStatus string
	GroupID      string
	TargetIDs    []int64
	Succeeded    []int64
	Failed       []int64
	Compensated  []int64
	Outcome      CommandOutcome
	Actor        string
	Error        string
	CreatedAt    time.Time
}
