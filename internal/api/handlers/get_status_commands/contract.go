package get_status_commands

import (
	"context"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
)

type CommandJournal interface {
	ListRecent(ctx context.Context, kind domain.CommandKind, limit int) ([]domain.StatusCommand, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
