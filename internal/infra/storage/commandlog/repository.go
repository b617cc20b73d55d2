package commandlog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
	"github.com/m04kA/SMC-GarageDesk/pkg/psqlbuilder"
)

const table = "status_commands"

var columns = []string{
	"id",
	"kind",
	"target_status",
	"group_id",
	"target_ids",
	"succeeded_ids",
	"failed_ids",
	"compensated_ids",
	"outcome",
	"actor",
	"error",
	"created_at",
}

// Repository журнал команд смены статуса в postgres
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Record сохраняет команду, id и время создания назначаются при необходимости
func (r *Repository) Record(ctx context.Context, cmd *domain.StatusCommand) error {
	if cmd.ID == uuid.Nil {
		cmd.ID = uuid.New()
	}
	if cmd.CreatedAt.IsZero() {
		cmd.CreatedAt = time.Now().UTC()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(
			cmd.ID,
			string(cmd.Kind),
			cmd.TargetStatus,
			cmd.GroupID,
			pq.Array(nonNil(cmd.TargetIDs)),
			pq.Array(nonNil(cmd.Succeeded)),
			pq.Array(nonNil(cmd.Failed)),
			pq.Array(nonNil(cmd.Compensated)),
			string(cmd.Outcome),
			cmd.Actor,
			cmd.Error,
			cmd.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Record - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Record - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ListRecent последние команды, новые первыми
// kind пустой - команды всех типов
func (r *Repository) ListRecent(ctx context.Context, kind domain.CommandKind, limit int) ([]domain.StatusCommand, error) {
	builder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("created_at DESC").
		Limit(uint64(limit))
	if kind != "" {
		builder = builder.Where(squirrel.Eq{"kind": string(kind)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanCommands(rows)
}

func scanCommands(rows *sql.Rows) ([]domain.StatusCommand, error) {
	commands := make([]domain.StatusCommand, 0)
	for rows.Next() {
		var (
			cmd     domain.StatusCommand
			kind    string
			outcome string
		)
		err := rows.Scan(
			&cmd.ID,
			&kind,
			&cmd.TargetStatus,
			&cmd.GroupID,
			pq.Array(&cmd.TargetIDs),
			pq.Array(&cmd.Succeeded),
			pq.Array(&cmd.Failed),
			pq.Array(&cmd.Compensated),
			&outcome,
			&cmd.Actor,
			&cmd.Error,
			&cmd.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanCommands - scan: %v", ErrScanRow, err)
		}
		cmd.Kind = domain.CommandKind(kind)
		cmd.Outcome = domain.CommandOutcome(outcome)
		commands = append(commands, cmd)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanCommands - rows error: %v", ErrScanRow, err)
	}

	return commands, nil
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
