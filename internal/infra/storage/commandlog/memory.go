package commandlog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
)

// DefaultMemoryCapacity сколько последних команд хранит журнал в памяти
const DefaultMemoryCapacity = 200

// MemoryRepository журнал в памяти, используется при выключенной базе данных
// Хранит последние capacity команд, старые вытесняются
type MemoryRepository struct {
	mu       sync.Mutex
	capacity int
	commands []domain.StatusCommand
}

func NewMemoryRepository(capacity int) *MemoryRepository {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &MemoryRepository{capacity: capacity}
}

func (m *MemoryRepository) Record(_ context.Context, cmd *domain.StatusCommand) error {
	if cmd.ID == uuid.Nil {
		cmd.ID = uuid.New()
	}
	if cmd.CreatedAt.IsZero() {
		cmd.CreatedAt = time.Now().UTC()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.commands = append(m.commands, cloneCommand(*cmd))
	if over := len(m.commands) - m.capacity; over > 0 {
		m.commands = append(m.commands[:0:0], m.commands[over:]...)
	}
	return nil
}

func (m *MemoryRepository) ListRecent(_ context.Context, kind domain.CommandKind, limit int) ([]domain.StatusCommand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.StatusCommand, 0, limit)
	for i := len(m.commands) - 1; i >= 0 && len(out) < limit; i-- {
		if kind != "" && m.commands[i].Kind != kind {
			continue
		}
		out = append(out, cloneCommand(m.commands[i]))
	}
	return out, nil
}

func cloneCommand(c domain.StatusCommand) domain.StatusCommand {
	c.TargetIDs = append([]int64(nil), c.TargetIDs...)
	c.Succeeded = append([]int64(nil), c.Succeeded...)
	c.Failed = append([]int64(nil), c.Failed...)
	c.Compensated = append([]int64(nil), c.Compensated...)
	return c
}
