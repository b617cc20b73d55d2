package get_status_commands

import (
	"time"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
)

// StatusCommandResponse запись журнала
type StatusCommandResponse struct {
	ID           string                `json:"id"`
	Kind         domain.CommandKind    `json:"kind"`
	TargetStatus string                `json:"targetStatus"`
	GroupID      string                `json:"groupId,omitempty"`
	TargetIDs    []int64               `json:"targetIds"`
	Succeeded    []int64               `json:"succeeded"`
	Failed       []int64               `json:"failed"`
	Compensated  []int64               `json:"compensated"`
	Outcome      domain.CommandOutcome `json:"outcome"`
	Actor        string                `json:"actor,omitempty"`
	Error        string                `json:"error,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// StatusCommandsResponse последние команды, новые первыми
type StatusCommandsResponse struct {
	Commands []StatusCommandResponse `json:"commands"`
}

func FromCommands(list []domain.StatusCommand) StatusCommandsResponse {
	out := make([]StatusCommandResponse, len(list))
	for i, c := range list {
		out[i] = StatusCommandResponse{
			ID:           c.ID.String(),
			Kind:         c.Kind,
			TargetStatus: c.TargetStatus,
			GroupID:      c.GroupID,
			TargetIDs:    orEmpty(c.TargetIDs),
			Succeeded:    orEmpty(c.Succeeded),
			Failed:       orEmpty(c.Failed),
			Compensated:  orEmpty(c.Compensated),
			Outcome:      c.Outcome,
			Actor:        c.Actor,
			Error:        c.Error,
			CreatedAt:    c.CreatedAt,
		}
	}
	return StatusCommandsResponse{Commands: out}
}

func orEmpty(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
