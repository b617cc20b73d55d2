package get_status_commands

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-GarageDesk/internal/api/handlers"
	"github.com/m04kA/SMC-GarageDesk/internal/domain"
)

const (
	msgInvalidKind  = "неизвестный тип команды, допустимо: appointment_group, kit_booking"
	msgInvalidLimit = "некорректный limit"
	msgListFailed   = "не удалось загрузить журнал команд"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

type Handler struct {
	journal CommandJournal
	logger  Logger
}

func NewHandler(journal CommandJournal, logger Logger) *Handler {
	return &Handler{
		journal: journal,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/status-commands?kind=&limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	kind := domain.CommandKind(query.Get("kind"))
	if kind != "" && kind != domain.CommandAppointmentGroup && kind != domain.CommandKitBooking {
		handlers.RespondBadRequest(w, msgInvalidKind)
		return
	}

	limit := defaultLimit
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /admin/status-commands - Invalid limit: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = min(parsed, maxLimit)
	}

	commands, err := h.journal.ListRecent(r.Context(), kind, limit)
	if err != nil {
		h.logger.Error("GET /admin/status-commands - Failed to list commands: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromCommands(commands))
}
