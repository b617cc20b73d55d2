package delete_appointment_group

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GarageDesk/internal/api/handlers"
	"github.com/m04kA/SMC-GarageDesk/internal/api/middleware"
	"github.com/m04kA/SMC-GarageDesk/internal/integrations/garageapi"
)

const (
	msgInvalidGroupID = "некорректный ID группы записей"
	msgNotFound       = "группа записей не найдена"
	msgCannotDelete   = "группа записей не может быть удалена"
	msgDeleteFailed   = "не удалось удалить записи, попробуйте позже"
)

type Handler struct {
	client AppointmentsClient
	logger Logger
}

func NewHandler(client AppointmentsClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle DELETE /api/v1/me/appointments/groups/{groupId}
// Клиент удаляет только свои записи: идентификатор берется из сессии
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		middleware.RedirectToLogin(w, r)
		return
	}

	groupID := strings.TrimSpace(mux.Vars(r)["groupId"])
	if groupID == "" {
		handlers.RespondBadRequest(w, msgInvalidGroupID)
		return
	}

	err := h.client.DeleteAppointmentGroup(r.Context(), session.UserID, groupID)
	if err != nil {
		switch {
		case errors.Is(err, garageapi.ErrUnauthorized):
			h.logger.Warn("DELETE /me/appointments/groups/{id} - Session expired")
			middleware.RedirectToLogin(w, r)

		case errors.Is(err, garageapi.ErrNotFound):
			h.logger.Warn("DELETE /me/appointments/groups/{id} - Not found: customer_id=%d, group_id=%s", session.UserID, groupID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, garageapi.ErrConflict), errors.Is(err, garageapi.ErrBadRequest):
			h.logger.Warn("DELETE /me/appointments/groups/{id} - Cannot delete: group_id=%s, error=%v", groupID, err)
			handlers.RespondConflict(w, msgCannotDelete)

		default:
			h.logger.Error("DELETE /me/appointments/groups/{id} - Failed to delete: group_id=%s, error=%v", groupID, err)
			handlers.RespondBadGateway(w, msgDeleteFailed)
		}
		return
	}

	h.logger.Info("DELETE /me/appointments/groups/{id} - Group deleted: customer_id=%d, group_id=%s", session.UserID, groupID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
