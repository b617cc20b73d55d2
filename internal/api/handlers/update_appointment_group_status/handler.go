package update_appointment_group_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GarageDesk/internal/api/handlers"
	"github.com/m04kA/SMC-GarageDesk/internal/api/middleware"
	"github.com/m04kA/SMC-GarageDesk/internal/usecase/change_appointment_status"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "не выбраны записи для изменения"
	msgInvalidStatus      = "недопустимый статус записи"
	msgGroupNotFound      = "записи не относятся к одной группе, обновите страницу"
	msgFetchFailed        = "не удалось загрузить записи, попробуйте позже"
	msgPartialFailure     = "статус изменен не для всех записей группы"
	msgCompensated        = "статус изменен не для всех записей, успешные изменения отменены"
	msgCommandFailed      = "не удалось изменить статус записей"
)

type Handler struct {
	useCase StatusUseCase
	logger  Logger
}

func NewHandler(useCase StatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/appointments/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var actor string
	if session, ok := middleware.GetSession(r.Context()); ok {
		actor = session.Email
	}

	// Декодируем body
	var req UpdateGroupStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/appointments/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Выполняем команду над всей группой
	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(actor))
	if err != nil {
		switch {
		case errors.Is(err, change_appointment_status.ErrInvalidInput):
			h.logger.Warn("PUT /admin/appointments/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, change_appointment_status.ErrInvalidStatus):
			h.logger.Warn("PUT /admin/appointments/status - Invalid status: %q", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, change_appointment_status.ErrGroupNotFound):
			h.logger.Warn("PUT /admin/appointments/status - Not one group: ids=%v", req.AppointmentIDs)
			handlers.RespondConflict(w, msgGroupNotFound)

		case errors.Is(err, change_appointment_status.ErrUnauthorized):
			h.logger.Warn("PUT /admin/appointments/status - Session expired")
			middleware.RedirectToLogin(w, r)

		case errors.Is(err, change_appointment_status.ErrFetchFailed):
			h.logger.Error("PUT /admin/appointments/status - Failed to fetch appointments: %v", err)
			handlers.RespondBadGateway(w, msgFetchFailed)

		case errors.Is(err, change_appointment_status.ErrPartialFailure) && resp != nil:
			h.logger.Warn("PUT /admin/appointments/status - Partial failure: group=%s, succeeded=%v, failed=%v, compensated=%v",
				resp.Report.GroupID, resp.Report.Succeeded, resp.Report.Failed, resp.Report.Compensated)
			message := msgPartialFailure
			if len(resp.Report.Compensated) > 0 {
				message = msgCompensated
			}
			handlers.RespondJSON(w, http.StatusMultiStatus, FromUseCaseResponse(resp, message))

		case errors.Is(err, change_appointment_status.ErrCommandFailed) && resp != nil:
			h.logger.Error("PUT /admin/appointments/status - Command failed: group=%s, error=%v", resp.Report.GroupID, err)
			handlers.RespondJSON(w, http.StatusBadGateway, FromUseCaseResponse(resp, msgCommandFailed))

		default:
			h.logger.Error("PUT /admin/appointments/status - Failed to change status: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/appointments/status - Group %s set to %s by %s: ids=%v",
		resp.Report.GroupID, resp.Report.Status, actor, resp.Report.Succeeded)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp, ""))
}
