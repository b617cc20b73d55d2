package update_kit_booking_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GarageDesk/internal/api/handlers"
	"github.com/m04kA/SMC-GarageDesk/internal/api/middleware"
	"github.com/m04kA/SMC-GarageDesk/internal/usecase/change_kit_status"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "недопустимый статус бронирования"
	msgUpdateInFlight     = "статус этого бронирования уже обновляется"
	msgNotFound           = "бронирование не найдено"
	msgRejected           = "бэкенд отклонил изменение статуса"
	msgUpdateFailed       = "не удалось обновить статус, попробуйте позже"
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

// Handle PUT /api/v1/admin/kit-bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PUT /admin/kit-bookings/{id}/status - Invalid booking ID: %q", vars["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Декодируем body
	var req UpdateKitStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/kit-bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var actor string
	if session, ok := middleware.GetSession(r.Context()); ok {
		actor = session.Email
	}

	resp, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID, actor))
	if err != nil {
		switch {
		case errors.Is(err, change_kit_status.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		case errors.Is(err, change_kit_status.ErrInvalidStatus):
			h.logger.Warn("PUT /admin/kit-bookings/{id}/status - Invalid status: booking_id=%d, status=%q", bookingID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, change_kit_status.ErrUpdateInFlight):
			h.logger.Warn("PUT /admin/kit-bookings/{id}/status - Update in flight: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgUpdateInFlight)

		case errors.Is(err, change_kit_status.ErrBookingNotFound):
			h.logger.Warn("PUT /admin/kit-bookings/{id}/status - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, change_kit_status.ErrRejected):
			h.logger.Warn("PUT /admin/kit-bookings/{id}/status - Rejected: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondConflict(w, msgRejected)

		case errors.Is(err, change_kit_status.ErrUnauthorized):
			h.logger.Warn("PUT /admin/kit-bookings/{id}/status - Session expired")
			middleware.RedirectToLogin(w, r)

		default:
			h.logger.Error("PUT /admin/kit-bookings/{id}/status - Failed to update status: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadGateway(w, msgUpdateFailed)
		}
		return
	}

	h.logger.Info("PUT /admin/kit-bookings/{id}/status - Booking %d set to %s by %s", bookingID, resp.Status, actor)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
