package reschedule_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GarageDesk/internal/api/handlers"
	"github.com/m04kA/SMC-GarageDesk/internal/api/middleware"
	"github.com/m04kA/SMC-GarageDesk/internal/integrations/garageapi"
	"github.com/m04kA/SMC-GarageDesk/pkg/types"
)

const (
	msgInvalidCarID       = "некорректный ID машины"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgDateRequired       = "укажите новую дату записи"
	msgDateInPast         = "нельзя перенести запись на прошедшую дату"
	msgServicesRequired   = "выберите хотя бы одну услугу"
	msgInvalidService     = "некорректный список услуг"
	msgNotFound           = "записи для этой машины не найдены"
	msgCannotReschedule   = "запись уже подтверждена и не может быть перенесена"
	msgRescheduleFailed   = "не удалось перенести запись, попробуйте позже"
)

type Handler struct {
	client AppointmentsClient
	logger Logger
	now    func() time.Time
}

func NewHandler(client AppointmentsClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// Handle PUT /api/v1/me/cars/{carId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем carId из URL
	vars := mux.Vars(r)
	carID, err := strconv.ParseInt(vars["carId"], 10, 64)
	if err != nil || carID <= 0 {
		h.logger.Warn("PUT /me/cars/{id}/appointments - Invalid car ID: %q", vars["carId"])
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	// Декодируем body
	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /me/cars/{id}/appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if msg := req.Validate(types.DateOf(h.now())); msg != "" {
		handlers.RespondBadRequest(w, msg)
		return
	}

	err = h.client.RescheduleAppointments(r.Context(), carID, req.ToClientRequest())
	if err != nil {
		switch {
		case errors.Is(err, garageapi.ErrUnauthorized):
			h.logger.Warn("PUT /me/cars/{id}/appointments - Session expired")
			middleware.RedirectToLogin(w, r)

		case errors.Is(err, garageapi.ErrNotFound):
			h.logger.Warn("PUT /me/cars/{id}/appointments - Not found: car_id=%d", carID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, garageapi.ErrConflict), errors.Is(err, garageapi.ErrBadRequest):
			h.logger.Warn("PUT /me/cars/{id}/appointments - Cannot reschedule: car_id=%d, error=%v", carID, err)
			handlers.RespondConflict(w, msgCannotReschedule)

		default:
			h.logger.Error("PUT /me/cars/{id}/appointments - Failed to reschedule: car_id=%d, error=%v", carID, err)
			handlers.RespondBadGateway(w, msgRescheduleFailed)
		}
		return
	}

	h.logger.Info("PUT /me/cars/{id}/appointments - Rescheduled: car_id=%d, date=%s, services=%v",
		carID, req.AppointmentDate, req.ServiceIDs)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
