package get_my_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GarageDesk/internal/api/handlers"
	"github.com/m04kA/SMC-GarageDesk/internal/api/middleware"
	"github.com/m04kA/SMC-GarageDesk/internal/integrations/garageapi"
	"github.com/m04kA/SMC-GarageDesk/internal/service/grouping"
)

const msgFetchFailed = "не удалось загрузить ваши записи, попробуйте обновить страницу"

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

// Handle GET /api/v1/me/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		middleware.RedirectToLogin(w, r)
		return
	}

	appointments, err := h.client.GetCustomerAppointments(r.Context(), session.UserID)
	if err != nil {
		switch {
		case errors.Is(err, garageapi.ErrUnauthorized):
			h.logger.Warn("GET /me/appointments - Session expired: customer_id=%d", session.UserID)
			middleware.RedirectToLogin(w, r)
		case errors.Is(err, garageapi.ErrNotFound):
			// У нового клиента записей еще нет
			handlers.RespondJSON(w, http.StatusOK, MyAppointmentsResponse{Cars: []handlers.CarGroupResponse{}})
		default:
			h.logger.Error("GET /me/appointments - Failed to fetch appointments: customer_id=%d, error=%v", session.UserID, err)
			handlers.RespondBadGateway(w, msgFetchFailed)
		}
		return
	}

	cars := grouping.GroupByCar(appointments)
	h.logger.Info("GET /me/appointments - %d appointments on %d cars: customer_id=%d", len(appointments), len(cars), session.UserID)
	handlers.RespondJSON(w, http.StatusOK, MyAppointmentsResponse{Cars: handlers.FromCarGroups(cars)})
}
