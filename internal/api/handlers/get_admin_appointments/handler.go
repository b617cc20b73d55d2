package get_admin_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GarageDesk/internal/api/handlers"
	"github.com/m04kA/SMC-GarageDesk/internal/api/middleware"
	"github.com/m04kA/SMC-GarageDesk/internal/integrations/garageapi"
	"github.com/m04kA/SMC-GarageDesk/internal/service/grouping"
)

const (
	msgInvalidLayout = "неизвестный формат выдачи, допустимо: groups, table"
	msgFetchFailed   = "не удалось загрузить записи, попробуйте обновить страницу"
)

const (
	layoutGroups = "groups"
	layoutTable  = "table"
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

// Handle GET /api/v1/admin/appointments?layout=groups|table
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	layout := r.URL.Query().Get("layout")
	if layout == "" {
		layout = layoutGroups
	}
	if layout != layoutGroups && layout != layoutTable {
		handlers.RespondBadRequest(w, msgInvalidLayout)
		return
	}

	appointments, err := h.client.GetAllAppointments(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, garageapi.ErrUnauthorized):
			h.logger.Warn("GET /admin/appointments - Session expired")
			middleware.RedirectToLogin(w, r)
		default:
			h.logger.Error("GET /admin/appointments - Failed to fetch appointments: %v", err)
			handlers.RespondBadGateway(w, msgFetchFailed)
		}
		return
	}

	groups := grouping.GroupByCustomer(appointments)

	if layout == layoutTable {
		rows := grouping.TableRows(groups)
		h.logger.Info("GET /admin/appointments - %d appointments, %d rows", len(appointments), len(rows))
		handlers.RespondJSON(w, http.StatusOK, TableResponse{Rows: handlers.FromTableRows(rows)})
		return
	}

	h.logger.Info("GET /admin/appointments - %d appointments in %d customer groups", len(appointments), len(groups))
	handlers.RespondJSON(w, http.StatusOK, GroupsResponse{Customers: handlers.FromCustomerGroups(groups)})
}
