package get_kit_bookings

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GarageDesk/internal/api/handlers"
	"github.com/m04kA/SMC-GarageDesk/internal/api/middleware"
	"github.com/m04kA/SMC-GarageDesk/internal/domain"
	"github.com/m04kA/SMC-GarageDesk/internal/integrations/garageapi"
)

const msgFetchFailed = "не удалось загрузить бронирования, попробуйте обновить страницу"

type Handler struct {
	client KitBookingsClient
	role   domain.Role
	logger Logger
}

// NewHandler администратор видит все бронирования, клиент только свои
func NewHandler(client KitBookingsClient, role domain.Role, logger Logger) *Handler {
	return &Handler{
		client: client,
		role:   role,
		logger: logger,
	}
}

// Handle GET /api/v1/admin/kit-bookings, GET /api/v1/me/kit-bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		middleware.RedirectToLogin(w, r)
		return
	}

	bookings, err := h.fetch(r.Context(), session)
	if err != nil {
		switch {
		case errors.Is(err, garageapi.ErrUnauthorized):
			h.logger.Warn("GET %s - Session expired", r.URL.Path)
			middleware.RedirectToLogin(w, r)
		default:
			h.logger.Error("GET %s - Failed to fetch kit bookings: %v", r.URL.Path, err)
			handlers.RespondBadGateway(w, msgFetchFailed)
		}
		return
	}

	h.logger.Info("GET %s - %d kit bookings for %s %d", r.URL.Path, len(bookings), h.role, session.UserID)
	handlers.RespondJSON(w, http.StatusOK, KitBookingsResponse{Bookings: handlers.FromKitBookings(bookings)})
}

func (h *Handler) fetch(ctx context.Context, session *domain.Session) ([]domain.KitBooking, error) {
	if h.role == domain.RoleAdmin {
		return h.client.GetAllKitBookings(ctx)
	}
	return h.client.GetCustomerKitBookings(ctx, session.UserID)
}
