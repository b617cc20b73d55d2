package get_kit_bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageDesk/internal/api/handlers"
	"github.com/m04kA/SMC-GarageDesk/internal/api/middleware"
	"github.com/m04kA/SMC-GarageDesk/internal/domain"
	"github.com/m04kA/SMC-GarageDesk/internal/integrations/garageapi"
	"github.com/m04kA/SMC-GarageDesk/pkg/logger"
)

type fakeClient struct {
	all        []domain.KitBooking
	mine       []domain.KitBooking
	customerID int64
	err        error
}

func (c *fakeClient) GetAllKitBookings(context.Context) ([]domain.KitBooking, error) {
	return c.all, c.err
}

func (c *fakeClient) GetCustomerKitBookings(_ context.Context, customerID int64) ([]domain.KitBooking, error) {
	c.customerID = customerID
	return c.mine, c.err
}

func serve(h *Handler, session *domain.Session) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me/kit-bookings", nil)
	if session != nil {
		req = req.WithContext(middleware.WithSession(req.Context(), session, "/user/login"))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_CustomerProgress(t *testing.T) {
	client := &fakeClient{mine: []domain.KitBooking{
		{ID: 7, KitName: "Chrome", Price: decimal.NewFromInt(15000), Status: domain.KitUnderService},
	}}
	h := NewHandler(client, domain.RoleCustomer, logger.Nop())
	rec := serve(h, &domain.Session{Authenticated: true, Role: domain.RoleCustomer, UserID: 12})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(12), client.customerID)

	var resp KitBookingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 1)
	b := resp.Bookings[0]
	assert.Equal(t, 2, b.StepIndex)
	assert.Equal(t, 45, b.ProgressPercent)
	assert.Equal(t, "UNDER SERVICE", b.StatusLabel)
	require.Len(t, b.Steps, 6)
	assert.True(t, b.Steps[1].Completed)
	assert.True(t, b.Steps[2].Current)
	assert.False(t, b.Steps[3].Completed)
	assert.Equal(t, []string{}, b.Images)
}

func TestHandle_AdminSeesAll(t *testing.T) {
	client := &fakeClient{all: []domain.KitBooking{
		{ID: 1, Status: domain.KitRequested},
		{ID: 2, Status: domain.KitDelivered},
	}}
	h := NewHandler(client, domain.RoleAdmin, logger.Nop())
	rec := serve(h, &domain.Session{Authenticated: true, Role: domain.RoleAdmin})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Bookings []handlers.KitBookingResponse `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, -1, resp.Bookings[0].StepIndex)
	assert.Equal(t, 0, resp.Bookings[0].ProgressPercent)
	assert.Equal(t, 100, resp.Bookings[1].ProgressPercent)
}

func TestHandle_Errors(t *testing.T) {
	session := &domain.Session{Authenticated: true, UserID: 1}

	rec := serve(NewHandler(&fakeClient{err: garageapi.ErrUnauthorized}, domain.RoleCustomer, logger.Nop()), session)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/user/login", rec.Header().Get("Location"))

	rec = serve(NewHandler(&fakeClient{err: garageapi.ErrUnavailable}, domain.RoleCustomer, logger.Nop()), session)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	rec = serve(NewHandler(&fakeClient{}, domain.RoleCustomer, logger.Nop()), nil)
	assert.Equal(t, http.StatusFound, rec.Code)
}
