package get_my_appointments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageDesk/internal/api/middleware"
	"github.com/m04kA/SMC-GarageDesk/internal/domain"
	"github.com/m04kA/SMC-GarageDesk/internal/integrations/garageapi"
	"github.com/m04kA/SMC-GarageDesk/pkg/logger"
	"github.com/m04kA/SMC-GarageDesk/pkg/types"
)

type fakeClient struct {
	customerID int64
	list       []*domain.Appointment
	err        error
}

func (c *fakeClient) GetCustomerAppointments(_ context.Context, customerID int64) ([]*domain.Appointment, error) {
	c.customerID = customerID
	return c.list, c.err
}

func serve(h *Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me/appointments", nil)
	session := &domain.Session{Authenticated: true, Role: domain.RoleCustomer, UserID: 5}
	req = req.WithContext(middleware.WithSession(req.Context(), session, "/user/login"))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_GroupsByCar(t *testing.T) {
	mk := func(id int64, car, date, groupID, payment string) *domain.Appointment {
		return &domain.Appointment{
			ID: id, CustomerName: "Ravi", CarModel: car, Date: types.MustParseDate(date),
			Budget: decimal.NewFromInt(500), Status: domain.AppointmentPending,
			GroupID: groupID, PaymentStatus: payment,
		}
	}
	client := &fakeClient{list: []*domain.Appointment{
		mk(1, "Swift", "2024-05-01", "g1", "PAID"),
		mk(2, "Swift", "2024-05-01", "g1", "PAID"),
		mk(3, "City", "2024-06-01", "g2", ""),
	}}
	rec := serve(NewHandler(client, logger.Nop()))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), client.customerID)

	var resp struct {
		Cars []struct {
			CarModel string `json:"carModel"`
			Dates    []struct {
				GroupID     string `json:"groupId"`
				TotalBudget string `json:"totalBudget"`
				Paid        bool   `json:"paid"`
			} `json:"dates"`
		} `json:"cars"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Cars, 2)
	assert.Equal(t, "City", resp.Cars[0].CarModel)
	assert.False(t, resp.Cars[0].Dates[0].Paid)
	assert.Equal(t, "g1", resp.Cars[1].Dates[0].GroupID)
	assert.Equal(t, "1000", resp.Cars[1].Dates[0].TotalBudget)
	assert.True(t, resp.Cars[1].Dates[0].Paid)
}

func TestHandle_Errors(t *testing.T) {
	rec := serve(NewHandler(&fakeClient{err: garageapi.ErrNotFound}, logger.Nop()))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"cars":[]}`, rec.Body.String())

	rec = serve(NewHandler(&fakeClient{err: garageapi.ErrUnauthorized}, logger.Nop()))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/user/login", rec.Header().Get("Location"))

	rec = serve(NewHandler(&fakeClient{err: garageapi.ErrUnavailable}, logger.Nop()))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
