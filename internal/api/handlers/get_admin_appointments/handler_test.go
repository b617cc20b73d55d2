package get_admin_appointments

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
	list []*domain.Appointment
	err  error
}

func (c *fakeClient) GetAllAppointments(context.Context) ([]*domain.Appointment, error) {
	return c.list, c.err
}

func appointments() []*domain.Appointment {
	mk := func(id int64, customer, car, date string, budget int64, status domain.AppointmentStatus) *domain.Appointment {
		return &domain.Appointment{
			ID: id, CustomerName: customer, Mobile: "98", CarModel: car,
			Date: types.MustParseDate(date), ServiceName: "svc",
			Budget: decimal.NewFromInt(budget), Status: status, GroupID: customer + car + date,
		}
	}
	return []*domain.Appointment{
		mk(1, "Ravi", "Swift", "2024-05-01", 1200, domain.AppointmentPending),
		mk(2, "Ravi", "Swift", "2024-05-01", 800, domain.AppointmentAccepted),
		mk(3, "Asha", "City", "2024-05-03", 500, domain.AppointmentPending),
	}
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = req.WithContext(middleware.WithSession(req.Context(), &domain.Session{Authenticated: true}, "/admin/login"))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Groups(t *testing.T) {
	h := NewHandler(&fakeClient{list: appointments()}, logger.Nop())
	rec := serve(h, "/api/v1/admin/appointments")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Customers []struct {
			CustomerName string `json:"customerName"`
			Cars         []struct {
				CarModel string `json:"carModel"`
				Dates    []struct {
					GroupID       string  `json:"groupId"`
					TotalBudget   string  `json:"totalBudget"`
					UnifiedStatus string  `json:"unifiedStatus"`
					StatusUniform bool    `json:"statusUniform"`
					IDs           []int64 `json:"appointmentIds"`
				} `json:"dates"`
			} `json:"cars"`
		} `json:"customers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Customers, 2)
	// Asha первая: ее дата позже
	assert.Equal(t, "Asha", resp.Customers[0].CustomerName)
	ravi := resp.Customers[1].Cars[0].Dates[0]
	assert.Equal(t, "2000", ravi.TotalBudget)
	assert.Equal(t, "Pending", ravi.UnifiedStatus)
	assert.False(t, ravi.StatusUniform)
	assert.Equal(t, []int64{1, 2}, ravi.IDs)
}

func TestHandle_Table(t *testing.T) {
	h := NewHandler(&fakeClient{list: appointments()}, logger.Nop())
	rec := serve(h, "/api/v1/admin/appointments?layout=table")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Rows []struct {
			AppointmentID   int64 `json:"appointmentId"`
			FirstOfCustomer bool  `json:"firstOfCustomer"`
			CustomerSpan    int   `json:"customerRowSpan"`
			DateSpan        int   `json:"dateRowSpan"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Rows, 3)
	assert.Equal(t, int64(3), resp.Rows[0].AppointmentID)
	assert.True(t, resp.Rows[1].FirstOfCustomer)
	assert.Equal(t, 2, resp.Rows[1].CustomerSpan)
	assert.Equal(t, 2, resp.Rows[1].DateSpan)
	assert.False(t, resp.Rows[2].FirstOfCustomer)
}

func TestHandle_Empty(t *testing.T) {
	h := NewHandler(&fakeClient{}, logger.Nop())
	rec := serve(h, "/api/v1/admin/appointments")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"customers":[]}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	h := NewHandler(&fakeClient{err: garageapi.ErrUnauthorized}, logger.Nop())
	rec := serve(h, "/api/v1/admin/appointments")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get("Location"))

	h = NewHandler(&fakeClient{err: garageapi.ErrUnavailable}, logger.Nop())
	rec = serve(h, "/api/v1/admin/appointments")
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	rec = serve(h, "/api/v1/admin/appointments?layout=pivot")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
