package garageapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
	"github.com/m04kA/SMC-GarageDesk/pkg/logger"
	"github.com/m04kA/SMC-GarageDesk/pkg/types"
)

type call struct {
	method string
	path   string
	body   string
	cookie string
}

type backend struct {
	t      *testing.T
	router *mux.Router
	calls  chan call
}

func newBackend(t *testing.T) (*backend, *Client) {
	b := &backend{t: t, router: mux.NewRouter(), calls: make(chan call, 16)}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		c := call{method: r.Method, path: r.URL.Path, body: string(body)}
		if ck, err := r.Cookie("JSESSIONID"); err == nil {
			c.cookie = ck.Value
		}
		b.calls <- c
		b.router.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL+"/api/admin", srv.URL+"/api/users", time.Second, logger.Nop(), nil)
	return b, client
}

func (b *backend) handle(method, path string, status int, body string) {
	b.router.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}).Methods(method)
}

func (b *backend) lastCall() call {
	b.t.Helper()
	select {
	case c := <-b.calls:
		return c
	default:
		b.t.Fatal("no request reached the backend")
		return call{}
	}
}

func TestCheckSession_Authenticated(t *testing.T) {
	b, client := newBackend(t)
	b.handle(http.MethodGet, "/api/users/session", http.StatusOK,
		`{"authenticated":true,"email":"ravi@example.com","name":"Ravi","userId":7}`)

	ctx := WithCookies(context.Background(), []*http.Cookie{{Name: "JSESSIONID", Value: "abc"}})
	session, err := client.CheckSession(ctx, domain.RoleCustomer)
	require.NoError(t, err)

	assert.True(t, session.Authenticated)
	assert.Equal(t, domain.RoleCustomer, session.Role)
	assert.Equal(t, int64(7), session.UserID)
	assert.Equal(t, "Ravi", session.Name)
	assert.Equal(t, "abc", b.lastCall().cookie)
}

func TestCheckSession_AdminID(t *testing.T) {
	b, client := newBackend(t)
	b.handle(http.MethodGet, "/api/admin/session", http.StatusOK, `{"authenticated":true,"adminId":3}`)

	session, err := client.CheckSession(context.Background(), domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(3), session.UserID)
	assert.Equal(t, domain.RoleAdmin, session.Role)
}

func TestCheckSession_UnauthorizedIsNotAnError(t *testing.T) {
	b, client := newBackend(t)
	b.handle(http.MethodGet, "/api/admin/session", http.StatusUnauthorized, `{"message":"no session"}`)

	session, err := client.CheckSession(context.Background(), domain.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, session.Authenticated)
}

func TestCheckSession_BackendDown(t *testing.T) {
	b, client := newBackend(t)
	b.handle(http.MethodGet, "/api/admin/session", http.StatusServiceUnavailable, ``)

	_, err := client.CheckSession(context.Background(), domain.RoleAdmin)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGetAllAppointments(t *testing.T) {
	b, client := newBackend(t)
	b.handle(http.MethodGet, "/api/admin/appointments-with-details", http.StatusOK, `[
		{"appointmentId":1,"customerName":"Ravi","mobile":"999","carModel":"Swift","carId":11,
		 "appointmentDate":"2024-05-02","serviceName":"Wash","budget":1200.50,"status":"Pending","groupId":"g1"},
		{"appointmentId":2,"customerName":"Ravi","mobile":"999","carModel":"Swift","carId":11,
		 "appointmentDate":"2024-05-02T00:00:00","serviceName":"Polish","budget":"800","status":"Accepted","groupId":"g1"}
	]`)

	list, err := client.GetAllAppointments(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, types.MustParseDate("2024-05-02"), list[0].Date)
	assert.True(t, decimal.RequireFromString("1200.50").Equal(list[0].Budget))
	assert.Equal(t, domain.AppointmentPending, list[0].Status)
	assert.Equal(t, "g1", list[0].GroupID)

	assert.Equal(t, list[0].Date, list[1].Date)
	assert.True(t, decimal.NewFromInt(800).Equal(list[1].Budget))
}

func TestGetCustomerAppointments_Unauthorized(t *testing.T) {
	b, client := newBackend(t)
	b.handle(http.MethodGet, "/api/users/appointments/7", http.StatusUnauthorized, ``)

	_, err := client.GetCustomerAppointments(context.Background(), 7)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateAppointmentStatus(t *testing.T) {
	b, client := newBackend(t)
	b.handle(http.MethodPut, "/api/admin/appointments/{id}/status", http.StatusOK, `{}`)

	err := client.UpdateAppointmentStatus(context.Background(), 5, domain.AppointmentAccepted)
	require.NoError(t, err)

	c := b.lastCall()
	assert.Equal(t, http.MethodPut, c.method)
	assert.Equal(t, "/api/admin/appointments/5/status", c.path)
	assert.JSONEq(t, `{"status":"Accepted"}`, c.body)
}

func TestUpdateKitBookingStatus_Errors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		want   error
	}{
		{"not found", http.StatusNotFound, ErrNotFound},
		{"conflict", http.StatusConflict, ErrConflict},
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"server error", http.StatusInternalServerError, ErrUnavailable},
		{"teapot", http.StatusTeapot, ErrInvalidResponse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, client := newBackend(t)
			b.handle(http.MethodPut, "/api/admin/bookings/{id}/status", tc.status, `{"message":"nope"}`)

			err := client.UpdateKitBookingStatus(context.Background(), 42, domain.KitDelivered)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestGetKitBookings(t *testing.T) {
	b, client := newBackend(t)
	body := `[{"bookingId":42,"kitName":"Sport","customerName":"Ravi","carModel":"Swift",
		"dropOffDate":"2024-05-01","pickUpDate":null,"price":15000,"bookingStatus":"UNDER_SERVICE",
		"images":["/uploads/kit.png"]}]`
	b.handle(http.MethodGet, "/api/admin/facelift/bookings", http.StatusOK, body)
	b.handle(http.MethodGet, "/api/users/facelift/bookings/{customerId}", http.StatusOK, body)

	all, err := client.GetAllKitBookings(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, domain.KitUnderService, all[0].Status)
	assert.True(t, all[0].PickUpDate.IsZero())
	assert.Equal(t, []string{"/uploads/kit.png"}, all[0].Images)
	b.lastCall()

	mine, err := client.GetCustomerKitBookings(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, all, mine)
	assert.Equal(t, "/api/users/facelift/bookings/7", b.lastCall().path)
}

func TestRescheduleAppointments(t *testing.T) {
	b, client := newBackend(t)
	b.handle(http.MethodPut, "/api/users/appointments/{carId}", http.StatusOK, `{}`)

	err := client.RescheduleAppointments(context.Background(), 11, RescheduleRequest{
		AppointmentDate: types.MustParseDate("2024-06-01"),
		ServiceIDs:      []int64{1, 2},
	})
	require.NoError(t, err)

	c := b.lastCall()
	assert.Equal(t, "/api/users/appointments/11", c.path)
	var sent map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(c.body), &sent))
	assert.Equal(t, "2024-06-01", sent["appointmentDate"])
}

func TestDeleteAppointmentGroup(t *testing.T) {
	b, client := newBackend(t)
	b.handle(http.MethodDelete, "/api/users/appointments/{customerId}/{groupId}", http.StatusOK, ``)

	require.NoError(t, client.DeleteAppointmentGroup(context.Background(), 7, "g-1"))
	c := b.lastCall()
	assert.Equal(t, http.MethodDelete, c.method)
	assert.Equal(t, "/api/users/appointments/7/g-1", c.path)
}

func TestUnreachableBackend(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "http://127.0.0.1:1", 200*time.Millisecond, logger.Nop(), nil)

	_, err := client.GetAllKitBookings(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
