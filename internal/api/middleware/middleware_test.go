package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
	"github.com/m04kA/SMC-GarageDesk/pkg/logger"
)

type fakeChecker struct {
	session *domain.Session
	err     error
	role    domain.Role
}

func (c *fakeChecker) CheckSession(_ context.Context, role domain.Role) (*domain.Session, error) {
	c.role = role
	return c.session, c.err
}

func okHandler(t *testing.T, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		s, ok := GetSession(r.Context())
		require.True(t, ok)
		assert.True(t, s.Authenticated)
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestSessionGate_Authenticated(t *testing.T) {
	checker := &fakeChecker{session: &domain.Session{Authenticated: true, Role: domain.RoleAdmin, UserID: 1}}
	called := false
	h := SessionGate(checker, domain.RoleAdmin, "/admin/login", logger.Nop())(okHandler(t, &called))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/appointments", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, domain.RoleAdmin, checker.role)
}

func TestSessionGate_RedirectsToRoleLogin(t *testing.T) {
	cases := []struct {
		role  domain.Role
		login string
	}{
		{domain.RoleAdmin, "/admin/login"},
		{domain.RoleCustomer, "/user/login"},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			checker := &fakeChecker{session: &domain.Session{Authenticated: false}}
			called := false
			h := SessionGate(checker, tc.role, tc.login, logger.Nop())(okHandler(t, &called))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/me/appointments", nil))

			assert.False(t, called, "protected handler must not run")
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tc.login, rec.Header().Get("Location"))
		})
	}
}

func TestSessionGate_BackendError(t *testing.T) {
	checker := &fakeChecker{err: errors.New("connection refused")}
	called := false
	h := SessionGate(checker, domain.RoleAdmin, "/admin/login", logger.Nop())(okHandler(t, &called))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestRedirectToLogin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me/appointments", nil)
	req = req.WithContext(WithSession(req.Context(), &domain.Session{Authenticated: true}, "/user/login"))

	rec := httptest.NewRecorder()
	RedirectToLogin(rec, req)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/user/login", rec.Header().Get("Location"))
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	_, err := uuid.Parse(seen)
	require.NoError(t, err)
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))

	given := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, given)
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, given, seen)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "not-a-uuid\r\nX-Injected: 1")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.NotEqual(t, "not-a-uuid\r\nX-Injected: 1", seen)
}

type httpObservation struct {
	method, route string
	status        int
}

type fakeHTTPMetrics struct {
	got []httpObservation
}

func (m *fakeHTTPMetrics) ObserveHTTP(method, route string, status int, _ time.Duration) {
	m.got = append(m.got, httpObservation{method, route, status})
}

func TestMetricsMiddleware_RouteTemplate(t *testing.T) {
	m := &fakeHTTPMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/admin/kit-bookings/{bookingId}/status", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}).Methods(http.MethodPut)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/api/v1/admin/kit-bookings/42/status", nil))

	require.Len(t, m.got, 1)
	assert.Equal(t, httpObservation{http.MethodPut, "/api/v1/admin/kit-bookings/{bookingId}/status", http.StatusConflict}, m.got[0])
}
