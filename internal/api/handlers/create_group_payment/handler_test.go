package create_group_payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageDesk/internal/api/middleware"
	"github.com/m04kA/SMC-GarageDesk/internal/domain"
	uc "github.com/m04kA/SMC-GarageDesk/internal/usecase/pay_appointment_group"
	"github.com/m04kA/SMC-GarageDesk/pkg/logger"
)

type fakeUseCase struct {
	got *uc.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *uc.Request) (*uc.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &uc.Response{
		CheckoutID: "cs_1", CheckoutURL: "https://checkout.stripe.com/c/pay/cs_1",
		GroupID: req.GroupID, Total: decimal.NewFromInt(2000), AmountMinor: 200000, Currency: "inr",
	}, nil
}

func serve(h *Handler, groupID string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/me/appointments/groups/{groupId}/payment", h.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/me/appointments/groups/"+groupID+"/payment", nil)
	req.Header.Set(HeaderIdempotencyKey, "idem-1")
	session := &domain.Session{Authenticated: true, Role: domain.RoleCustomer, UserID: 5, Name: "Ravi", Email: "ravi@mail.in"}
	req = req.WithContext(middleware.WithSession(req.Context(), session, "/user/login"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	f := &fakeUseCase{}
	rec := serve(NewHandler(f, logger.Nop()), "g1")

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, f.got)
	assert.Equal(t, int64(5), f.got.CustomerID)
	assert.Equal(t, "ravi@mail.in", f.got.CustomerEmail)
	assert.Equal(t, "idem-1", f.got.IdempotencyKey)

	var resp CheckoutResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_1", resp.CheckoutURL)
	assert.Equal(t, int64(200000), resp.Amount)
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{err: uc.ErrInvalidInput, code: http.StatusBadRequest},
		{err: uc.ErrGroupNotFound, code: http.StatusNotFound},
		{err: uc.ErrAlreadyPaid, code: http.StatusConflict},
		{err: uc.ErrNothingToPay, code: http.StatusBadRequest},
		{err: uc.ErrUnauthorized, code: http.StatusFound},
		{err: uc.ErrPaymentsDisabled, code: http.StatusServiceUnavailable},
		{err: uc.ErrFetchFailed, code: http.StatusBadGateway},
		{err: uc.ErrCheckoutFailed, code: http.StatusBadGateway},
	}
	for _, tc := range cases {
		rec := serve(NewHandler(&fakeUseCase{err: tc.err}, logger.Nop()), "g1")
		assert.Equal(t, tc.code, rec.Code, tc.err.Error())
	}
}
