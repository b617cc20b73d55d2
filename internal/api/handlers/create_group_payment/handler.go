package create_group_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-GarageDesk/internal/api/handlers"
	"github.com/m04kA/SMC-GarageDesk/internal/api/middleware"
	"github.com/m04kA/SMC-GarageDesk/internal/usecase/pay_appointment_group"
)

const (
	msgInvalidGroupID   = "некорректный ID группы записей"
	msgNotFound         = "группа записей не найдена"
	msgAlreadyPaid      = "эта группа записей уже оплачена"
	msgNothingToPay     = "сумма к оплате равна нулю"
	msgPaymentsDisabled = "онлайн-оплата временно недоступна"
	msgFetchFailed      = "не удалось загрузить записи, попробуйте позже"
	msgCheckoutFailed   = "не удалось создать платеж, попробуйте позже"
)

// HeaderIdempotencyKey повторный запрос с тем же ключом не создает второй платеж
const HeaderIdempotencyKey = "Idempotency-Key"

type Handler struct {
	useCase PaymentUseCase
	logger  Logger
}

func NewHandler(useCase PaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/me/appointments/groups/{groupId}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.GetSession(r.Context())
	if !ok {
		middleware.RedirectToLogin(w, r)
		return
	}

	req := &pay_appointment_group.Request{
		CustomerID:     session.UserID,
		CustomerName:   session.Name,
		CustomerEmail:  session.Email,
		GroupID:        mux.Vars(r)["groupId"],
		IdempotencyKey: r.Header.Get(HeaderIdempotencyKey),
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, pay_appointment_group.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidGroupID)

		case errors.Is(err, pay_appointment_group.ErrGroupNotFound):
			h.logger.Warn("POST /me/appointments/groups/{id}/payment - Group not found: customer_id=%d, group_id=%s", session.UserID, req.GroupID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, pay_appointment_group.ErrAlreadyPaid):
			h.logger.Warn("POST /me/appointments/groups/{id}/payment - Already paid: group_id=%s", req.GroupID)
			handlers.RespondConflict(w, msgAlreadyPaid)

		case errors.Is(err, pay_appointment_group.ErrNothingToPay):
			handlers.RespondBadRequest(w, msgNothingToPay)

		case errors.Is(err, pay_appointment_group.ErrUnauthorized):
			h.logger.Warn("POST /me/appointments/groups/{id}/payment - Session expired")
			middleware.RedirectToLogin(w, r)

		case errors.Is(err, pay_appointment_group.ErrPaymentsDisabled):
			handlers.RespondError(w, http.StatusServiceUnavailable, msgPaymentsDisabled)

		case errors.Is(err, pay_appointment_group.ErrFetchFailed):
			h.logger.Error("POST /me/appointments/groups/{id}/payment - Failed to fetch appointments: %v", err)
			handlers.RespondBadGateway(w, msgFetchFailed)

		default:
			h.logger.Error("POST /me/appointments/groups/{id}/payment - Checkout failed: group_id=%s, error=%v", req.GroupID, err)
			handlers.RespondBadGateway(w, msgCheckoutFailed)
		}
		return
	}

	h.logger.Info("POST /me/appointments/groups/{id}/payment - Checkout %s created: customer_id=%d, group_id=%s, amount=%s",
		resp.CheckoutID, session.UserID, resp.GroupID, resp.Total)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
