package change_kit_status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
	"github.com/m04kA/SMC-GarageDesk/internal/integrations/garageapi"
)

const journalTimeout = 5 * time.Second

// UseCase use case смены статуса бронирования комплекта
// Одно бронирование - один запрос; повторная отправка до ответа отклоняется
type UseCase struct {
	client   KitBookingsClient
	journal  CommandJournal
	metrics  Metrics
	logger   Logger
	inFlight *inFlight
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client KitBookingsClient, journal CommandJournal, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		client:   client,
		journal:  journal,
		metrics:  metrics,
		logger:   logger,
		inFlight: newInFlight(),
	}
}

// Execute отправляет изменение статуса на бэкенд
// Локальные коллекции обновляются вызывающей стороной только после успешного ответа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil || req.BookingID <= 0 {
		return nil, ErrInvalidInput
	}
	status, err := domain.ParseKitBookingStatus(req.Status)
	if err != nil {
		uc.logger.Warn("ChangeKitStatus: booking=%d invalid status %q", req.BookingID, req.Status)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	// 2. Одно изменение на бронирование в каждый момент времени
	if !uc.inFlight.acquire(req.BookingID) {
		uc.logger.Warn("ChangeKitStatus: booking=%d update already in flight", req.BookingID)
		return nil, ErrUpdateInFlight
	}
	defer uc.inFlight.release(req.BookingID)

	uc.logger.Info("ChangeKitStatus: booking=%d -> %s, actor=%s", req.BookingID, status, req.Actor)

	// 3. Запрос на бэкенд
	cmd := &domain.StatusCommand{
		ID:           uuid.New(),
		Kind:         domain.CommandKitBooking,
		TargetStatus: string(status),
		TargetIDs:    []int64{req.BookingID},
		Actor:        req.Actor,
	}

	err = uc.client.UpdateKitBookingStatus(ctx, req.BookingID, status)
	if err != nil {
		cmd.Outcome = domain.OutcomeFailed
		cmd.Failed = []int64{req.BookingID}
		cmd.Error = err.Error()
	} else {
		cmd.Outcome = domain.OutcomeSucceeded
		cmd.Succeeded = []int64{req.BookingID}
	}

	// 4. Журнал и метрики
	uc.record(ctx, cmd)
	uc.metrics.StatusCommand(string(domain.CommandKitBooking), string(cmd.Outcome))

	if err != nil {
		return nil, uc.mapError(req.BookingID, err)
	}

	uc.logger.Info("ChangeKitStatus: booking=%d is now %s", req.BookingID, status)
	return &Response{CommandID: cmd.ID, BookingID: req.BookingID, Status: status}, nil
}

// InFlight сообщает, выполняется ли сейчас изменение бронирования
func (uc *UseCase) InFlight(bookingID int64) bool {
	return uc.inFlight.busy(bookingID)
}

func (uc *UseCase) mapError(bookingID int64, err error) error {
	switch {
	case errors.Is(err, garageapi.ErrUnauthorized):
		return ErrUnauthorized
	case errors.Is(err, garageapi.ErrNotFound):
		uc.logger.Warn("ChangeKitStatus: booking=%d not found", bookingID)
		return ErrBookingNotFound
	case errors.Is(err, garageapi.ErrConflict), errors.Is(err, garageapi.ErrBadRequest):
		uc.logger.Warn("ChangeKitStatus: booking=%d rejected: %v", bookingID, err)
		return fmt.Errorf("%w: %v", ErrRejected, err)
	default:
		uc.logger.Error("ChangeKitStatus: booking=%d update failed: %v", bookingID, err)
		return fmt.Errorf("%w: %v", ErrUpdateFailed, err)
	}
}

func (uc *UseCase) record(ctx context.Context, cmd *domain.StatusCommand) {
	jctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalTimeout)
	defer cancel()
	if err := uc.journal.Record(jctx, cmd); err != nil {
		uc.logger.Error("ChangeKitStatus: failed to record command %s: %v", cmd.ID, err)
	}
}
