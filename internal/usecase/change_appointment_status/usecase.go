package change_appointment_status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
	"github.com/m04kA/SMC-GarageDesk/internal/integrations/garageapi"
	"github.com/m04kA/SMC-GarageDesk/internal/service/grouping"
)

const (
	defaultMaxParallel = 8
	journalTimeout     = 5 * time.Second
)

// UseCase use case смены статуса группы записей
// Все записи группы обновляются одной командой: запросы идут параллельно,
// частичный сбой описывается отчетом и при включенной компенсации откатывается
type UseCase struct {
	client      AppointmentsClient
	journal     CommandJournal
	metrics     Metrics
	logger      Logger
	maxParallel int
	compensate  bool
}

// Options параметры выполнения команды
type Options struct {
	MaxParallel int
	Compensate  bool
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client AppointmentsClient, journal CommandJournal, metrics Metrics, logger Logger, opts Options) *UseCase {
	if opts.MaxParallel <= 0 {
		opts.MaxParallel = defaultMaxParallel
	}
	return &UseCase{
		client:      client,
		journal:     journal,
		metrics:     metrics,
		logger:      logger,
		maxParallel: opts.MaxParallel,
		compensate:  opts.Compensate,
	}
}

// Execute выполняет смену статуса и возвращает отчет с пересчитанными группами
// При частичном сбое возвращается ErrPartialFailure вместе с ответом
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	status, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ChangeAppointmentStatus: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("ChangeAppointmentStatus: ids=%v, status=%s, actor=%s", req.AppointmentIDs, status, req.Actor)

	// 2. Актуальный снимок записей
	snapshot, err := uc.fetch(ctx)
	if err != nil {
		return nil, err
	}

	// 3. Все записи должны принадлежать одной группе (клиент, машина, дата)
	group, ok := grouping.DateGroupOf(grouping.GroupByCustomer(snapshot), req.AppointmentIDs)
	if !ok {
		uc.logger.Warn("ChangeAppointmentStatus: ids=%v are not one date group", req.AppointmentIDs)
		return nil, ErrGroupNotFound
	}

	previous := make(map[int64]domain.AppointmentStatus, len(group.Members))
	for _, m := range group.Members {
		previous[m.ID] = m.Status
	}

	// 4. Параллельные запросы по всем записям
	outcomes := uc.apply(ctx, req.AppointmentIDs, status, previous)

	// 5. Компенсация частичного сбоя
	report := buildReport(uuid.New(), group.GroupID(), status, outcomes)
	if report.Outcome == domain.OutcomePartial && uc.compensate {
		uc.revert(ctx, outcomes)
		report = buildReport(report.CommandID, report.GroupID, status, outcomes)
	}

	// 6. Журнал и метрики
	uc.record(ctx, req, &report)
	uc.metrics.StatusCommand(string(domain.CommandAppointmentGroup), string(report.Outcome))

	if report.Outcome == domain.OutcomeFailed && allUnauthorized(outcomes) {
		return nil, ErrUnauthorized
	}

	// 7. Повторная выборка и пересчет групп
	resp := &Response{Report: report}
	fresh, err := uc.fetch(ctx)
	if err != nil {
		uc.logger.Warn("ChangeAppointmentStatus: refetch failed, regrouping patched snapshot: %v", err)
		patchSnapshot(snapshot, outcomes, status)
		fresh = snapshot
		resp.Stale = true
	}
	resp.Groups = grouping.GroupByCustomer(fresh)

	switch report.Outcome {
	case domain.OutcomePartial:
		uc.logger.Warn("ChangeAppointmentStatus: group=%s partial: succeeded=%v failed=%v compensated=%v",
			report.GroupID, report.Succeeded, report.Failed, report.Compensated)
		return resp, ErrPartialFailure
	case domain.OutcomeFailed:
		uc.logger.Error("ChangeAppointmentStatus: group=%s failed for all members", report.GroupID)
		return resp, ErrCommandFailed
	}

	uc.logger.Info("ChangeAppointmentStatus: group=%s -> %s for %d appointments", report.GroupID, status, len(report.Succeeded))
	return resp, nil
}

func (uc *UseCase) fetch(ctx context.Context) ([]*domain.Appointment, error) {
	list, err := uc.client.GetAllAppointments(ctx)
	if err != nil {
		if errors.Is(err, garageapi.ErrUnauthorized) {
			return nil, ErrUnauthorized
		}
		uc.logger.Error("ChangeAppointmentStatus: failed to fetch appointments: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	return list, nil
}

// apply отправляет запросы параллельно, не прерывая остальные при ошибке одного
func (uc *UseCase) apply(ctx context.Context, ids []int64, status domain.AppointmentStatus, previous map[int64]domain.AppointmentStatus) []memberResult {
	results := make([]memberResult, len(ids))

	var g errgroup.Group
	g.SetLimit(uc.maxParallel)
	for i, id := range ids {
		results[i] = memberResult{MemberOutcome: MemberOutcome{AppointmentID: id, PreviousStatus: previous[id]}}
		g.Go(func() error {
			if err := uc.client.UpdateAppointmentStatus(ctx, id, status); err != nil {
				results[i].err = err
				results[i].Error = err.Error()
				return nil
			}
			results[i].Succeeded = true
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// revert возвращает успешно обновленные записи к прежнему статусу
func (uc *UseCase) revert(ctx context.Context, results []memberResult) {
	var g errgroup.Group
	g.SetLimit(uc.maxParallel)
	for i := range results {
		if !results[i].Succeeded {
			continue
		}
		g.Go(func() error {
			r := &results[i]
			if err := uc.client.UpdateAppointmentStatus(ctx, r.AppointmentID, r.PreviousStatus); err != nil {
				uc.logger.Error("ChangeAppointmentStatus: compensation for id=%d failed: %v", r.AppointmentID, err)
				return nil
			}
			r.Compensated = true
			return nil
		})
	}
	_ = g.Wait()
}

func (uc *UseCase) record(ctx context.Context, req *Request, report *Report) {
	cmd := &domain.StatusCommand{
		ID:           report.CommandID,
		Kind:         domain.CommandAppointmentGroup,
		TargetStatus: string(report.Status),
		GroupID:      report.GroupID,
		TargetIDs:    req.AppointmentIDs,
		Succeeded:    report.Succeeded,
		Failed:       report.Failed,
		Compensated:  report.Compensated,
		Outcome:      report.Outcome,
		Actor:        req.Actor,
		Error:        firstError(report.Members),
	}

	// Журнал пишется даже если клиент уже отключился
	jctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalTimeout)
	defer cancel()
	if err := uc.journal.Record(jctx, cmd); err != nil {
		uc.logger.Error("ChangeAppointmentStatus: failed to record command %s: %v", cmd.ID, err)
	}
}
