package change_appointment_status

import (
	"errors"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageDesk/internal/domain"
	"github.com/m04kA/SMC-GarageDesk/internal/integrations/garageapi"
)

type memberResult struct {
	MemberOutcome
	err error
}

func buildReport(id uuid.UUID, groupID string, status domain.AppointmentStatus, results []memberResult) Report {
	report := Report{
		CommandID:   id,
		GroupID:     groupID,
		Status:      status,
		Members:     make([]MemberOutcome, len(results)),
		Succeeded:   []int64{},
		Failed:      []int64{},
		Compensated: []int64{},
	}

	for i, r := range results {
		report.Members[i] = r.MemberOutcome
		switch {
		case r.Compensated:
			report.Compensated = append(report.Compensated, r.AppointmentID)
		case r.Succeeded:
			report.Succeeded = append(report.Succeeded, r.AppointmentID)
		default:
			report.Failed = append(report.Failed, r.AppointmentID)
		}
	}

	switch {
	case len(report.Failed) == 0 && len(report.Compensated) == 0:
		report.Outcome = domain.OutcomeSucceeded
	case len(report.Succeeded) == 0 && len(report.Compensated) == 0:
		report.Outcome = domain.OutcomeFailed
	default:
		report.Outcome = domain.OutcomePartial
	}

	return report
}

// patchSnapshot применяет подтвержденные изменения к локальному снимку
func patchSnapshot(snapshot []*domain.Appointment, results []memberResult, status domain.AppointmentStatus) {
	applied := make(map[int64]struct{}, len(results))
	for _, r := range results {
		if r.Succeeded && !r.Compensated {
			applied[r.AppointmentID] = struct{}{}
		}
	}
	for _, a := range snapshot {
		if _, ok := applied[a.ID]; ok {
			a.Status = status
		}
	}
}

func allUnauthorized(results []memberResult) bool {
	for _, r := range results {
		if !errors.Is(r.err, garageapi.ErrUnauthorized) {
			return false
		}
	}
	return len(results) > 0
}

func firstError(members []MemberOutcome) string {
	for _, m := range members {
		if m.Error != "" {
			return m.Error
		}
	}
	return ""
}
