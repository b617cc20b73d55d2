package update_appointment_group_status

import (
	"github.com/m04kA/SMC-GarageDesk/internal/api/handlers"
	"github.com/m04kA/SMC-GarageDesk/internal/domain"
	"github.com/m04kA/SMC-GarageDesk/internal/usecase/change_appointment_status"
)

// UpdateGroupStatusRequest HTTP request model
type UpdateGroupStatusRequest struct {
	AppointmentIDs []int64 `json:"appointmentIds"`
	Status         string  `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP request в модель usecase
func (r *UpdateGroupStatusRequest) ToUseCaseRequest(actor string) *change_appointment_status.Request {
	return &change_appointment_status.Request{
		AppointmentIDs: r.AppointmentIDs,
		Status:         r.Status,
		Actor:          actor,
	}
}

// MemberOutcomeResponse результат по одной записи
type MemberOutcomeResponse struct {
	AppointmentID  int64                    `json:"appointmentId"`
	PreviousStatus domain.AppointmentStatus `json:"previousStatus"`
	Succeeded      bool                     `json:"succeeded"`
	Compensated    bool                     `json:"compensated"`
	Error          string                   `json:"error,omitempty"`
}

// ReportResponse отчет о выполнении команды
type ReportResponse struct {
	CommandID   string                   `json:"commandId"`
	GroupID     string                   `json:"groupId"`
	Status      domain.AppointmentStatus `json:"status"`
	Outcome     domain.CommandOutcome    `json:"outcome"`
	Members     []MemberOutcomeResponse  `json:"members"`
	Succeeded   []int64                  `json:"succeeded"`
	Failed      []int64                  `json:"failed"`
	Compensated []int64                  `json:"compensated"`
}

// UpdateGroupStatusResponse отчет и пересчитанные группы
type UpdateGroupStatusResponse struct {
	Report    ReportResponse                   `json:"report"`
	Customers []handlers.CustomerGroupResponse `json:"customers"`
	Stale     bool                             `json:"stale"`
	Message   string                           `json:"message,omitempty"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP response
func FromUseCaseResponse(resp *change_appointment_status.Response, message string) UpdateGroupStatusResponse {
	members := make([]MemberOutcomeResponse, len(resp.Report.Members))
	for i, m := range resp.Report.Members {
		members[i] = MemberOutcomeResponse{
			AppointmentID:  m.AppointmentID,
			PreviousStatus: m.PreviousStatus,
			Succeeded:      m.Succeeded,
			Compensated:    m.Compensated,
			Error:          m.Error,
		}
	}

	return UpdateGroupStatusResponse{
		Report: ReportResponse{
			CommandID:   resp.Report.CommandID.String(),
			GroupID:     resp.Report.GroupID,
			Status:      resp.Report.Status,
			Outcome:     resp.Report.Outcome,
			Members:     members,
			Succeeded:   nonNil(resp.Report.Succeeded),
			Failed:      nonNil(resp.Report.Failed),
			Compensated: nonNil(resp.Report.Compensated),
		},
		Customers: handlers.FromCustomerGroups(resp.Groups),
		Stale:     resp.Stale,
		Message:   message,
	}
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
