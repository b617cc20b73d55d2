package domain

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-GarageDesk/pkg/types"
)

// KitBookingStatus статус бронирования установки фейслифт-комплекта
type KitBookingStatus string

const (
	KitRequested        KitBookingStatus = "REQUESTED"
	KitCarReceived      KitBookingStatus = "CAR_RECEIVED"
	KitCarReachedGarage KitBookingStatus = "CAR_REACHED_GARAGE"
	KitUnderService     KitBookingStatus = "UNDER_SERVICE"
	KitApplied          KitBookingStatus = "KIT_APPLIED"
	KitReadyToDeliver   KitBookingStatus = "READY_TO_DELIVER"
	KitDelivered        KitBookingStatus = "DELIVERED"
)

// KitProgression упорядоченные шаги прогресса
// Порядок определяет индекс шага и процент выполнения
var KitProgression = []KitBookingStatus{
	KitCarReceived,
	KitCarReachedGarage,
	KitUnderService,
	KitApplied,
	KitReadyToDeliver,
	KitDelivered,
}

// kitProgressPercent процент выполнения для шагов прогресса
var kitProgressPercent = map[KitBookingStatus]int{
	KitCarReceived:      10,
	KitCarReachedGarage: 25,
	KitUnderService:     45,
	KitApplied:          65,
	KitReadyToDeliver:   85,
	KitDelivered:        100,
}

var kitStepLabels = map[KitBookingStatus]string{
	KitCarReceived:      "Car Picked Up",
	KitCarReachedGarage: "Reached Garage",
	KitUnderService:     "Under Service",
	KitApplied:          "Kit Applied",
	KitReadyToDeliver:   "Ready to Deliver",
	KitDelivered:        "Delivered",
}

// KitBooking бронирование установки комплекта
type KitBooking struct {
	ID           int64
	KitName      string
	CustomerName string
	Mobile       string
	CarModel     string
	DropOffDate  types.Date
	PickUpDate   types.Date
	Price        decimal.Decimal
	Status       KitBookingStatus
	Images       []string
}

// StatusUpdateEvent push-уведомление об изменении статуса одного бронирования
type StatusUpdateEvent struct {
	BookingID int64
	NewStatus KitBookingStatus
}

// ProgressStep шаг прогресса для отображения
type ProgressStep struct {
	Status    KitBookingStatus
	Label     string
	Completed bool
	Current   bool
}

// IsValid returns true if the status belongs to the fixed status set
func (s KitBookingStatus) IsValid() bool {
	return s == KitRequested || s.StepIndex() >= 0
}

// StepIndex возвращает индекс шага (с нуля), -1 если статус вне прогрессии
func (s KitBookingStatus) StepIndex() int {
	for i, step := range KitProgression {
		if step == s {
			return i
		}
	}
	return -1
}

// ProgressPercent процент выполнения, 0 для статусов вне прогрессии
func (s KitBookingStatus) ProgressPercent() int {
	return kitProgressPercent[s]
}

// Label человекочитаемый статус: UNDER_SERVICE -> "UNDER SERVICE"
func (s KitBookingStatus) Label() string {
	if s == "" {
		return "Unknown"
	}
	return strings.ReplaceAll(string(s), "_", " ")
}

// Steps шаги прогресса: предыдущие шаги выполнены, текущий отмечен
func (s KitBookingStatus) Steps() []ProgressStep {
	current := s.StepIndex()
	steps := make([]ProgressStep, len(KitProgression))
	for i, step := range KitProgression {
		steps[i] = ProgressStep{
			Status:    step,
			Label:     kitStepLabels[step],
			Completed: i < current,
			Current:   i == current,
		}
	}
	return steps
}

// ParseKitBookingStatus проверяет, что строка является допустимым статусом бронирования
func ParseKitBookingStatus(s string) (KitBookingStatus, error) {
	status := KitBookingStatus(s)
	if !status.IsValid() {
		return "", ErrUnknownStatus
	}
	return status, nil
}
