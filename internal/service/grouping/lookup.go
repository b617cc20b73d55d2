package grouping

import "github.com/m04kA/SMC-GarageDesk/internal/domain"

// FindDateGroup ищет группу по идентификатору группы бэкенда
func FindDateGroup(cars []domain.CarGroup, groupID string) (*domain.DateGroup, bool) {
	if groupID == "" {
		return nil, false
	}
	for i := range cars {
		for j := range cars[i].Dates {
			if cars[i].Dates[j].GroupID() == groupID {
				return &cars[i].Dates[j], true
			}
		}
	}
	return nil, false
}

// DateGroupOf ищет группу (клиент, машина, дата), содержащую все указанные записи
// Возвращает false, если хотя бы одна запись не найдена или записи относятся к разным группам
func DateGroupOf(groups []domain.CustomerGroup, appointmentIDs []int64) (*domain.DateGroup, bool) {
	if len(appointmentIDs) == 0 {
		return nil, false
	}

	for i := range groups {
		for j := range groups[i].Cars {
			for k := range groups[i].Cars[j].Dates {
				group := &groups[i].Cars[j].Dates[k]
				if containsAll(group, appointmentIDs) {
					return group, true
				}
			}
		}
	}
	return nil, false
}

func containsAll(group *domain.DateGroup, ids []int64) bool {
	members := make(map[int64]struct{}, len(group.Members))
	for _, m := range group.Members {
		members[m.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := members[id]; !ok {
			return false
		}
	}
	return true
}
