package scheduling

import (
	"fmt"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// BayStatus занятость одного бокса
type BayStatus struct {
	BoxID         int    `json:"boxId"`
	Occupied      bool   `json:"occupied"`
	AppointmentID string `json:"appointmentId,omitempty"`
}

// Occupancy строит занятость боксов 1..boxCapacity по списку записей
// Всегда вычисляется заново, отдельно не хранится
func Occupancy(state *domain.TenantState) []BayStatus {
	bays := make([]BayStatus, 0, state.Settings.BoxCapacity)
	for box := 1; box <= state.Settings.BoxCapacity; box++ {
		status := BayStatus{BoxID: box}
		if occupant := occupantOf(state.Appointments, box, ""); occupant != nil {
			status.Occupied = true
			status.AppointmentID = occupant.ID
		}
		bays = append(bays, status)
	}
	return bays
}

// FirstFreeBay возвращает первый бокс без записи в EM_EXECUCAO
func FirstFreeBay(state *domain.TenantState) (int, bool) {
	for box := 1; box <= state.Settings.BoxCapacity; box++ {
		if occupantOf(state.Appointments, box, "") == nil {
			return box, true
		}
	}
	return 0, false
}

// ValidateBox проверяет, что номер бокса лежит в [1, boxCapacity]
func ValidateBox(settings domain.BusinessSettings, boxID int) error {
	if boxID < 1 || boxID > settings.BoxCapacity {
		return fmt.Errorf("%w: boxId=%d out of range [1, %d]", ErrValidation, boxID, settings.BoxCapacity)
	}
	return nil
}

// CheckBayAvailable возвращает ErrBayConflict, если бокс занят другой записью
func CheckBayAvailable(state *domain.TenantState, appointmentID string, boxID int) error {
	if occupant := occupantOf(state.Appointments, boxID, appointmentID); occupant != nil {
		return fmt.Errorf("%w: box %d is held by appointment %s", ErrBayConflict, boxID, occupant.ID)
	}
	return nil
}

func occupantOf(appointments []*domain.Appointment, boxID int, excludeID string) *domain.Appointment {
	for _, a := range appointments {
		if a.ID != excludeID && a.OccupiesBay(boxID) {
			return a
		}
	}
	return nil
}

// ActiveRoutes количество выездных записей в EM_ROTA или EM_EXECUCAO
func ActiveRoutes(state *domain.TenantState, excludeID string) int {
	count := 0
	for _, a := range state.Appointments {
		if !a.IsDelivery || a.ID == excludeID {
			continue
		}
		if a.Status == domain.StatusEmRota || a.Status == domain.StatusEmExecucao {
			count++
		}
	}
	return count
}

// CheckRouteAvailable возвращает ErrDriverUnavailable, если все бригады в пути или на объекте
func CheckRouteAvailable(state *domain.TenantState, appointmentID string) error {
	if !state.Settings.HasDeliveryLimit() {
		return nil
	}
	if busy := ActiveRoutes(state, appointmentID); busy >= state.Settings.DeliveryTeams {
		return fmt.Errorf("%w: %d of %d teams busy", ErrDriverUnavailable, busy, state.Settings.DeliveryTeams)
	}
	return nil
}
