package scheduling

import (
	"fmt"
	"sort"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// ModelView записи одной бизнес-модели: активная очередь и история
type ModelView struct {
	Queue   []*domain.Appointment
	History []*domain.Appointment
}

// FilterByModel оставляет только записи указанной модели
func FilterByModel(appointments []*domain.Appointment, model domain.BusinessModel) []*domain.Appointment {
	out := make([]*domain.Appointment, 0)
	for _, a := range appointments {
		if a.Model() == model {
			out = append(out, a)
		}
	}
	return out
}

// Partition делит записи модели на очередь (по времени по возрастанию)
// и историю (FINALIZADO/CANCELADO, по дате и времени по убыванию)
func Partition(appointments []*domain.Appointment, model domain.BusinessModel) ModelView {
	view := ModelView{
		Queue:   make([]*domain.Appointment, 0),
		History: make([]*domain.Appointment, 0),
	}

	for _, a := range FilterByModel(appointments, model) {
		if a.IsActive() {
			view.Queue = append(view.Queue, a)
		} else {
			view.History = append(view.History, a)
		}
	}

	sort.SliceStable(view.Queue, func(i, j int) bool {
		return lessByDateTime(view.Queue[i], view.Queue[j])
	})
	sort.SliceStable(view.History, func(i, j int) bool {
		return lessByDateTime(view.History[j], view.History[i])
	})

	return view
}

func lessByDateTime(a, b *domain.Appointment) bool {
	if a.Date != b.Date {
		return a.Date < b.Date
	}
	return a.Time.Compare(b.Time) < 0
}

// checkCapacity применяет аллокатор модели при входе в статус target
// FIXED: эксклюзивность бокса при входе в EM_EXECUCAO
// DELIVERY: лимит бригад при входе в EM_ROTA, боксы не проверяются
func checkCapacity(state *domain.TenantState, appt *domain.Appointment, target domain.AppointmentStatus, boxID *int) error {
	if appt.IsDelivery {
		if boxID != nil {
			return fmt.Errorf("%w: delivery appointments do not use bays", ErrValidation)
		}
		if target == domain.StatusEmRota {
			return CheckRouteAvailable(state, appt.ID)
		}
		return nil
	}

	if target != domain.StatusEmExecucao {
		return nil
	}

	if boxID == nil {
		return fmt.Errorf("%w: bay must be assigned before execution", ErrValidation)
	}
	if err := ValidateBox(state.Settings, *boxID); err != nil {
		return err
	}
	return CheckBayAvailable(state, appt.ID, *boxID)
}
