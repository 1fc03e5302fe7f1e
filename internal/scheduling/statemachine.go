package scheduling

import (
	"fmt"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

type transitionTable map[domain.AppointmentStatus][]domain.AppointmentStatus

// fixedTransitions FIXED: машина уже в студии, EM_ROTA не используется
var fixedTransitions = transitionTable{
	domain.StatusNovo:       {domain.StatusConfirmado, domain.StatusCancelado},
	domain.StatusConfirmado: {domain.StatusEmExecucao, domain.StatusCancelado},
	domain.StatusEmExecucao: {domain.StatusFinalizado},
}

// deliveryTransitions DELIVERY: перед началом работ бригада едет к клиенту
var deliveryTransitions = transitionTable{
	domain.StatusNovo:       {domain.StatusConfirmado, domain.StatusCancelado},
	domain.StatusConfirmado: {domain.StatusEmRota, domain.StatusCancelado},
	domain.StatusEmRota:     {domain.StatusEmExecucao, domain.StatusCancelado},
	domain.StatusEmExecucao: {domain.StatusFinalizado},
}

func tableFor(model domain.BusinessModel) transitionTable {
	if model == domain.ModelDelivery {
		return deliveryTransitions
	}
	return fixedTransitions
}

// AllowedNext возвращает допустимые следующие статусы для модели
// Для терминальных статусов возвращает пустой список
func AllowedNext(model domain.BusinessModel, from domain.AppointmentStatus) []domain.AppointmentStatus {
	next := tableFor(model)[from]
	out := make([]domain.AppointmentStatus, len(next))
	copy(out, next)
	return out
}

// CanTransition проверяет наличие перехода from -> to в таблице модели
func CanTransition(model domain.BusinessModel, from, to domain.AppointmentStatus) bool {
	for _, s := range tableFor(model)[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CheckTransition возвращает ErrInvalidTransition, если перехода нет в таблице
func CheckTransition(model domain.BusinessModel, from, to domain.AppointmentStatus) error {
	if from.IsTerminal() {
		return fmt.Errorf("%w: appointment is already %s", ErrInvalidTransition, from)
	}
	if !to.IsValid() {
		return fmt.Errorf("%w: unknown target status %q", ErrInvalidTransition, to)
	}
	if !CanTransition(model, from, to) {
		return fmt.Errorf("%w: %s -> %s is not allowed for %s model", ErrInvalidTransition, from, to, model)
	}
	return nil
}
