package scheduling

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/pkg/types"
)

// IDGenerator генератор идентификаторов записей
type IDGenerator func() string

// Scheduler фасад планирования: список на дату, создание, смена статуса, слоты
// Работает с явно переданным состоянием студии и не хранит производных данных между вызовами
type Scheduler struct {
	newID IDGenerator
}

// Option настройка Scheduler
type Option func(*Scheduler)

// WithIDGenerator подменяет генератор идентификаторов (для тестов)
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Scheduler) {
		s.newID = gen
	}
}

// NewScheduler создает фасад планирования
func NewScheduler(opts ...Option) *Scheduler {
	s := &Scheduler{newID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Draft черновик новой записи
type Draft struct {
	CustomerID      string
	VehicleID       string
	BoxID           *int
	ServiceID       *string
	ServiceType     string
	Date            string
	Time            types.TimeString
	DurationMinutes int
	Price           float64
	IsDelivery      bool
	Address         string
	Observation     string
}

// TransitionRequest запрос на смену статуса
type TransitionRequest struct {
	AppointmentID string
	Target        domain.AppointmentStatus

	// ExpectedStatus статус, который видел оператор; при расхождении переход отклоняется
	ExpectedStatus *domain.AppointmentStatus

	// BoxID бокс для входа FIXED записи в EM_EXECUCAO
	BoxID *int

	CancellationReason string
}

// TransitionResult результат смены статуса
type TransitionResult struct {
	Appointment     *domain.Appointment
	From            domain.AppointmentStatus
	Changed         bool
	CustomerUpdated bool
}

// ListForDate активные записи модели на дату, по времени по возрастанию
func (s *Scheduler) ListForDate(state *domain.TenantState, date string, model domain.BusinessModel) []*domain.Appointment {
	out := make([]*domain.Appointment, 0)
	for _, a := range Partition(state.Appointments, model).Queue {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out
}

// Schedule очередь и история модели; при пустой дате возвращает все даты
func (s *Scheduler) Schedule(state *domain.TenantState, date string, model domain.BusinessModel) ModelView {
	appointments := state.Appointments
	if date != "" {
		appointments = make([]*domain.Appointment, 0)
		for _, a := range state.Appointments {
			if a.Date == date {
				appointments = append(appointments, a)
			}
		}
	}
	return Partition(appointments, model)
}

// ComputeSlots слоты на дату для услуги заданной длительности
func (s *Scheduler) ComputeSlots(state *domain.TenantState, date string, durationMinutes int) ([]types.TimeString, error) {
	return GenerateSlots(date, durationMinutes, state.Settings)
}

// Occupancy занятость боксов студии
func (s *Scheduler) Occupancy(state *domain.TenantState) []BayStatus {
	return Occupancy(state)
}

// Create проверяет черновик, присваивает id и статус NOVO и добавляет запись в состояние
// При ошибке состояние не изменяется
func (s *Scheduler) Create(state *domain.TenantState, draft Draft) (*domain.Appointment, error) {
	appt, err := s.buildAppointment(state, draft)
	if err != nil {
		return nil, err
	}

	state.Appointments = append(state.Appointments, appt)
	return appt, nil
}

func (s *Scheduler) buildAppointment(state *domain.TenantState, draft Draft) (*domain.Appointment, error) {
	// 1. Клиент и автомобиль
	if strings.TrimSpace(draft.CustomerID) == "" {
		return nil, fmt.Errorf("%w: customerId is required", ErrValidation)
	}
	if strings.TrimSpace(draft.VehicleID) == "" {
		return nil, fmt.Errorf("%w: vehicleId is required", ErrValidation)
	}
	customer := state.FindCustomer(draft.CustomerID)
	if customer == nil {
		return nil, fmt.Errorf("%w: customer %s does not exist", ErrValidation, draft.CustomerID)
	}
	vehicle := customer.FindVehicle(draft.VehicleID)
	if vehicle == nil {
		return nil, fmt.Errorf("%w: vehicle %s does not belong to customer %s", ErrValidation, draft.VehicleID, draft.CustomerID)
	}

	// 2. Дата и время
	if _, err := ParseDate(draft.Date); err != nil {
		return nil, err
	}
	startTime, err := types.NewTimeStringFromString(string(draft.Time))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid time %q, expected HH:MM", ErrValidation, draft.Time)
	}

	appt := &domain.Appointment{
		CustomerID:      draft.CustomerID,
		VehicleID:       draft.VehicleID,
		ServiceType:     strings.TrimSpace(draft.ServiceType),
		DurationMinutes: draft.DurationMinutes,
		Price:           draft.Price,
		Date:            draft.Date,
		Time:            startTime,
		IsDelivery:      draft.IsDelivery,
		Address:         strings.TrimSpace(draft.Address),
		Observation:     strings.TrimSpace(draft.Observation),
	}

	// 3. Снимок услуги из каталога
	if draft.ServiceID != nil {
		service := state.FindService(*draft.ServiceID)
		if service == nil {
			return nil, fmt.Errorf("%w: service %s does not exist", ErrValidation, *draft.ServiceID)
		}
		if !service.Active {
			return nil, fmt.Errorf("%w: service %s is not active", ErrValidation, service.ID)
		}
		if !draft.IsDelivery && !service.AllowsFixed {
			return nil, fmt.Errorf("%w: service %s is delivery only", ErrValidation, service.ID)
		}
		if !service.IsCompatibleWith(vehicle.Type) {
			return nil, fmt.Errorf("%w: service %s is not compatible with vehicle type %s", ErrValidation, service.ID, vehicle.Type)
		}
		id := service.ID
		appt.ServiceID = &id
		appt.ServiceType = service.Name
		appt.DurationMinutes = service.DurationMinutes
		appt.Price = service.Price
	}

	if appt.ServiceType == "" {
		return nil, fmt.Errorf("%w: serviceType is required", ErrValidation)
	}
	if appt.DurationMinutes <= 0 || appt.DurationMinutes > domain.MaxServiceDurationMinutes {
		return nil, fmt.Errorf("%w: durationMinutes must be in (0, %d], got %d",
			ErrValidation, domain.MaxServiceDurationMinutes, appt.DurationMinutes)
	}
	if appt.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if len(appt.Observation) > domain.MaxObservationLength {
		return nil, fmt.Errorf("%w: observation exceeds %d characters", ErrValidation, domain.MaxObservationLength)
	}

	// 4. Поля модели
	if draft.IsDelivery {
		if appt.Address == "" {
			return nil, fmt.Errorf("%w: address is required for delivery appointments", ErrValidation)
		}
		if draft.BoxID != nil {
			return nil, fmt.Errorf("%w: delivery appointments do not use bays", ErrValidation)
		}
	} else {
		if draft.BoxID != nil {
			if err := ValidateBox(state.Settings, *draft.BoxID); err != nil {
				return nil, err
			}
			box := *draft.BoxID
			appt.BoxID = &box
		} else if box, ok := FirstFreeBay(state); ok {
			appt.BoxID = &box
		}
	}

	appt.ID = s.newID()
	appt.Status = domain.StatusNovo
	return appt, nil
}

// Transition применяет переход статуса с проверками модели и аллокатора
// При ошибке запись и клиент не изменяются
// Повтор уже примененного перехода для нетерминальной записи - успешный no-op
func (s *Scheduler) Transition(state *domain.TenantState, req TransitionRequest) (*TransitionResult, error) {
	// 1. Ищем запись
	appt := state.FindAppointment(req.AppointmentID)
	if appt == nil {
		return nil, fmt.Errorf("%w: id=%s", ErrNotFound, req.AppointmentID)
	}
	from := appt.Status

	// 2. Защита от потерянного обновления
	if req.ExpectedStatus != nil && *req.ExpectedStatus != from {
		return nil, fmt.Errorf("%w: expected status %s, current %s", ErrInvalidTransition, *req.ExpectedStatus, from)
	}

	// 3. Терминальные статусы не меняются даже на себя
	if from.IsTerminal() {
		return nil, fmt.Errorf("%w: appointment is already %s", ErrInvalidTransition, from)
	}
	if req.Target == from {
		return &TransitionResult{Appointment: appt, From: from}, nil
	}

	// 4. Таблица переходов модели
	if err := CheckTransition(appt.Model(), from, req.Target); err != nil {
		return nil, err
	}

	// 5. Аллокатор модели
	// Бокс в запросе принимается только при входе FIXED записи в EM_EXECUCAO
	if req.BoxID != nil && !appt.IsDelivery && req.Target != domain.StatusEmExecucao {
		return nil, fmt.Errorf("%w: bay can be set only on transition to %s", ErrValidation, domain.StatusEmExecucao)
	}
	boxID := req.BoxID
	if boxID == nil && !appt.IsDelivery {
		boxID = appt.BoxID
	}
	if err := checkCapacity(state, appt, req.Target, boxID); err != nil {
		return nil, err
	}

	reason := strings.TrimSpace(req.CancellationReason)
	if len(reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrValidation, domain.MaxCancellationReasonLength)
	}

	// 6. Применяем изменения
	appt.Status = req.Target
	if !appt.IsDelivery && req.Target == domain.StatusEmExecucao {
		box := *boxID
		appt.BoxID = &box
	}
	if req.Target == domain.StatusCancelado {
		appt.CancellationReason = reason
	}

	result := &TransitionResult{Appointment: appt, From: from, Changed: true}

	// 7. Статистика клиента меняется в той же операции, что и статус
	if req.Target == domain.StatusFinalizado {
		result.CustomerUpdated = applyCompletion(state, appt)
	}

	return result, nil
}

// applyCompletion обновляет totalSpent, lastVisit и washes клиента
// Возвращает false, если клиент уже удален
func applyCompletion(state *domain.TenantState, appt *domain.Appointment) bool {
	customer := state.FindCustomer(appt.CustomerID)
	if customer == nil {
		return false
	}
	customer.TotalSpent += appt.Price
	customer.LastVisit = appt.Date
	if state.Settings.LoyaltyProgramEnabled {
		customer.Washes++
	}
	return true
}

// AssignBay назначает или меняет бокс FIXED записи
// Если запись уже в EM_EXECUCAO, новый бокс проверяется на занятость
func (s *Scheduler) AssignBay(state *domain.TenantState, appointmentID string, boxID int) (*domain.Appointment, error) {
	appt := state.FindAppointment(appointmentID)
	if appt == nil {
		return nil, fmt.Errorf("%w: id=%s", ErrNotFound, appointmentID)
	}
	if appt.IsDelivery {
		return nil, fmt.Errorf("%w: delivery appointments do not use bays", ErrValidation)
	}
	if appt.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: appointment is already %s", ErrInvalidTransition, appt.Status)
	}
	if err := ValidateBox(state.Settings, boxID); err != nil {
		return nil, err
	}
	if appt.Status == domain.StatusEmExecucao {
		if err := CheckBayAvailable(state, appt.ID, boxID); err != nil {
			return nil, err
		}
	}

	box := boxID
	appt.BoxID = &box
	return appt, nil
}
