package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/pkg/ptr"
)

func newTestScheduler() *Scheduler {
	return NewScheduler(WithIDGenerator(sequentialIDs()))
}

func TestScheduler_BayConflictScenario(t *testing.T) {
	st := newTestState()
	s := newTestScheduler()

	slots, err := s.ComputeSlots(st, "2024-06-10", 90)
	require.NoError(t, err)
	assert.Equal(t, "16:30", slots[len(slots)-1].String())

	draftA := fixedDraft()
	draftA.BoxID = boxPtr(1)
	a, err := s.Create(st, draftA)
	require.NoError(t, err)

	draftB := fixedDraft()
	draftB.CustomerID, draftB.VehicleID = "c2", "v3"
	draftB.BoxID = boxPtr(1)
	b, err := s.Create(st, draftB)
	require.NoError(t, err)

	for _, id := range []string{a.ID, b.ID} {
		_, err = s.Transition(st, TransitionRequest{AppointmentID: id, Target: domain.StatusConfirmado})
		require.NoError(t, err)
	}

	_, err = s.Transition(st, TransitionRequest{AppointmentID: a.ID, Target: domain.StatusEmExecucao})
	require.NoError(t, err)

	_, err = s.Transition(st, TransitionRequest{AppointmentID: b.ID, Target: domain.StatusEmExecucao})
	require.ErrorIs(t, err, ErrBayConflict)
	assert.Equal(t, domain.StatusConfirmado, b.Status)

	res, err := s.Transition(st, TransitionRequest{AppointmentID: b.ID, Target: domain.StatusEmExecucao, BoxID: boxPtr(2)})
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, 2, *res.Appointment.BoxID)

	assert.Equal(t, []BayStatus{
		{BoxID: 1, Occupied: true, AppointmentID: a.ID},
		{BoxID: 2, Occupied: true, AppointmentID: b.ID},
	}, s.Occupancy(st))
}

func TestScheduler_Create_DefaultBay(t *testing.T) {
	st := newTestState()
	addAppointment(st, "busy", domain.StatusEmExecucao, false, boxPtr(1), "2024-06-10", "08:00")
	s := newTestScheduler()

	appt, err := s.Create(st, fixedDraft())
	require.NoError(t, err)

	assert.Equal(t, "a1", appt.ID)
	assert.Equal(t, domain.StatusNovo, appt.Status)
	require.NotNil(t, appt.BoxID)
	assert.Equal(t, 2, *appt.BoxID)
	assert.Len(t, st.Appointments, 2)

	// Все боксы заняты: запись создается без бокса
	addAppointment(st, "busy2", domain.StatusEmExecucao, false, boxPtr(2), "2024-06-10", "08:00")
	appt, err = s.Create(st, fixedDraft())
	require.NoError(t, err)
	assert.Nil(t, appt.BoxID)
}

func TestScheduler_Create_ServiceSnapshot(t *testing.T) {
	st := newTestState()
	s := newTestScheduler()

	draft := fixedDraft()
	draft.ServiceID = ptr.Ptr("s2")
	draft.ServiceType = ""
	draft.DurationMinutes = 0
	draft.Price = 0

	appt, err := s.Create(st, draft)
	require.NoError(t, err)
	assert.Equal(t, "Lavagem Detalhada", appt.ServiceType)
	assert.Equal(t, 90, appt.DurationMinutes)
	assert.Equal(t, 150.0, appt.Price)

	// Изменение каталога не влияет на созданную запись
	st.FindService("s2").Price = 999
	st.FindService("s2").DurationMinutes = 30
	assert.Equal(t, 150.0, st.FindAppointment(appt.ID).Price)
	assert.Equal(t, 90, st.FindAppointment(appt.ID).DurationMinutes)
}

func TestScheduler_Create_ZeroPriceAllowed(t *testing.T) {
	st := newTestState()
	draft := fixedDraft()
	draft.Price = 0

	_, err := newTestScheduler().Create(st, draft)
	require.NoError(t, err)
}

func TestScheduler_Create_Delivery(t *testing.T) {
	st := newTestState()
	draft := fixedDraft()
	draft.IsDelivery = true
	draft.Address = "  Rua Augusta, 100 "

	appt, err := newTestScheduler().Create(st, draft)
	require.NoError(t, err)
	assert.True(t, appt.IsDelivery)
	assert.Nil(t, appt.BoxID)
	assert.Equal(t, "Rua Augusta, 100", appt.Address)
}

func TestScheduler_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *Draft, st *domain.TenantState)
	}{
		{"missing customer", func(d *Draft, _ *domain.TenantState) { d.CustomerID = "" }},
		{"missing vehicle", func(d *Draft, _ *domain.TenantState) { d.VehicleID = " " }},
		{"unknown customer", func(d *Draft, _ *domain.TenantState) { d.CustomerID = "c9" }},
		{"foreign vehicle", func(d *Draft, _ *domain.TenantState) { d.VehicleID = "v3" }},
		{"bad date", func(d *Draft, _ *domain.TenantState) { d.Date = "2024-13-01" }},
		{"bad time", func(d *Draft, _ *domain.TenantState) { d.Time = "25:00" }},
		{"zero duration", func(d *Draft, _ *domain.TenantState) { d.DurationMinutes = 0 }},
		{"negative duration", func(d *Draft, _ *domain.TenantState) { d.DurationMinutes = -30 }},
		{"negative price", func(d *Draft, _ *domain.TenantState) { d.Price = -1 }},
		{"missing service type", func(d *Draft, _ *domain.TenantState) { d.ServiceType = "" }},
		{"delivery without address", func(d *Draft, _ *domain.TenantState) { d.IsDelivery = true }},
		{"delivery with bay", func(d *Draft, _ *domain.TenantState) {
			d.IsDelivery, d.Address, d.BoxID = true, "Rua A", boxPtr(1)
		}},
		{"bay out of range", func(d *Draft, _ *domain.TenantState) { d.BoxID = boxPtr(3) }},
		{"unknown service", func(d *Draft, _ *domain.TenantState) { d.ServiceID = ptr.Ptr("s9") }},
		{"inactive service", func(d *Draft, st *domain.TenantState) {
			st.FindService("s1").Active = false
			d.ServiceID = ptr.Ptr("s1")
		}},
		{"delivery-only service booked as fixed", func(d *Draft, st *domain.TenantState) {
			st.FindService("s1").AllowsFixed = false
			d.ServiceID = ptr.Ptr("s1")
		}},
		{"incompatible vehicle", func(d *Draft, _ *domain.TenantState) {
			d.VehicleID = "v2"
			d.ServiceID = ptr.Ptr("s1")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestState()
			draft := fixedDraft()
			tt.mutate(&draft, st)

			_, err := newTestScheduler().Create(st, draft)
			require.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, st.Appointments)
		})
	}
}

func TestScheduler_Transition_IllegalLeavesAppointmentUnchanged(t *testing.T) {
	s := newTestScheduler()

	for _, isDelivery := range []bool{false, true} {
		model := domain.ModelOf(isDelivery)
		for _, from := range allStatuses {
			for _, to := range allStatuses {
				if from == to || CanTransition(model, from, to) {
					continue
				}

				st := newTestState()
				box := boxPtr(1)
				if isDelivery {
					box = nil
				}
				appt := addAppointment(st, "x", from, isDelivery, box, "2024-06-10", "09:00")
				before := appt.Clone()
				customerBefore := *st.FindCustomer("c1")

				_, err := s.Transition(st, TransitionRequest{AppointmentID: "x", Target: to})
				require.ErrorIs(t, err, ErrInvalidTransition, "%s: %s -> %s", model, from, to)
				assert.Equal(t, before, appt)
				assert.Equal(t, customerBefore.TotalSpent, st.FindCustomer("c1").TotalSpent)
			}
		}
	}
}

func TestScheduler_Transition_TerminalFinality(t *testing.T) {
	s := newTestScheduler()

	for _, terminal := range []domain.AppointmentStatus{domain.StatusFinalizado, domain.StatusCancelado} {
		for _, to := range allStatuses {
			st := newTestState()
			addAppointment(st, "x", terminal, false, boxPtr(1), "2024-06-10", "09:00")

			_, err := s.Transition(st, TransitionRequest{AppointmentID: "x", Target: to})
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", terminal, to)
		}
	}
}

func TestScheduler_Transition_SameStatusIsNoop(t *testing.T) {
	st := newTestState()
	addAppointment(st, "x", domain.StatusConfirmado, false, boxPtr(1), "2024-06-10", "09:00")

	res, err := newTestScheduler().Transition(st, TransitionRequest{AppointmentID: "x", Target: domain.StatusConfirmado})
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Equal(t, domain.StatusConfirmado, res.Appointment.Status)
}

func TestScheduler_Transition_ExpectedStatusMismatch(t *testing.T) {
	st := newTestState()
	addAppointment(st, "x", domain.StatusConfirmado, false, boxPtr(1), "2024-06-10", "09:00")

	_, err := newTestScheduler().Transition(st, TransitionRequest{
		AppointmentID:  "x",
		Target:         domain.StatusCancelado,
		ExpectedStatus: ptr.Ptr(domain.StatusNovo),
	})
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, domain.StatusConfirmado, st.FindAppointment("x").Status)
}

func TestScheduler_Transition_NotFound(t *testing.T) {
	_, err := newTestScheduler().Transition(newTestState(), TransitionRequest{AppointmentID: "nope", Target: domain.StatusConfirmado})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestScheduler_Transition_CompletionSideEffect(t *testing.T) {
	st := newTestState()
	st.FindCustomer("c1").TotalSpent = 100
	st.FindCustomer("c1").Washes = 2
	addAppointment(st, "x", domain.StatusEmExecucao, false, boxPtr(1), "2024-06-10", "09:00")

	res, err := newTestScheduler().Transition(st, TransitionRequest{AppointmentID: "x", Target: domain.StatusFinalizado})
	require.NoError(t, err)
	assert.True(t, res.CustomerUpdated)
	assert.Equal(t, domain.StatusEmExecucao, res.From)

	customer := st.FindCustomer("c1")
	assert.Equal(t, 250.0, customer.TotalSpent)
	assert.Equal(t, "2024-06-10", customer.LastVisit)
	assert.Equal(t, 3, customer.Washes)

	// Бокс освобождается после завершения
	assert.False(t, Occupancy(st)[0].Occupied)
}

func TestScheduler_Transition_CompletionWithoutLoyalty(t *testing.T) {
	st := newTestState()
	st.Settings.LoyaltyProgramEnabled = false
	addAppointment(st, "x", domain.StatusEmExecucao, true, nil, "2024-06-10", "09:00")

	_, err := newTestScheduler().Transition(st, TransitionRequest{AppointmentID: "x", Target: domain.StatusFinalizado})
	require.NoError(t, err)

	assert.Equal(t, 150.0, st.FindCustomer("c1").TotalSpent)
	assert.Equal(t, 0, st.FindCustomer("c1").Washes)
}

func TestScheduler_Transition_CompletionWithDeletedCustomer(t *testing.T) {
	st := newTestState()
	appt := addAppointment(st, "x", domain.StatusEmExecucao, false, boxPtr(1), "2024-06-10", "09:00")
	appt.CustomerID = "gone"

	res, err := newTestScheduler().Transition(st, TransitionRequest{AppointmentID: "x", Target: domain.StatusFinalizado})
	require.NoError(t, err)
	assert.False(t, res.CustomerUpdated)
	assert.Equal(t, domain.StatusFinalizado, appt.Status)
}

func TestScheduler_Transition_NonCompletionKeepsStats(t *testing.T) {
	s := newTestScheduler()
	st := newTestState()
	addAppointment(st, "x", domain.StatusNovo, false, boxPtr(1), "2024-06-10", "09:00")

	for _, target := range []domain.AppointmentStatus{domain.StatusConfirmado, domain.StatusEmExecucao} {
		_, err := s.Transition(st, TransitionRequest{AppointmentID: "x", Target: target})
		require.NoError(t, err)
		assert.Zero(t, st.FindCustomer("c1").TotalSpent)
	}

	addAppointment(st, "y", domain.StatusConfirmado, false, boxPtr(2), "2024-06-10", "10:00")
	res, err := s.Transition(st, TransitionRequest{AppointmentID: "y", Target: domain.StatusCancelado, CancellationReason: " Cliente desistiu "})
	require.NoError(t, err)
	assert.Equal(t, "Cliente desistiu", res.Appointment.CancellationReason)
	assert.Zero(t, st.FindCustomer("c1").TotalSpent)
}

func TestScheduler_Transition_FixedRequiresBay(t *testing.T) {
	st := newTestState()
	addAppointment(st, "x", domain.StatusConfirmado, false, nil, "2024-06-10", "09:00")
	s := newTestScheduler()

	_, err := s.Transition(st, TransitionRequest{AppointmentID: "x", Target: domain.StatusEmExecucao})
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.Transition(st, TransitionRequest{AppointmentID: "x", Target: domain.StatusEmExecucao, BoxID: boxPtr(5)})
	require.ErrorIs(t, err, ErrValidation)

	res, err := s.Transition(st, TransitionRequest{AppointmentID: "x", Target: domain.StatusEmExecucao, BoxID: boxPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, 2, *res.Appointment.BoxID)
}

func TestScheduler_Transition_BayOnlyOnExecutionEntry(t *testing.T) {
	st := newTestState()
	appt := addAppointment(st, "x", domain.StatusNovo, false, boxPtr(1), "2024-06-10", "09:00")
	s := newTestScheduler()

	_, err := s.Transition(st, TransitionRequest{AppointmentID: "x", Target: domain.StatusConfirmado, BoxID: boxPtr(2)})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, domain.StatusNovo, appt.Status)
	assert.Equal(t, 1, *appt.BoxID)

	_, err = s.Transition(st, TransitionRequest{AppointmentID: "x", Target: domain.StatusConfirmado, BoxID: boxPtr(99)})
	require.ErrorIs(t, err, ErrValidation)

	res, err := s.Transition(st, TransitionRequest{AppointmentID: "x", Target: domain.StatusConfirmado})
	require.NoError(t, err)
	assert.Equal(t, 1, *res.Appointment.BoxID)
}

func TestScheduler_Transition_DeliveryIgnoresBays(t *testing.T) {
	st := newTestState()
	addAppointment(st, "d1", domain.StatusEmRota, true, nil, "2024-06-10", "09:00")
	addAppointment(st, "d2", domain.StatusEmRota, true, nil, "2024-06-10", "09:00")
	s := newTestScheduler()

	for _, id := range []string{"d1", "d2"} {
		_, err := s.Transition(st, TransitionRequest{AppointmentID: id, Target: domain.StatusEmExecucao})
		require.NoError(t, err)
	}

	addAppointment(st, "d3", domain.StatusConfirmado, true, nil, "2024-06-10", "09:00")
	_, err := s.Transition(st, TransitionRequest{AppointmentID: "d3", Target: domain.StatusEmRota, BoxID: boxPtr(1)})
	require.ErrorIs(t, err, ErrValidation)
}

func TestScheduler_Transition_DeliveryTeamsLimit(t *testing.T) {
	st := newTestState()
	st.Settings.DeliveryTeams = 1
	addAppointment(st, "d1", domain.StatusConfirmado, true, nil, "2024-06-10", "09:00")
	addAppointment(st, "d2", domain.StatusConfirmado, true, nil, "2024-06-10", "10:00")
	s := newTestScheduler()

	_, err := s.Transition(st, TransitionRequest{AppointmentID: "d1", Target: domain.StatusEmRota})
	require.NoError(t, err)

	_, err = s.Transition(st, TransitionRequest{AppointmentID: "d2", Target: domain.StatusEmRota})
	require.ErrorIs(t, err, ErrDriverUnavailable)
	assert.Equal(t, domain.StatusConfirmado, st.FindAppointment("d2").Status)

	for _, target := range []domain.AppointmentStatus{domain.StatusEmExecucao, domain.StatusFinalizado} {
		_, err = s.Transition(st, TransitionRequest{AppointmentID: "d1", Target: target})
		require.NoError(t, err)
	}

	_, err = s.Transition(st, TransitionRequest{AppointmentID: "d2", Target: domain.StatusEmRota})
	require.NoError(t, err)
}

func TestScheduler_BayExclusivityAcrossSequences(t *testing.T) {
	st := newTestState()
	s := newTestScheduler()
	for i := 0; i < 4; i++ {
		addAppointment(st, string(rune('p'+i)), domain.StatusConfirmado, false, boxPtr(i%2+1), "2024-06-10", "09:00")
	}

	for _, a := range st.Appointments {
		_, _ = s.Transition(st, TransitionRequest{AppointmentID: a.ID, Target: domain.StatusEmExecucao})
		_, _ = s.AssignBay(st, a.ID, 1)
	}

	holders := map[int]int{}
	for _, a := range st.Appointments {
		if a.Status == domain.StatusEmExecucao {
			holders[*a.BoxID]++
		}
	}
	for box, count := range holders {
		assert.Equal(t, 1, count, "box %d", box)
	}
}

func TestScheduler_AssignBay(t *testing.T) {
	st := newTestState()
	addAppointment(st, "a", domain.StatusEmExecucao, false, boxPtr(1), "2024-06-10", "09:00")
	addAppointment(st, "b", domain.StatusEmExecucao, false, boxPtr(2), "2024-06-10", "09:00")
	addAppointment(st, "c", domain.StatusNovo, false, nil, "2024-06-10", "10:00")
	addAppointment(st, "d", domain.StatusNovo, true, nil, "2024-06-10", "10:00")
	addAppointment(st, "e", domain.StatusCancelado, false, boxPtr(1), "2024-06-10", "10:00")
	s := newTestScheduler()

	_, err := s.AssignBay(st, "b", 1)
	assert.ErrorIs(t, err, ErrBayConflict)

	appt, err := s.AssignBay(st, "c", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, *appt.BoxID)

	_, err = s.AssignBay(st, "d", 1)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.AssignBay(st, "e", 2)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.AssignBay(st, "c", 9)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.AssignBay(st, "zz", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduler_ListForDate(t *testing.T) {
	st := newTestState()
	addAppointment(st, "f1", domain.StatusConfirmado, false, boxPtr(1), "2024-06-10", "14:00")
	addAppointment(st, "f2", domain.StatusNovo, false, boxPtr(1), "2024-06-10", "08:30")
	addAppointment(st, "f3", domain.StatusFinalizado, false, boxPtr(1), "2024-06-10", "07:00")
	addAppointment(st, "f4", domain.StatusNovo, false, boxPtr(1), "2024-06-11", "08:00")
	addAppointment(st, "d1", domain.StatusNovo, true, nil, "2024-06-10", "09:00")
	s := newTestScheduler()

	assert.Equal(t, []string{"f2", "f1"}, ids(s.ListForDate(st, "2024-06-10", domain.ModelFixed)))
	assert.Equal(t, []string{"d1"}, ids(s.ListForDate(st, "2024-06-10", domain.ModelDelivery)))
	assert.Empty(t, s.ListForDate(st, "2024-06-12", domain.ModelFixed))

	view := s.Schedule(st, "2024-06-10", domain.ModelFixed)
	assert.Equal(t, []string{"f2", "f1"}, ids(view.Queue))
	assert.Equal(t, []string{"f3"}, ids(view.History))

	all := s.Schedule(st, "", domain.ModelFixed)
	assert.Equal(t, []string{"f2", "f1", "f4"}, ids(all.Queue))
}
