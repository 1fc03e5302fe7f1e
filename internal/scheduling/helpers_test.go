package scheduling

import (
	"fmt"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/pkg/ptr"
	"github.com/m04kA/SMC-DetailingService/pkg/types"
)

var allStatuses = []domain.AppointmentStatus{
	domain.StatusNovo,
	domain.StatusConfirmado,
	domain.StatusEmRota,
	domain.StatusEmExecucao,
	domain.StatusFinalizado,
	domain.StatusCancelado,
}

// newTestState студия: 2 бокса, пн-пт 08:00-18:00, сб 09:00-14:00, вс выходной, интервал 30
func newTestState() *domain.TenantState {
	st := domain.NewTenantState("carbon", "Carbon Detail")
	st.Settings.BoxCapacity = 2
	st.Customers = []*domain.Customer{
		{
			ID:   "c1",
			Name: "Roberto Silva",
			Vehicles: []domain.Vehicle{
				{ID: "v1", Brand: "BMW", Model: "X5", Type: domain.VehicleSUV},
				{ID: "v2", Brand: "Honda", Model: "CB500", Type: domain.VehicleMoto},
			},
		},
		{
			ID:       "c2",
			Name:     "Ana Souza",
			Vehicles: []domain.Vehicle{{ID: "v3", Brand: "Jeep", Model: "Compass", Type: domain.VehicleCarro}},
		},
	}
	return st
}

func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("a%d", n)
	}
}

func addAppointment(st *domain.TenantState, id string, status domain.AppointmentStatus, isDelivery bool, box *int, date string, at types.TimeString) *domain.Appointment {
	a := &domain.Appointment{
		ID:              id,
		CustomerID:      "c1",
		VehicleID:       "v1",
		BoxID:           box,
		ServiceType:     "Lavagem Detalhada",
		DurationMinutes: 90,
		Price:           150,
		Date:            date,
		Time:            at,
		Status:          status,
		IsDelivery:      isDelivery,
	}
	if isDelivery {
		a.Address = "Rua Augusta, 100"
	}
	st.Appointments = append(st.Appointments, a)
	return a
}

func fixedDraft() Draft {
	return Draft{
		CustomerID:      "c1",
		VehicleID:       "v1",
		ServiceType:     "Lavagem Simples",
		Date:            "2024-06-10",
		Time:            "09:00",
		DurationMinutes: 45,
		Price:           60,
	}
}

func boxPtr(v int) *int {
	return ptr.Ptr(v)
}
