package create_appointment

import (
	"strings"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// resolveClient находит клиента по телефону и автомобиль по госномеру
// Отсутствующие записи добавляются в состояние студии
func resolveClient(state *domain.TenantState, info *ClientInfo, newID func() string) (customerID, vehicleID string, created bool) {
	phone := normalizePhone(info.Phone)
	plate := normalizePlate(info.Vehicle.Plate)

	var customer *domain.Customer
	for _, c := range state.Customers {
		if normalizePhone(c.Phone) == phone {
			customer = c
			break
		}
	}

	if customer == nil {
		customer = &domain.Customer{
			ID:       newID(),
			Name:     strings.TrimSpace(info.Name),
			Phone:    strings.TrimSpace(info.Phone),
			Email:    strings.TrimSpace(info.Email),
			Vehicles: []domain.Vehicle{},
		}
		state.Customers = append(state.Customers, customer)
		created = true
	}

	for _, v := range customer.Vehicles {
		if normalizePlate(v.Plate) == plate {
			return customer.ID, v.ID, created
		}
	}

	vehicleType := info.Vehicle.Type
	if vehicleType == "" {
		vehicleType = domain.VehicleCarro
	}
	vehicle := domain.Vehicle{
		ID:    newID(),
		Brand: strings.TrimSpace(info.Vehicle.Brand),
		Model: strings.TrimSpace(info.Vehicle.Model),
		Plate: plate,
		Color: strings.TrimSpace(info.Vehicle.Color),
		Type:  vehicleType,
	}
	customer.Vehicles = append(customer.Vehicles, vehicle)

	return customer.ID, vehicle.ID, created
}
