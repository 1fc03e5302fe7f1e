package domain

// VehicleType represents the vehicle category
type VehicleType string

const (
	VehicleCarro      VehicleType = "CARRO"
	VehicleSUV        VehicleType = "SUV"
	VehicleMoto       VehicleType = "MOTO"
	VehicleUtilitario VehicleType = "UTILITARIO"
)

// IsValid returns true if the vehicle type is known
func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleCarro, VehicleSUV, VehicleMoto, VehicleUtilitario:
		return true
	}
	return false
}

// Vehicle represents a customer vehicle
type Vehicle struct {
	ID    string      `json:"id"`
	Brand string      `json:"brand"`
	Model string      `json:"model"`
	Plate string      `json:"plate"`
	Color string      `json:"color,omitempty"`
	Type  VehicleType `json:"type"`
}

// Customer represents a CRM record with derived loyalty stats
type Customer struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	Email    string    `json:"email,omitempty"`
	Vehicles []Vehicle `json:"vehicles"`

	// Derived from finished appointments
	TotalSpent float64 `json:"totalSpent"`
	LastVisit  string  `json:"lastVisit,omitempty"`
	Washes     int     `json:"washes"`
}

// FindVehicle returns the vehicle by id, nil if absent
func (c *Customer) FindVehicle(id string) *Vehicle {
	for i := range c.Vehicles {
		if c.Vehicles[i].ID == id {
			return &c.Vehicles[i]
		}
	}
	return nil
}
