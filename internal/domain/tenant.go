package domain

// TenantState is the whole data set of one studio, loaded and saved as a unit
type TenantState struct {
	TenantKey    string           `json:"tenantKey"`
	Version      int64            `json:"-"`
	Settings     BusinessSettings `json:"settings"`
	Customers    []*Customer      `json:"customers"`
	Services     []*ServiceItem   `json:"services"`
	Appointments []*Appointment   `json:"appointments"`
}

// FindAppointment returns the appointment by id, nil if absent
func (t *TenantState) FindAppointment(id string) *Appointment {
	for _, a := range t.Appointments {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// FindCustomer returns the customer by id, nil if absent
func (t *TenantState) FindCustomer(id string) *Customer {
	for _, c := range t.Customers {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// FindService returns the catalog item by id, nil if absent
func (t *TenantState) FindService(id string) *ServiceItem {
	for _, s := range t.Services {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// DefaultOperatingDays Mon-Fri 08:00-18:00, Sat 09:00-14:00, Sun closed
func DefaultOperatingDays() []OperatingRule {
	rules := make([]OperatingRule, 0, 7)
	rules = append(rules, OperatingRule{DayOfWeek: 0, IsOpen: false, OpenTime: "00:00", CloseTime: "00:00"})
	for day := 1; day <= 5; day++ {
		rules = append(rules, OperatingRule{DayOfWeek: day, IsOpen: true, OpenTime: "08:00", CloseTime: "18:00"})
	}
	rules = append(rules, OperatingRule{DayOfWeek: 6, IsOpen: true, OpenTime: "09:00", CloseTime: "14:00"})
	return rules
}

// DefaultSettings returns settings for a freshly provisioned studio
func DefaultSettings(businessName, slug string) BusinessSettings {
	return BusinessSettings{
		BusinessName:          businessName,
		Slug:                  slug,
		BoxCapacity:           DefaultBoxCapacity,
		PatioCapacity:         DefaultPatioCapacity,
		SlotIntervalMinutes:   DefaultSlotIntervalMinutes,
		OperatingDays:         DefaultOperatingDays(),
		OnlineBookingEnabled:  true,
		LoyaltyProgramEnabled: true,
		DeliveryTeams:         DefaultDeliveryTeams,
	}
}

// DefaultServices returns the starter service catalog
func DefaultServices() []*ServiceItem {
	return []*ServiceItem{
		{ID: "s1", Name: "Lavagem Simples", Description: "Lavagem externa e aspiração", DurationMinutes: 45, Price: 60,
			CompatibleVehicles: []VehicleType{VehicleCarro, VehicleSUV}, Active: true, AllowsFixed: true},
		{ID: "s2", Name: "Lavagem Detalhada", Description: "Limpeza de motor, chassi e cera", DurationMinutes: 90, Price: 150,
			CompatibleVehicles: []VehicleType{VehicleCarro, VehicleSUV, VehicleUtilitario}, Active: true, AllowsFixed: true},
		{ID: "s3", Name: "Polimento Técnico", Description: "Correção de verniz (1 etapa)", DurationMinutes: 240, Price: 450,
			CompatibleVehicles: []VehicleType{VehicleCarro, VehicleSUV}, Active: true, AllowsFixed: true},
		{ID: "s4", Name: "Higienização Interna", Description: "Limpeza profunda de estofados", DurationMinutes: 120, Price: 200,
			CompatibleVehicles: []VehicleType{VehicleCarro, VehicleSUV, VehicleUtilitario}, Active: true, AllowsFixed: true},
	}
}

// NewTenantState returns an empty studio with default settings and catalog
func NewTenantState(tenantKey, businessName string) *TenantState {
	return &TenantState{
		TenantKey:    tenantKey,
		Settings:     DefaultSettings(businessName, tenantKey),
		Customers:    []*Customer{},
		Services:     DefaultServices(),
		Appointments: []*Appointment{},
	}
}
