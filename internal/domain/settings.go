package domain

import "github.com/m04kA/SMC-DetailingService/pkg/types"

// OperatingRule opening hours for one weekday (0 = Sunday)
type OperatingRule struct {
	DayOfWeek int              `json:"dayOfWeek"`
	IsOpen    bool             `json:"isOpen"`
	OpenTime  types.TimeString `json:"openTime"`
	CloseTime types.TimeString `json:"closeTime"`
}

// SpecialClosure a one-off closed date (holiday, maintenance)
type SpecialClosure struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Reason string `json:"reason"`
}

// BusinessSettings represents the tenant configuration
type BusinessSettings struct {
	BusinessName          string           `json:"businessName"`
	Slug                  string           `json:"slug"`
	Address               string           `json:"address,omitempty"`
	BoxCapacity           int              `json:"boxCapacity"`
	PatioCapacity         int              `json:"patioCapacity"`
	SlotIntervalMinutes   int              `json:"slotIntervalMinutes"`
	OperatingDays         []OperatingRule  `json:"operatingDays"`
	SpecialClosures       []SpecialClosure `json:"specialClosures,omitempty"`
	OnlineBookingEnabled  bool             `json:"onlineBookingEnabled"`
	LoyaltyProgramEnabled bool             `json:"loyaltyProgramEnabled"`
	DeliveryTeams         int              `json:"deliveryTeams"` // 0 = unlimited
}

// RuleFor returns the operating rule for the weekday, nil if not configured
func (s *BusinessSettings) RuleFor(dayOfWeek int) *OperatingRule {
	for i := range s.OperatingDays {
		if s.OperatingDays[i].DayOfWeek == dayOfWeek {
			return &s.OperatingDays[i]
		}
	}
	return nil
}

// ClosureOn returns the special closure for the date, nil if the date is not closed
func (s *BusinessSettings) ClosureOn(date string) *SpecialClosure {
	for i := range s.SpecialClosures {
		if s.SpecialClosures[i].Date == date {
			return &s.SpecialClosures[i]
		}
	}
	return nil
}

// HasDeliveryLimit returns true if the number of simultaneous routes is limited
func (s *BusinessSettings) HasDeliveryLimit() bool {
	return s.DeliveryTeams > 0
}

// ServiceItem represents a catalog entry
type ServiceItem struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Description        string        `json:"description,omitempty"`
	DurationMinutes    int           `json:"durationMinutes"`
	Price              float64       `json:"price"`
	CompatibleVehicles []VehicleType `json:"compatibleVehicles"`
	Active             bool          `json:"active"`
	AllowsFixed        bool          `json:"allowsFixed"`
}

// IsCompatibleWith returns true if the service can be performed on the vehicle type
// Пустой список совместимости означает любой тип
func (s *ServiceItem) IsCompatibleWith(vt VehicleType) bool {
	if len(s.CompatibleVehicles) == 0 || vt == "" {
		return true
	}
	for _, v := range s.CompatibleVehicles {
		if v == vt {
			return true
		}
	}
	return false
}
