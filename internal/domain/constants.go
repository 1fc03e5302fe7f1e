package domain

// Default configuration values
const (
	DefaultBoxCapacity         = 3
	DefaultPatioCapacity       = 5
	DefaultSlotIntervalMinutes = 30
	DefaultDeliveryTeams       = 0 // 0 = unlimited
)

// Business validation constants
const (
	MinBoxCapacity              = 1
	MaxBoxCapacity              = 50
	MinSlotIntervalMinutes      = 5
	MaxSlotIntervalMinutes      = 240
	MaxServiceDurationMinutes   = 720 // 12 hours
	MaxObservationLength        = 500
	MaxCancellationReasonLength = 500
	MaxTenantKeyLength          = 64
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
