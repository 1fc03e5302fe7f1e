package models

import (
	"strings"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/pkg/types"
)

// Request модели

// ProvisionTenantRequest запрос на создание студии
type ProvisionTenantRequest struct {
	TenantKey    string `json:"tenantKey"`
	BusinessName string `json:"businessName"`
}

// OperatingRuleDTO часы работы одного дня недели (0 = воскресенье)
type OperatingRuleDTO struct {
	DayOfWeek int    `json:"dayOfWeek"`
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime"`  // "08:00"
	CloseTime string `json:"closeTime"` // "18:00"
}

// SpecialClosureDTO разовый выходной
type SpecialClosureDTO struct {
	Date   string `json:"date"` // "2025-12-25"
	Reason string `json:"reason"`
}

// UpdateSettingsRequest запрос на обновление настроек студии
// Все поля опциональны - обновляются только переданные значения
type UpdateSettingsRequest struct {
	BusinessName          *string              `json:"businessName,omitempty"`
	Address               *string              `json:"address,omitempty"`
	BoxCapacity           *int                 `json:"boxCapacity,omitempty"`
	PatioCapacity         *int                 `json:"patioCapacity,omitempty"`
	SlotIntervalMinutes   *int                 `json:"slotIntervalMinutes,omitempty"`
	OperatingDays         *[]OperatingRuleDTO  `json:"operatingDays,omitempty"`
	SpecialClosures       *[]SpecialClosureDTO `json:"specialClosures,omitempty"`
	OnlineBookingEnabled  *bool                `json:"onlineBookingEnabled,omitempty"`
	LoyaltyProgramEnabled *bool                `json:"loyaltyProgramEnabled,omitempty"`
	DeliveryTeams         *int                 `json:"deliveryTeams,omitempty"`
}

// ApplyToSettings применяет переданные поля к настройкам
func (r *UpdateSettingsRequest) ApplyToSettings(s *domain.BusinessSettings) {
	if r.BusinessName != nil {
		s.BusinessName = strings.TrimSpace(*r.BusinessName)
	}
	if r.Address != nil {
		s.Address = strings.TrimSpace(*r.Address)
	}
	if r.BoxCapacity != nil {
		s.BoxCapacity = *r.BoxCapacity
	}
	if r.PatioCapacity != nil {
		s.PatioCapacity = *r.PatioCapacity
	}
	if r.SlotIntervalMinutes != nil {
		s.SlotIntervalMinutes = *r.SlotIntervalMinutes
	}
	if r.OperatingDays != nil {
		rules := make([]domain.OperatingRule, 0, len(*r.OperatingDays))
		for _, d := range *r.OperatingDays {
			rules = append(rules, domain.OperatingRule{
				DayOfWeek: d.DayOfWeek,
				IsOpen:    d.IsOpen,
				OpenTime:  types.TimeString(strings.TrimSpace(d.OpenTime)),
				CloseTime: types.TimeString(strings.TrimSpace(d.CloseTime)),
			})
		}
		s.OperatingDays = rules
	}
	if r.SpecialClosures != nil {
		closures := make([]domain.SpecialClosure, 0, len(*r.SpecialClosures))
		for _, c := range *r.SpecialClosures {
			closures = append(closures, domain.SpecialClosure{Date: strings.TrimSpace(c.Date), Reason: strings.TrimSpace(c.Reason)})
		}
		s.SpecialClosures = closures
	}
	if r.OnlineBookingEnabled != nil {
		s.OnlineBookingEnabled = *r.OnlineBookingEnabled
	}
	if r.LoyaltyProgramEnabled != nil {
		s.LoyaltyProgramEnabled = *r.LoyaltyProgramEnabled
	}
	if r.DeliveryTeams != nil {
		s.DeliveryTeams = *r.DeliveryTeams
	}
}

// UpsertServiceRequest запрос на создание или изменение услуги каталога
type UpsertServiceRequest struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	DurationMinutes    int      `json:"durationMinutes"`
	Price              float64  `json:"price"`
	CompatibleVehicles []string `json:"compatibleVehicles"`
	Active             bool     `json:"active"`
	AllowsFixed        bool     `json:"allowsFixed"`
}

// ToDomainService конвертирует request в domain.ServiceItem
func (r *UpsertServiceRequest) ToDomainService(id string) *domain.ServiceItem {
	vehicles := make([]domain.VehicleType, 0, len(r.CompatibleVehicles))
	for _, v := range r.CompatibleVehicles {
		vehicles = append(vehicles, domain.VehicleType(v))
	}
	return &domain.ServiceItem{
		ID:                 id,
		Name:               strings.TrimSpace(r.Name),
		Description:        strings.TrimSpace(r.Description),
		DurationMinutes:    r.DurationMinutes,
		Price:              r.Price,
		CompatibleVehicles: vehicles,
		Active:             r.Active,
		AllowsFixed:        r.AllowsFixed,
	}
}

// Response модели

// ServiceItemResponse услуга каталога
type ServiceItemResponse struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description,omitempty"`
	DurationMinutes    int      `json:"durationMinutes"`
	Price              float64  `json:"price"`
	CompatibleVehicles []string `json:"compatibleVehicles"`
	Active             bool     `json:"active"`
	AllowsFixed        bool     `json:"allowsFixed"`
}

// SettingsResponse настройки студии вместе с каталогом услуг
type SettingsResponse struct {
	TenantKey             string                `json:"tenantKey"`
	BusinessName          string                `json:"businessName"`
	Slug                  string                `json:"slug"`
	Address               string                `json:"address,omitempty"`
	BoxCapacity           int                   `json:"boxCapacity"`
	PatioCapacity         int                   `json:"patioCapacity"`
	SlotIntervalMinutes   int                   `json:"slotIntervalMinutes"`
	OperatingDays         []OperatingRuleDTO    `json:"operatingDays"`
	SpecialClosures       []SpecialClosureDTO   `json:"specialClosures"`
	OnlineBookingEnabled  bool                  `json:"onlineBookingEnabled"`
	LoyaltyProgramEnabled bool                  `json:"loyaltyProgramEnabled"`
	DeliveryTeams         int                   `json:"deliveryTeams"`
	Services              []ServiceItemResponse `json:"services"`
}

// PublicProfileResponse данные студии для страницы онлайн-записи
type PublicProfileResponse struct {
	TenantKey            string                `json:"tenantKey"`
	BusinessName         string                `json:"businessName"`
	Address              string                `json:"address,omitempty"`
	OnlineBookingEnabled bool                  `json:"onlineBookingEnabled"`
	OperatingDays        []OperatingRuleDTO    `json:"operatingDays"`
	Services             []ServiceItemResponse `json:"services"`
}

// Конвертеры

// FromDomainService конвертирует domain.ServiceItem в ServiceItemResponse
func FromDomainService(s *domain.ServiceItem) ServiceItemResponse {
	vehicles := make([]string, 0, len(s.CompatibleVehicles))
	for _, v := range s.CompatibleVehicles {
		vehicles = append(vehicles, string(v))
	}
	return ServiceItemResponse{
		ID:                 s.ID,
		Name:               s.Name,
		Description:        s.Description,
		DurationMinutes:    s.DurationMinutes,
		Price:              s.Price,
		CompatibleVehicles: vehicles,
		Active:             s.Active,
		AllowsFixed:        s.AllowsFixed,
	}
}

// FromDomainState конвертирует состояние студии в SettingsResponse
func FromDomainState(state *domain.TenantState) *SettingsResponse {
	s := state.Settings
	resp := &SettingsResponse{
		TenantKey:             state.TenantKey,
		BusinessName:          s.BusinessName,
		Slug:                  s.Slug,
		Address:               s.Address,
		BoxCapacity:           s.BoxCapacity,
		PatioCapacity:         s.PatioCapacity,
		SlotIntervalMinutes:   s.SlotIntervalMinutes,
		OperatingDays:         fromDomainRules(s.OperatingDays),
		SpecialClosures:       make([]SpecialClosureDTO, 0, len(s.SpecialClosures)),
		OnlineBookingEnabled:  s.OnlineBookingEnabled,
		LoyaltyProgramEnabled: s.LoyaltyProgramEnabled,
		DeliveryTeams:         s.DeliveryTeams,
		Services:              make([]ServiceItemResponse, 0, len(state.Services)),
	}
	for _, c := range s.SpecialClosures {
		resp.SpecialClosures = append(resp.SpecialClosures, SpecialClosureDTO{Date: c.Date, Reason: c.Reason})
	}
	for _, item := range state.Services {
		resp.Services = append(resp.Services, FromDomainService(item))
	}
	return resp
}

// FromDomainPublicProfile конвертирует состояние студии в публичный профиль
// Неактивные услуги не показываются
func FromDomainPublicProfile(state *domain.TenantState) *PublicProfileResponse {
	resp := &PublicProfileResponse{
		TenantKey:            state.TenantKey,
		BusinessName:         state.Settings.BusinessName,
		Address:              state.Settings.Address,
		OnlineBookingEnabled: state.Settings.OnlineBookingEnabled,
		OperatingDays:        fromDomainRules(state.Settings.OperatingDays),
		Services:             make([]ServiceItemResponse, 0, len(state.Services)),
	}
	for _, item := range state.Services {
		if item.Active {
			resp.Services = append(resp.Services, FromDomainService(item))
		}
	}
	return resp
}

func fromDomainRules(rules []domain.OperatingRule) []OperatingRuleDTO {
	out := make([]OperatingRuleDTO, 0, len(rules))
	for _, r := range rules {
		out = append(out, OperatingRuleDTO{
			DayOfWeek: r.DayOfWeek,
			IsOpen:    r.IsOpen,
			OpenTime:  r.OpenTime.String(),
			CloseTime: r.CloseTime.String(),
		})
	}
	return out
}
