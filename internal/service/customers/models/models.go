package models

import (
	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// Request модели

// VehicleRequest автомобиль клиента
type VehicleRequest struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Plate string `json:"plate"`
	Color string `json:"color"`
	Type  string `json:"type"`
}

// CreateCustomerRequest запрос на создание клиента
type CreateCustomerRequest struct {
	Name     string           `json:"name"`
	Phone    string           `json:"phone"`
	Email    string           `json:"email"`
	Vehicles []VehicleRequest `json:"vehicles"`
}

// Response модели

// VehicleResponse автомобиль клиента
type VehicleResponse struct {
	ID    string `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Plate string `json:"plate"`
	Color string `json:"color"`
	Type  string `json:"type"`
}

// CustomerResponse ответ с данными клиента
type CustomerResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Phone      string            `json:"phone"`
	Email      string            `json:"email,omitempty"`
	TotalSpent float64           `json:"totalSpent"`
	LastVisit  string            `json:"lastVisit,omitempty"`
	Washes     int               `json:"washes"`
	Vehicles   []VehicleResponse `json:"vehicles"`
}

// CustomerListResponse ответ со списком клиентов
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
	Total     int                `json:"total"`
}

// Конвертеры

// FromDomainCustomer конвертирует domain.Customer в CustomerResponse
func FromDomainCustomer(c *domain.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:         c.ID,
		Name:       c.Name,
		Phone:      c.Phone,
		Email:      c.Email,
		TotalSpent: c.TotalSpent,
		LastVisit:  c.LastVisit,
		Washes:     c.Washes,
		Vehicles:   make([]VehicleResponse, 0, len(c.Vehicles)),
	}
	for _, v := range c.Vehicles {
		resp.Vehicles = append(resp.Vehicles, VehicleResponse{
			ID:    v.ID,
			Brand: v.Brand,
			Model: v.Model,
			Plate: v.Plate,
			Color: v.Color,
			Type:  string(v.Type),
		})
	}
	return resp
}

// FromDomainCustomers конвертирует список клиентов
func FromDomainCustomers(list []*domain.Customer) CustomerListResponse {
	resp := CustomerListResponse{
		Customers: make([]CustomerResponse, 0, len(list)),
		Total:     len(list),
	}
	for _, c := range list {
		resp.Customers = append(resp.Customers, FromDomainCustomer(c))
	}
	return resp
}
