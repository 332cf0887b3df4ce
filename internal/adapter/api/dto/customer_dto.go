package dto

import (
	"time"

	"github.com/hugohenrick/smart-canteen/internal/domain/customer"
)

// CustomerRequest representa a requisição de cliente
type CustomerRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Company       string `json:"company"`
	Address       string `json:"address"`
	Notes         string `json:"notes"`
}

// CustomerResponse representa a resposta de cliente
type CustomerResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Company       string    `json:"company"`
	Address       string    `json:"address"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CustomerListResponse representa a resposta de lista de clientes
type CustomerListResponse struct {
	Items      []CustomerResponse `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	TotalPages int                `json:"total_pages"`
}

// ToCustomerResponse converte um cliente do domínio para DTO
func ToCustomerResponse(c *customer.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:            c.ID,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Email:         c.Email,
		Company:       c.Company,
		Address:       c.Address,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// ToCustomerListResponse converte uma lista de clientes do domínio para DTO
func ToCustomerListResponse(customers []*customer.Customer, total, page, size int) *CustomerListResponse {
	items := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		items[i] = *ToCustomerResponse(c)
	}

	return &CustomerListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}
