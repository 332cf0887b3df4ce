package customer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("nome não pode ser vazio")
)

// Customer representa um cliente da cantina
type Customer struct {
	ID            string    `json:"id"`             // ID do Cliente
	Name          string    `json:"name"`           // Nome do Cliente
	ContactPerson string    `json:"contact_person"` // Pessoa de Contato
	Phone         string    `json:"phone"`          // Telefone
	Email         string    `json:"email"`          // Email
	Company       string    `json:"company"`        // Empresa
	Address       string    `json:"address"`        // Endereço
	Notes         string    `json:"notes"`          // Observações
	CreatedAt     time.Time `json:"created_at"`     // Data de Criação
	UpdatedAt     time.Time `json:"updated_at"`     // Data de Atualização
}

// NewCustomer cria um novo cliente
func NewCustomer(name string) (*Customer, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Customer{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados do cliente
func (c *Customer) Update(name, contactPerson, phone, email, company, address, notes string) error {
	if name == "" {
		return ErrEmptyName
	}

	c.Name = name
	c.ContactPerson = contactPerson
	c.Phone = phone
	c.Email = email
	c.Company = company
	c.Address = address
	c.Notes = notes
	c.UpdatedAt = time.Now()

	return nil
}
