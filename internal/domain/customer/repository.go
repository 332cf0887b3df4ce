package customer

import (
	"context"
)

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente
	Create(ctx context.Context, c *Customer) error

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id string) (*Customer, error)

	// List lista os clientes ordenados por nome, com paginação
	List(ctx context.Context, limit, offset int) ([]*Customer, error)

	// Update atualiza os dados de um cliente existente
	Update(ctx context.Context, c *Customer) error

	// Delete remove um cliente; as vendas associadas sobrevivem com referência nula
	Delete(ctx context.Context, id string) error

	// Count conta quantos clientes existem
	Count(ctx context.Context) (int, error)

	// Exists verifica se um cliente existe
	Exists(ctx context.Context, id string) (bool, error)
}
