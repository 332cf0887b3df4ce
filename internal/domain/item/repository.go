package item

import (
	"context"
)

// Repository define a interface para operações de repositório de itens
type Repository interface {
	// Create cria um novo item
	Create(ctx context.Context, i *Item) error

	// FindByID busca um item pelo ID
	FindByID(ctx context.Context, id string) (*Item, error)

	// List lista os itens ordenados por nome, com paginação
	List(ctx context.Context, limit, offset int) ([]*Item, error)

	// FindLowStock lista os itens com estoque igual ou abaixo do limite de reposição
	FindLowStock(ctx context.Context) ([]*Item, error)

	// Update atualiza os dados de um item existente
	Update(ctx context.Context, i *Item) error

	// Delete remove um item; falha se o item estiver referenciado por alguma venda
	Delete(ctx context.Context, id string) error

	// Count conta quantos itens existem
	Count(ctx context.Context) (int, error)
}
