package sale

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyTotal representa o total vendido em um mês calendário
type MonthlyTotal struct {
	Month time.Time       `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// TopItem representa um item no ranking de mais vendidos por quantidade
type TopItem struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"qty"`
}

// Repository define a interface para operações de repositório de vendas
type Repository interface {
	// Create persiste a venda e suas linhas em uma única transação: trava cada
	// item na ordem enviada, valida o estoque, decrementa, congela o preço
	// unitário e acumula o total. Qualquer falha desfaz a operação inteira.
	Create(ctx context.Context, s *Sale, lines []Line) error

	// FindByID busca uma venda pelo ID, com cliente e itens expandidos
	FindByID(ctx context.Context, id string) (*Sale, error)

	// List lista as vendas mais recentes primeiro, com paginação
	List(ctx context.Context, limit, offset int) ([]*Sale, error)

	// Update atualiza os campos de cabeçalho de uma venda existente
	Update(ctx context.Context, s *Sale) error

	// Delete remove uma venda e, em cascata, suas linhas
	Delete(ctx context.Context, id string) error

	// Count conta quantas vendas existem
	Count(ctx context.Context) (int, error)

	// MonthlySummary agrupa as vendas por mês calendário, em ordem cronológica
	MonthlySummary(ctx context.Context) ([]MonthlyTotal, error)

	// TopItems retorna os itens mais vendidos por quantidade, em ordem decrescente
	TopItems(ctx context.Context, limit int) ([]TopItem, error)
}
