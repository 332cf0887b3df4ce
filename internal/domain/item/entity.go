package item

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrNegativePrice = errors.New("preço não pode ser negativo")
	ErrNegativeStock = errors.New("estoque não pode ser negativo")
)

// DefaultReorderThreshold é o limite de reposição usado quando nenhum é informado
const DefaultReorderThreshold = 5

// Item representa um produto do estoque da cantina
type Item struct {
	ID               string          `json:"id"`                // ID do Item
	Name             string          `json:"name"`              // Nome do Item
	SKU              string          `json:"sku"`               // Código SKU
	Price            decimal.Decimal `json:"price"`             // Preço Unitário
	Stock            int             `json:"stock"`             // Quantidade em Estoque
	ReorderThreshold int             `json:"reorder_threshold"` // Limite para Reposição
	Active           bool            `json:"active"`            // Item Ativo
	CreatedAt        time.Time       `json:"created_at"`        // Data de Criação
	UpdatedAt        time.Time       `json:"updated_at"`        // Data de Atualização
}

// NewItem cria um novo item de estoque
func NewItem(name, sku string, price decimal.Decimal, stock, reorderThreshold int) (*Item, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if price.IsNegative() {
		return nil, ErrNegativePrice
	}

	if stock < 0 {
		return nil, ErrNegativeStock
	}

	if reorderThreshold <= 0 {
		reorderThreshold = DefaultReorderThreshold
	}

	now := time.Now()
	return &Item{
		ID:               uuid.New().String(),
		Name:             name,
		SKU:              sku,
		Price:            price,
		Stock:            stock,
		ReorderThreshold: reorderThreshold,
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Update atualiza os dados do item
func (i *Item) Update(name, sku string, price decimal.Decimal, stock, reorderThreshold int, active bool) error {
	if name == "" {
		return ErrEmptyName
	}

	if price.IsNegative() {
		return ErrNegativePrice
	}

	if stock < 0 {
		return ErrNegativeStock
	}

	i.Name = name
	i.SKU = sku
	i.Price = price
	i.Stock = stock
	i.ReorderThreshold = reorderThreshold
	i.Active = active
	i.UpdatedAt = time.Now()

	return nil
}

// IsLowStock verifica se o estoque atingiu o limite de reposição
func (i *Item) IsLowStock() bool {
	return i.Stock <= i.ReorderThreshold
}
