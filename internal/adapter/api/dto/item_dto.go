package dto

import (
	"time"

	"github.com/hugohenrick/smart-canteen/internal/domain/item"
	"github.com/shopspring/decimal"
)

// ItemRequest representa a requisição de item de estoque
type ItemRequest struct {
	Name             string          `json:"name" binding:"required"`
	SKU              string          `json:"sku"`
	Price            decimal.Decimal `json:"price"`
	Stock            int             `json:"stock"`
	ReorderThreshold int             `json:"reorder_threshold"`
	Active           *bool           `json:"active"`
}

// ItemResponse representa a resposta de item de estoque
type ItemResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	SKU              string          `json:"sku"`
	Price            decimal.Decimal `json:"price"`
	Stock            int             `json:"stock"`
	ReorderThreshold int             `json:"reorder_threshold"`
	Active           bool            `json:"active"`
	LowStock         bool            `json:"low_stock"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ItemListResponse representa a resposta de lista de itens
type ItemListResponse struct {
	Items      []ItemResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"total_pages"`
}

// ToItemResponse converte um item do domínio para DTO
func ToItemResponse(i *item.Item) *ItemResponse {
	return &ItemResponse{
		ID:               i.ID,
		Name:             i.Name,
		SKU:              i.SKU,
		Price:            i.Price,
		Stock:            i.Stock,
		ReorderThreshold: i.ReorderThreshold,
		Active:           i.Active,
		LowStock:         i.IsLowStock(),
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
}

// ToItemResponses converte uma lista de itens do domínio para DTOs
func ToItemResponses(items []*item.Item) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i, it := range items {
		responses[i] = *ToItemResponse(it)
	}
	return responses
}

// ToItemListResponse converte uma lista paginada de itens do domínio para DTO
func ToItemListResponse(items []*item.Item, total, page, size int) *ItemListResponse {
	return &ItemListResponse{
		Items:      ToItemResponses(items),
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}
