package dto

import (
	"time"

	"github.com/hugohenrick/smart-canteen/internal/domain/sale"
	"github.com/shopspring/decimal"
)

// SaleItemRequest representa uma linha na criação da venda. O preço unitário,
// quando informado e diferente de zero, sobrepõe o preço atual do item.
type SaleItemRequest struct {
	Item      string           `json:"item" binding:"required"`
	Quantity  int              `json:"quantity" binding:"required,gt=0"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// SaleRequest representa a requisição de criação de venda
type SaleRequest struct {
	Customer       *string           `json:"customer"`
	PaymentMethod  string            `json:"payment_method"`
	PaymentStatus  string            `json:"payment_status"`
	TaxAmount      decimal.Decimal   `json:"tax_amount"`
	DiscountAmount decimal.Decimal   `json:"discount_amount"`
	Notes          string            `json:"notes"`
	Items          []SaleItemRequest `json:"items" binding:"required,dive"`
}

// SaleUpdateRequest representa a atualização do cabeçalho de uma venda.
// O total e as linhas são imutáveis após a criação.
type SaleUpdateRequest struct {
	Customer       *string         `json:"customer"`
	PaymentMethod  string          `json:"payment_method"`
	PaymentStatus  string          `json:"payment_status"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Notes          string          `json:"notes"`
}

// SaleItemResponse representa a resposta de uma linha de venda
type SaleItemResponse struct {
	ID         string          `json:"id"`
	Item       string          `json:"item"`
	ItemDetail *ItemResponse   `json:"item_detail,omitempty"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
}

// SaleResponse representa a resposta de venda com cliente e itens expandidos
type SaleResponse struct {
	ID             string             `json:"id"`
	InvoiceNumber  string             `json:"invoice_number"`
	Customer       *string            `json:"customer"`
	CustomerDetail *CustomerResponse  `json:"customer_detail,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	PaymentMethod  string             `json:"payment_method"`
	PaymentStatus  string             `json:"payment_status"`
	TaxAmount      decimal.Decimal    `json:"tax_amount"`
	DiscountAmount decimal.Decimal    `json:"discount_amount"`
	Notes          string             `json:"notes"`
	Items          []SaleItemResponse `json:"items"`
	TotalAmount    decimal.Decimal    `json:"total_amount"`
}

// SaleListResponse representa a resposta de lista de vendas
type SaleListResponse struct {
	Items      []SaleResponse `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Size       int            `json:"size"`
	TotalPages int            `json:"total_pages"`
}

// MonthlyTotalResponse representa o total vendido em um mês calendário
type MonthlyTotalResponse struct {
	Month time.Time       `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// TopItemResponse representa um item no ranking de mais vendidos
type TopItemResponse struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"qty"`
}

// ToLines converte as linhas da requisição para o domínio
func (r *SaleRequest) ToLines() []sale.Line {
	lines := make([]sale.Line, len(r.Items))
	for i, it := range r.Items {
		lines[i] = sale.Line{
			ItemID:    it.Item,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
	}
	return lines
}

// ToSaleResponse converte uma venda do domínio para DTO
func ToSaleResponse(s *sale.Sale) *SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, si := range s.Items {
		items[i] = SaleItemResponse{
			ID:        si.ID,
			Item:      si.ItemID,
			Quantity:  si.Quantity,
			UnitPrice: si.UnitPrice,
		}
		if si.Item != nil {
			items[i].ItemDetail = ToItemResponse(si.Item)
		}
	}

	resp := &SaleResponse{
		ID:             s.ID,
		InvoiceNumber:  s.InvoiceNumber,
		Customer:       s.CustomerID,
		CreatedAt:      s.CreatedAt,
		PaymentMethod:  s.PaymentMethod,
		PaymentStatus:  s.PaymentStatus,
		TaxAmount:      s.TaxAmount,
		DiscountAmount: s.DiscountAmount,
		Notes:          s.Notes,
		Items:          items,
		TotalAmount:    s.TotalAmount,
	}

	if s.Customer != nil {
		resp.CustomerDetail = ToCustomerResponse(s.Customer)
	}

	return resp
}

// ToSaleListResponse converte uma lista paginada de vendas do domínio para DTO
func ToSaleListResponse(sales []*sale.Sale, total, page, size int) *SaleListResponse {
	items := make([]SaleResponse, len(sales))
	for i, s := range sales {
		items[i] = *ToSaleResponse(s)
	}

	return &SaleListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}

// ToMonthlyTotalResponses converte o resumo mensal do domínio para DTOs
func ToMonthlyTotalResponses(summary []sale.MonthlyTotal) []MonthlyTotalResponse {
	responses := make([]MonthlyTotalResponse, len(summary))
	for i, mt := range summary {
		responses[i] = MonthlyTotalResponse{
			Month: mt.Month,
			Total: mt.Total,
		}
	}
	return responses
}

// ToTopItemResponses converte o ranking de itens do domínio para DTOs
func ToTopItemResponses(top []sale.TopItem) []TopItemResponse {
	responses := make([]TopItemResponse, len(top))
	for i, ti := range top {
		responses[i] = TopItemResponse{
			ItemName: ti.ItemName,
			Quantity: ti.Quantity,
		}
	}
	return responses
}
