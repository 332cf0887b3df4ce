package sale

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/smart-canteen/internal/domain/customer"
	"github.com/hugohenrick/smart-canteen/internal/domain/item"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantidade deve ser um inteiro positivo")
	ErrEmptyItemID     = errors.New("item não informado")
)

// Valores padrão de pagamento, compatíveis com o sistema legado
const (
	DefaultPaymentMethod = "cash"
	DefaultPaymentStatus = "paid"
)

// InsufficientStockError indica que o estoque disponível não cobre a quantidade pedida.
// A mensagem mantém o formato legado em inglês, que já é contrato da API.
type InsufficientStockError struct {
	ItemName  string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Not enough stock for %s. Available: %d", e.ItemName, e.Available)
}

// Sale representa uma venda completa
type Sale struct {
	ID             string             `json:"id"`              // ID da Venda
	CustomerID     *string            `json:"customer_id"`     // ID do Cliente (opcional)
	Customer       *customer.Customer `json:"customer,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`      // Data da Venda
	TotalAmount    decimal.Decimal    `json:"total_amount"`    // Valor Total (calculado)
	InvoiceNumber  string             `json:"invoice_number"`  // Número da Fatura (único)
	PaymentMethod  string             `json:"payment_method"`  // Forma de Pagamento
	PaymentStatus  string             `json:"payment_status"`  // Status do Pagamento
	TaxAmount      decimal.Decimal    `json:"tax_amount"`      // Valor de Impostos
	DiscountAmount decimal.Decimal    `json:"discount_amount"` // Valor de Desconto
	Notes          string             `json:"notes"`           // Observações
	Items          []SaleItem         `json:"items"`           // Itens da Venda
}

// SaleItem representa uma linha de venda com preço unitário congelado no momento da venda
type SaleItem struct {
	ID        string          `json:"id"`         // ID da Linha
	SaleID    string          `json:"sale_id"`    // ID da Venda
	ItemID    string          `json:"item_id"`    // ID do Item
	Item      *item.Item      `json:"item,omitempty"`
	Quantity  int             `json:"quantity"`   // Quantidade Vendida
	UnitPrice decimal.Decimal `json:"unit_price"` // Preço Unitário Congelado
}

// LineTotal retorna o total da linha (quantidade x preço unitário)
func (si *SaleItem) LineTotal() decimal.Decimal {
	return si.UnitPrice.Mul(decimal.NewFromInt(int64(si.Quantity)))
}

// Line é o pedido de uma linha na criação da venda. UnitPrice, quando informado e
// diferente de zero, sobrepõe o preço atual do item.
type Line struct {
	ItemID    string
	Quantity  int
	UnitPrice *decimal.Decimal
}

// Validate valida os dados da linha
func (l *Line) Validate() error {
	if l.ItemID == "" {
		return ErrEmptyItemID
	}

	if l.Quantity <= 0 {
		return ErrInvalidQuantity
	}

	return nil
}

// NewSale cria uma nova venda ainda sem linhas persistidas. O número da fatura é
// gerado aqui e pode ser regenerado pelo repositório em caso de colisão.
func NewSale(customerID *string, paymentMethod, paymentStatus string, taxAmount, discountAmount decimal.Decimal, notes string) *Sale {
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}

	if paymentStatus == "" {
		paymentStatus = DefaultPaymentStatus
	}

	return &Sale{
		ID:             uuid.New().String(),
		CustomerID:     customerID,
		CreatedAt:      time.Now(),
		TotalAmount:    decimal.Zero,
		InvoiceNumber:  NewInvoiceNumber(),
		PaymentMethod:  paymentMethod,
		PaymentStatus:  paymentStatus,
		TaxAmount:      taxAmount,
		DiscountAmount: discountAmount,
		Notes:          notes,
	}
}

// NewInvoiceNumber gera um número de fatura no formato legado INV-XXXXXXXX,
// com 8 caracteres hexadecimais de aleatoriedade criptográfica
func NewInvoiceNumber() string {
	u := uuid.New()
	return fmt.Sprintf("INV-%X", u[:4])
}

// Update atualiza os campos de cabeçalho da venda. O total e as linhas são
// imutáveis após a criação.
func (s *Sale) Update(customerID *string, paymentMethod, paymentStatus string, taxAmount, discountAmount decimal.Decimal, notes string) {
	s.CustomerID = customerID

	if paymentMethod != "" {
		s.PaymentMethod = paymentMethod
	}

	if paymentStatus != "" {
		s.PaymentStatus = paymentStatus
	}

	s.TaxAmount = taxAmount
	s.DiscountAmount = discountAmount
	s.Notes = notes
}
