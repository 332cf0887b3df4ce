package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hugohenrick/smart-canteen/internal/domain/customer"
	"github.com/hugohenrick/smart-canteen/internal/domain/item"
	"github.com/hugohenrick/smart-canteen/internal/domain/sale"
	"github.com/hugohenrick/smart-canteen/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// maxInvoiceAttempts limita as tentativas de geração de número de fatura.
// Com 8 caracteres hexadecimais aleatórios a colisão é praticamente impossível.
const maxInvoiceAttempts = 5

// Erros específicos do repositório
var (
	ErrSaleNotFound           = errors.New("venda não encontrada")
	ErrSaleItemNotFound       = errors.New("item da venda não encontrado")
	ErrInvoiceNumberExhausted = errors.New("não foi possível gerar um número de fatura único")
)

// SaleRepository implementa a interface sale.Repository
type SaleRepository struct {
	db *pgxpool.Pool
}

// NewSaleRepository cria uma nova instância de SaleRepository
func NewSaleRepository(db *pgxpool.Pool) sale.Repository {
	return &SaleRepository{
		db: db,
	}
}

// Create implementa sale.Repository.Create. A venda inteira é persistida em uma
// única transação; colisões de número de fatura são repetidas com um novo número.
func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale, lines []sale.Line) error {
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}

	for attempt := 0; attempt < maxInvoiceAttempts; attempt++ {
		err := r.createOnce(ctx, s, lines)
		if err == nil {
			return nil
		}

		if isPgErrCode(err, pgUniqueViolation) {
			// Colisão de fatura: gerar um novo número e repetir a transação
			s.InvoiceNumber = sale.NewInvoiceNumber()
			continue
		}

		return err
	}

	return ErrInvoiceNumberExhausted
}

// createOnce executa uma tentativa da transação de venda: trava cada item na
// ordem enviada, valida o estoque, decrementa, congela o preço unitário e
// grava o total acumulado. Qualquer falha desfaz tudo.
func (r *SaleRepository) createOnce(ctx context.Context, s *sale.Sale, lines []sale.Line) error {
	s.Items = nil
	s.TotalAmount = decimal.Zero

	return database.Transaction(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO sales (
				id, customer_id, created_at, total_amount, invoice_number,
				payment_method, payment_status, tax_amount, discount_amount, notes
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
			)`,
			s.ID, s.CustomerID, s.CreatedAt, s.TotalAmount, s.InvoiceNumber,
			s.PaymentMethod, s.PaymentStatus, s.TaxAmount, s.DiscountAmount,
			s.Notes)
		if err != nil {
			return err
		}

		total := decimal.Zero

		for _, l := range lines {
			var (
				name  string
				price decimal.Decimal
				stock int
			)

			// Travar a linha do item para serializar vendas concorrentes
			err := tx.QueryRow(ctx,
				"SELECT name, price, stock FROM items WHERE id = $1 FOR UPDATE",
				l.ItemID).Scan(&name, &price, &stock)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return ErrSaleItemNotFound
				}
				return fmt.Errorf("erro ao travar item: %w", err)
			}

			// Validação estrita: estoque insuficiente aborta a venda inteira
			if stock < l.Quantity {
				return &sale.InsufficientStockError{ItemName: name, Available: stock}
			}

			_, err = tx.Exec(ctx,
				"UPDATE items SET stock = stock - $1, updated_at = now() WHERE id = $2",
				l.Quantity, l.ItemID)
			if err != nil {
				return fmt.Errorf("erro ao baixar estoque: %w", err)
			}

			// Preço congelado: sobreposição explícita não nula e diferente de
			// zero, senão o preço atual do item
			unitPrice := price
			if l.UnitPrice != nil && !l.UnitPrice.IsZero() {
				unitPrice = *l.UnitPrice
			}

			saleItem := sale.SaleItem{
				ID:        uuid.New().String(),
				SaleID:    s.ID,
				ItemID:    l.ItemID,
				Quantity:  l.Quantity,
				UnitPrice: unitPrice,
			}

			_, err = tx.Exec(ctx,
				`INSERT INTO sale_items (id, sale_id, item_id, quantity, unit_price)
				VALUES ($1, $2, $3, $4, $5)`,
				saleItem.ID, saleItem.SaleID, saleItem.ItemID, saleItem.Quantity,
				saleItem.UnitPrice)
			if err != nil {
				return fmt.Errorf("erro ao criar item da venda: %w", err)
			}

			total = total.Add(saleItem.LineTotal())
			s.Items = append(s.Items, saleItem)
		}

		_, err = tx.Exec(ctx,
			"UPDATE sales SET total_amount = $1 WHERE id = $2",
			total, s.ID)
		if err != nil {
			return fmt.Errorf("erro ao gravar total da venda: %w", err)
		}

		s.TotalAmount = total
		return nil
	})
}

// FindByID implementa sale.Repository.FindByID
func (r *SaleRepository) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	var s sale.Sale

	err := r.db.QueryRow(ctx,
		`SELECT
			id, customer_id, created_at, total_amount, invoice_number,
			payment_method, payment_status, tax_amount, discount_amount, notes
		FROM sales WHERE id = $1`,
		id).Scan(
		&s.ID, &s.CustomerID, &s.CreatedAt, &s.TotalAmount, &s.InvoiceNumber,
		&s.PaymentMethod, &s.PaymentStatus, &s.TaxAmount, &s.DiscountAmount,
		&s.Notes)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao buscar venda: %w", err)
	}

	if err := r.attachDetails(ctx, []*sale.Sale{&s}); err != nil {
		return nil, err
	}

	return &s, nil
}

// List implementa sale.Repository.List
func (r *SaleRepository) List(ctx context.Context, limit, offset int) ([]*sale.Sale, error) {
	rows, err := r.db.Query(ctx,
		`SELECT
			id, customer_id, created_at, total_amount, invoice_number,
			payment_method, payment_status, tax_amount, discount_amount, notes
		FROM sales
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vendas: %w", err)
	}
	defer rows.Close()

	sales := make([]*sale.Sale, 0)

	for rows.Next() {
		var s sale.Sale

		err := rows.Scan(
			&s.ID, &s.CustomerID, &s.CreatedAt, &s.TotalAmount, &s.InvoiceNumber,
			&s.PaymentMethod, &s.PaymentStatus, &s.TaxAmount, &s.DiscountAmount,
			&s.Notes)

		if err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}

		sales = append(sales, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	if err := r.attachDetails(ctx, sales); err != nil {
		return nil, err
	}

	return sales, nil
}

// Update implementa sale.Repository.Update. Apenas os campos de cabeçalho são
// atualizados; o total e as linhas são imutáveis após a criação.
func (r *SaleRepository) Update(ctx context.Context, s *sale.Sale) error {
	result, err := r.db.Exec(ctx,
		`UPDATE sales SET
			customer_id = $1, payment_method = $2, payment_status = $3,
			tax_amount = $4, discount_amount = $5, notes = $6
		WHERE id = $7`,
		s.CustomerID, s.PaymentMethod, s.PaymentStatus, s.TaxAmount,
		s.DiscountAmount, s.Notes, s.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar venda: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSaleNotFound
	}

	return nil
}

// Delete implementa sale.Repository.Delete. As linhas são excluídas em cascata
// pela restrição ON DELETE CASCADE; o estoque não é devolvido.
func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM sales WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir venda: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrSaleNotFound
	}

	return nil
}

// Count implementa sale.Repository.Count
func (r *SaleRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM sales").Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}

	return count, nil
}

// MonthlySummary implementa sale.Repository.MonthlySummary
func (r *SaleRepository) MonthlySummary(ctx context.Context) ([]sale.MonthlyTotal, error) {
	rows, err := r.db.Query(ctx,
		`SELECT date_trunc('month', created_at) AS month, SUM(total_amount) AS total
		FROM sales
		GROUP BY month
		ORDER BY month ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar resumo mensal: %w", err)
	}
	defer rows.Close()

	summary := make([]sale.MonthlyTotal, 0)

	for rows.Next() {
		var mt sale.MonthlyTotal
		if err := rows.Scan(&mt.Month, &mt.Total); err != nil {
			return nil, fmt.Errorf("erro ao ler resumo mensal: %w", err)
		}
		summary = append(summary, mt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return summary, nil
}

// TopItems implementa sale.Repository.TopItems. O desempate por nome mantém a
// ordenação estável.
func (r *SaleRepository) TopItems(ctx context.Context, limit int) ([]sale.TopItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT i.name, SUM(si.quantity) AS qty
		FROM sale_items si
		JOIN items i ON i.id = si.item_id
		GROUP BY i.name
		ORDER BY qty DESC, i.name ASC
		LIMIT $1`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar itens mais vendidos: %w", err)
	}
	defer rows.Close()

	top := make([]sale.TopItem, 0)

	for rows.Next() {
		var ti sale.TopItem
		if err := rows.Scan(&ti.ItemName, &ti.Quantity); err != nil {
			return nil, fmt.Errorf("erro ao ler itens mais vendidos: %w", err)
		}
		top = append(top, ti)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return top, nil
}

// attachDetails carrega o cliente e as linhas (com detalhe do item) das vendas
// informadas, evitando uma consulta por venda na listagem
func (r *SaleRepository) attachDetails(ctx context.Context, sales []*sale.Sale) error {
	if len(sales) == 0 {
		return nil
	}

	byID := make(map[string]*sale.Sale, len(sales))
	saleIDs := make([]string, 0, len(sales))
	customerIDs := make([]string, 0, len(sales))

	for _, s := range sales {
		s.Items = make([]sale.SaleItem, 0)
		byID[s.ID] = s
		saleIDs = append(saleIDs, s.ID)
		if s.CustomerID != nil {
			customerIDs = append(customerIDs, *s.CustomerID)
		}
	}

	if len(customerIDs) > 0 {
		rows, err := r.db.Query(ctx,
			`SELECT
				id, name, contact_person, phone, email, company, address, notes,
				created_at, updated_at
			FROM customers WHERE id = ANY($1)`,
			customerIDs)
		if err != nil {
			return fmt.Errorf("erro ao buscar clientes das vendas: %w", err)
		}
		defer rows.Close()

		customers := make(map[string]*customer.Customer)

		for rows.Next() {
			var c customer.Customer
			err := rows.Scan(
				&c.ID, &c.Name, &c.ContactPerson, &c.Phone, &c.Email, &c.Company,
				&c.Address, &c.Notes, &c.CreatedAt, &c.UpdatedAt)
			if err != nil {
				return fmt.Errorf("erro ao ler cliente da venda: %w", err)
			}
			customers[c.ID] = &c
		}

		if err := rows.Err(); err != nil {
			return fmt.Errorf("erro ao ler resultados: %w", err)
		}

		for _, s := range sales {
			if s.CustomerID != nil {
				s.Customer = customers[*s.CustomerID]
			}
		}
	}

	rows, err := r.db.Query(ctx,
		`SELECT
			si.id, si.sale_id, si.item_id, si.quantity, si.unit_price,
			i.id, i.name, i.sku, i.price, i.stock, i.reorder_threshold,
			i.active, i.created_at, i.updated_at
		FROM sale_items si
		JOIN items i ON i.id = si.item_id
		WHERE si.sale_id = ANY($1)
		ORDER BY si.id`,
		saleIDs)
	if err != nil {
		return fmt.Errorf("erro ao buscar itens das vendas: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			si sale.SaleItem
			i  item.Item
		)

		err := rows.Scan(
			&si.ID, &si.SaleID, &si.ItemID, &si.Quantity, &si.UnitPrice,
			&i.ID, &i.Name, &i.SKU, &i.Price, &i.Stock, &i.ReorderThreshold,
			&i.Active, &i.CreatedAt, &i.UpdatedAt)
		if err != nil {
			return fmt.Errorf("erro ao ler item da venda: %w", err)
		}

		si.Item = &i

		if s, ok := byID[si.SaleID]; ok {
			s.Items = append(s.Items, si)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return nil
}
