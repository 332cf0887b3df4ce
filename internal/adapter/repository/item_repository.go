package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/smart-canteen/internal/domain/item"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Códigos de erro do PostgreSQL tratados pelos repositórios
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Erros específicos do repositório
var (
	ErrItemNotFound = errors.New("item não encontrado")
	ErrItemInUse    = errors.New("item referenciado por vendas não pode ser excluído")
)

// ItemRepository implementa a interface item.Repository
type ItemRepository struct {
	db *pgxpool.Pool
}

// NewItemRepository cria uma nova instância de ItemRepository
func NewItemRepository(db *pgxpool.Pool) item.Repository {
	return &ItemRepository{
		db: db,
	}
}

// Create implementa item.Repository.Create
func (r *ItemRepository) Create(ctx context.Context, i *item.Item) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO items (
			id, name, sku, price, stock, reorder_threshold, active,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)`,
		i.ID, i.Name, i.SKU, i.Price, i.Stock, i.ReorderThreshold, i.Active,
		i.CreatedAt, i.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar item: %w", err)
	}

	return nil
}

// FindByID implementa item.Repository.FindByID
func (r *ItemRepository) FindByID(ctx context.Context, id string) (*item.Item, error) {
	var i item.Item

	err := r.db.QueryRow(ctx,
		`SELECT
			id, name, sku, price, stock, reorder_threshold, active,
			created_at, updated_at
		FROM items WHERE id = $1`,
		id).Scan(
		&i.ID, &i.Name, &i.SKU, &i.Price, &i.Stock, &i.ReorderThreshold,
		&i.Active, &i.CreatedAt, &i.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("erro ao buscar item: %w", err)
	}

	return &i, nil
}

// List implementa item.Repository.List
func (r *ItemRepository) List(ctx context.Context, limit, offset int) ([]*item.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT
			id, name, sku, price, stock, reorder_threshold, active,
			created_at, updated_at
		FROM items
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar itens: %w", err)
	}
	defer rows.Close()

	return r.scanItemRows(rows)
}

// FindLowStock implementa item.Repository.FindLowStock
func (r *ItemRepository) FindLowStock(ctx context.Context) ([]*item.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT
			id, name, sku, price, stock, reorder_threshold, active,
			created_at, updated_at
		FROM items
		WHERE stock <= reorder_threshold
		ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar itens com estoque baixo: %w", err)
	}
	defer rows.Close()

	return r.scanItemRows(rows)
}

// Update implementa item.Repository.Update
func (r *ItemRepository) Update(ctx context.Context, i *item.Item) error {
	result, err := r.db.Exec(ctx,
		`UPDATE items SET
			name = $1, sku = $2, price = $3, stock = $4,
			reorder_threshold = $5, active = $6, updated_at = $7
		WHERE id = $8`,
		i.Name, i.SKU, i.Price, i.Stock, i.ReorderThreshold, i.Active,
		i.UpdatedAt, i.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrItemNotFound
	}

	return nil
}

// Delete implementa item.Repository.Delete. A restrição de chave estrangeira
// em sale_items impede a exclusão de itens já vendidos.
func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM items WHERE id = $1", id)
	if err != nil {
		if isPgErrCode(err, pgForeignKeyViolation) {
			return ErrItemInUse
		}
		return fmt.Errorf("erro ao excluir item: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrItemNotFound
	}

	return nil
}

// Count implementa item.Repository.Count
func (r *ItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM items").Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar itens: %w", err)
	}

	return count, nil
}

// scanItemRows é um método auxiliar para processar resultados de consultas que retornam múltiplos itens
func (r *ItemRepository) scanItemRows(rows pgx.Rows) ([]*item.Item, error) {
	items := make([]*item.Item, 0)

	for rows.Next() {
		var i item.Item

		err := rows.Scan(
			&i.ID, &i.Name, &i.SKU, &i.Price, &i.Stock, &i.ReorderThreshold,
			&i.Active, &i.CreatedAt, &i.UpdatedAt)

		if err != nil {
			return nil, fmt.Errorf("erro ao ler item: %w", err)
		}

		items = append(items, &i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return items, nil
}

// isPgErrCode verifica se o erro corresponde a um código de erro do PostgreSQL
func isPgErrCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
