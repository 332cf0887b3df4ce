package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/smart-canteen/internal/domain/customer"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Erros específicos do repositório
var (
	ErrCustomerNotFound      = errors.New("cliente não encontrado")
	ErrCustomerDatabaseError = errors.New("erro de banco de dados")
)

// CustomerRepository implementa a interface customer.Repository
type CustomerRepository struct {
	db *pgxpool.Pool
}

// NewCustomerRepository cria uma nova instância de CustomerRepository
func NewCustomerRepository(db *pgxpool.Pool) customer.Repository {
	return &CustomerRepository{
		db: db,
	}
}

// Create implementa customer.Repository.Create
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO customers (
			id, name, contact_person, phone, email, company, address, notes,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)`,
		c.ID, c.Name, c.ContactPerson, c.Phone, c.Email, c.Company,
		c.Address, c.Notes, c.CreatedAt, c.UpdatedAt)

	if err != nil {
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return nil
}

// FindByID implementa customer.Repository.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	var c customer.Customer

	err := r.db.QueryRow(ctx,
		`SELECT
			id, name, contact_person, phone, email, company, address, notes,
			created_at, updated_at
		FROM customers WHERE id = $1`,
		id).Scan(
		&c.ID, &c.Name, &c.ContactPerson, &c.Phone, &c.Email, &c.Company,
		&c.Address, &c.Notes, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}

	return &c, nil
}

// List implementa customer.Repository.List
func (r *CustomerRepository) List(ctx context.Context, limit, offset int) ([]*customer.Customer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT
			id, name, contact_person, phone, email, company, address, notes,
			created_at, updated_at
		FROM customers
		ORDER BY name ASC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	return r.scanCustomerRows(rows)
}

// Update implementa customer.Repository.Update
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	result, err := r.db.Exec(ctx,
		`UPDATE customers SET
			name = $1, contact_person = $2, phone = $3, email = $4,
			company = $5, address = $6, notes = $7, updated_at = $8
		WHERE id = $9`,
		c.Name, c.ContactPerson, c.Phone, c.Email, c.Company, c.Address,
		c.Notes, c.UpdatedAt, c.ID)

	if err != nil {
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// Delete implementa customer.Repository.Delete. As vendas do cliente
// permanecem, com a referência anulada pela restrição ON DELETE SET NULL.
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("erro ao excluir cliente: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}

	return nil
}

// Count implementa customer.Repository.Count
func (r *CustomerRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM customers").Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}

	return count, nil
}

// Exists implementa customer.Repository.Exists
func (r *CustomerRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)",
		id).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("erro ao verificar existência do cliente: %w", err)
	}

	return exists, nil
}

// scanCustomerRows é um método auxiliar para processar resultados de consultas que retornam múltiplos clientes
func (r *CustomerRepository) scanCustomerRows(rows pgx.Rows) ([]*customer.Customer, error) {
	customers := make([]*customer.Customer, 0)

	for rows.Next() {
		var c customer.Customer

		err := rows.Scan(
			&c.ID, &c.Name, &c.ContactPerson, &c.Phone, &c.Email, &c.Company,
			&c.Address, &c.Notes, &c.CreatedAt, &c.UpdatedAt)

		if err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}

		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler resultados: %w", err)
	}

	return customers, nil
}
