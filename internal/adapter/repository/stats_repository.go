package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/smart-canteen/internal/domain/stats"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Erros específicos do repositório
var (
	ErrStatsNotFound = errors.New("resumo do painel ainda não calculado")
)

// dashboardStatsID é o identificador fixo da linha única do resumo
const dashboardStatsID = 1

// StatsRepository implementa a interface stats.Repository
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository cria uma nova instância de StatsRepository
func NewStatsRepository(db *pgxpool.Pool) stats.Repository {
	return &StatsRepository{
		db: db,
	}
}

// Find implementa stats.Repository.Find
func (r *StatsRepository) Find(ctx context.Context) (*stats.DashboardStats, error) {
	var ds stats.DashboardStats

	err := r.db.QueryRow(ctx,
		`SELECT
			total_sales, total_revenue, total_customers, total_items_sold,
			avg_sale_value, last_updated
		FROM dashboard_stats WHERE id = $1`,
		dashboardStatsID).Scan(
		&ds.TotalSales, &ds.TotalRevenue, &ds.TotalCustomers,
		&ds.TotalItemsSold, &ds.AvgSaleValue, &ds.LastUpdated)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStatsNotFound
		}
		return nil, fmt.Errorf("erro ao buscar resumo do painel: %w", err)
	}

	return &ds, nil
}

// Refresh implementa stats.Repository.Refresh. Todos os agregados são
// recalculados do zero a partir do estado atual e a linha única é sobrescrita.
func (r *StatsRepository) Refresh(ctx context.Context) (*stats.DashboardStats, error) {
	var (
		totalSales     int
		totalRevenue   decimal.Decimal
		totalCustomers int
		totalItemsSold int
	)

	err := r.db.QueryRow(ctx,
		"SELECT COUNT(*), COALESCE(SUM(total_amount), 0) FROM sales").Scan(
		&totalSales, &totalRevenue)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar vendas: %w", err)
	}

	err = r.db.QueryRow(ctx, "SELECT COUNT(*) FROM customers").Scan(&totalCustomers)
	if err != nil {
		return nil, fmt.Errorf("erro ao contar clientes: %w", err)
	}

	err = r.db.QueryRow(ctx,
		"SELECT COALESCE(SUM(quantity), 0) FROM sale_items").Scan(&totalItemsSold)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar itens vendidos: %w", err)
	}

	ds := stats.Compute(totalSales, totalRevenue, totalCustomers, totalItemsSold)

	_, err = r.db.Exec(ctx,
		`INSERT INTO dashboard_stats (
			id, total_sales, total_revenue, total_customers, total_items_sold,
			avg_sale_value, last_updated
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			total_sales = EXCLUDED.total_sales,
			total_revenue = EXCLUDED.total_revenue,
			total_customers = EXCLUDED.total_customers,
			total_items_sold = EXCLUDED.total_items_sold,
			avg_sale_value = EXCLUDED.avg_sale_value,
			last_updated = EXCLUDED.last_updated`,
		dashboardStatsID, ds.TotalSales, ds.TotalRevenue, ds.TotalCustomers,
		ds.TotalItemsSold, ds.AvgSaleValue, ds.LastUpdated)

	if err != nil {
		return nil, fmt.Errorf("erro ao gravar resumo do painel: %w", err)
	}

	return ds, nil
}
