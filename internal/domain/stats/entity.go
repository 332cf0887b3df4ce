package stats

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats é o resumo desnormalizado exibido no painel. Existe exatamente
// uma linha lógica, recalculada do zero a cada gatilho.
type DashboardStats struct {
	TotalSales     int             `json:"total_sales"`      // Total de Vendas
	TotalRevenue   decimal.Decimal `json:"total_revenue"`    // Receita Total
	TotalCustomers int             `json:"total_customers"`  // Total de Clientes
	TotalItemsSold int             `json:"total_items_sold"` // Total de Itens Vendidos
	AvgSaleValue   decimal.Decimal `json:"avg_sale_value"`   // Valor Médio por Venda
	LastUpdated    time.Time       `json:"last_updated"`     // Última Atualização
}

// Compute monta o resumo a partir dos agregados atuais. O valor médio é
// receita/vendas quando há vendas, senão zero.
func Compute(totalSales int, totalRevenue decimal.Decimal, totalCustomers, totalItemsSold int) *DashboardStats {
	avg := decimal.Zero
	if totalSales > 0 {
		avg = totalRevenue.Div(decimal.NewFromInt(int64(totalSales))).Round(2)
	}

	return &DashboardStats{
		TotalSales:     totalSales,
		TotalRevenue:   totalRevenue,
		TotalCustomers: totalCustomers,
		TotalItemsSold: totalItemsSold,
		AvgSaleValue:   avg,
		LastUpdated:    time.Now(),
	}
}
