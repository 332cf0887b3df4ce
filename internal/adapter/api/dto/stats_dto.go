package dto

import (
	"time"

	"github.com/hugohenrick/smart-canteen/internal/domain/stats"
	"github.com/shopspring/decimal"
)

// DashboardStatsResponse representa a resposta do resumo do painel
type DashboardStatsResponse struct {
	TotalSales     int             `json:"total_sales"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalCustomers int             `json:"total_customers"`
	TotalItemsSold int             `json:"total_items_sold"`
	AvgSaleValue   decimal.Decimal `json:"avg_sale_value"`
	LastUpdated    time.Time       `json:"last_updated"`
}

// ToDashboardStatsResponse converte o resumo do domínio para DTO
func ToDashboardStatsResponse(ds *stats.DashboardStats) *DashboardStatsResponse {
	return &DashboardStatsResponse{
		TotalSales:     ds.TotalSales,
		TotalRevenue:   ds.TotalRevenue,
		TotalCustomers: ds.TotalCustomers,
		TotalItemsSold: ds.TotalItemsSold,
		AvgSaleValue:   ds.AvgSaleValue,
		LastUpdated:    ds.LastUpdated,
	}
}
