package stats

import (
	"context"
)

// Repository define a interface para o resumo do painel
type Repository interface {
	// Find retorna o resumo atual, se já existir
	Find(ctx context.Context) (*DashboardStats, error)

	// Refresh recalcula todos os agregados do zero e sobrescreve a linha única,
	// criando-a se necessário. Retorna o resumo recém-calculado.
	Refresh(ctx context.Context) (*DashboardStats, error)
}
