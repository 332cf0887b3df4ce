package stats

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	ds := Compute(4, decimal.NewFromFloat(100.00), 7, 12)

	assert.Equal(t, 4, ds.TotalSales)
	assert.True(t, ds.TotalRevenue.Equal(decimal.NewFromFloat(100.00)))
	assert.Equal(t, 7, ds.TotalCustomers)
	assert.Equal(t, 12, ds.TotalItemsSold)
	assert.True(t, ds.AvgSaleValue.Equal(decimal.NewFromFloat(25.00)))
	assert.False(t, ds.LastUpdated.IsZero())
}

func TestComputeWithoutSales(t *testing.T) {
	ds := Compute(0, decimal.Zero, 3, 0)

	assert.Equal(t, 0, ds.TotalSales)
	assert.True(t, ds.AvgSaleValue.IsZero())
}

func TestComputeRoundsAverage(t *testing.T) {
	// 10 / 3 = 3.3333... arredondado para duas casas
	ds := Compute(3, decimal.NewFromInt(10), 0, 0)

	assert.True(t, ds.AvgSaleValue.Equal(decimal.NewFromFloat(3.33)))
}
