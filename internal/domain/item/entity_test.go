package item

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	i, err := NewItem("Café", "SKU-001", decimal.NewFromFloat(5.50), 10, 3)
	require.NoError(t, err)

	assert.NotEmpty(t, i.ID)
	assert.Equal(t, "Café", i.Name)
	assert.True(t, i.Price.Equal(decimal.NewFromFloat(5.50)))
	assert.Equal(t, 10, i.Stock)
	assert.Equal(t, 3, i.ReorderThreshold)
	assert.True(t, i.Active)
}

func TestNewItemDefaultsReorderThreshold(t *testing.T) {
	i, err := NewItem("Café", "", decimal.NewFromInt(5), 10, 0)
	require.NoError(t, err)

	assert.Equal(t, DefaultReorderThreshold, i.ReorderThreshold)
}

func TestNewItemValidation(t *testing.T) {
	_, err := NewItem("", "", decimal.NewFromInt(5), 10, 5)
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewItem("Café", "", decimal.NewFromInt(-1), 10, 5)
	assert.ErrorIs(t, err, ErrNegativePrice)

	_, err = NewItem("Café", "", decimal.NewFromInt(5), -1, 5)
	assert.ErrorIs(t, err, ErrNegativeStock)
}

func TestIsLowStock(t *testing.T) {
	i, err := NewItem("Café", "", decimal.NewFromInt(5), 10, 5)
	require.NoError(t, err)

	assert.False(t, i.IsLowStock())

	i.Stock = 5
	assert.True(t, i.IsLowStock())

	i.Stock = 0
	assert.True(t, i.IsLowStock())
}
