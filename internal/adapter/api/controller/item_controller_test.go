package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/smart-canteen/internal/adapter/api/dto"
	"github.com/hugohenrick/smart-canteen/internal/adapter/repository"
	"github.com/hugohenrick/smart-canteen/internal/domain/item"
	"github.com/hugohenrick/smart-canteen/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItemRouter(c *ItemController) *gin.Engine {
	router := gin.New()

	items := router.Group("/items")
	items.GET("/low_stock", c.LowStock)
	items.POST("", c.Create)
	items.GET("", c.List)
	items.GET("/:id", c.Get)
	items.PUT("/:id", c.Update)
	items.DELETE("/:id", c.Delete)

	return router
}

func newItemFixture(t *testing.T) (*fakeItemRepo, *gin.Engine) {
	t.Helper()

	itemRepo := newFakeItemRepo()
	controller := NewItemController(itemRepo, logger.NewLogger())
	return itemRepo, newItemRouter(controller)
}

func seedItem(t *testing.T, repo *fakeItemRepo, name string, stock, reorderThreshold int) *item.Item {
	t.Helper()

	i, err := item.NewItem(name, "", decimal.NewFromFloat(5.00), stock, reorderThreshold)
	require.NoError(t, err)
	repo.items[i.ID] = i
	return i
}

func TestItemControllerCreate(t *testing.T) {
	itemRepo, router := newItemFixture(t)

	req := dto.ItemRequest{
		Name:             "Café",
		SKU:              "SKU-001",
		Price:            decimal.NewFromFloat(5.50),
		Stock:            10,
		ReorderThreshold: 3,
	}

	w := serve(t, router, http.MethodPost, "/items", req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp dto.ItemResponse
	decodeBody(t, w, &resp)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Café", resp.Name)
	assert.True(t, resp.Price.Equal(decimal.NewFromFloat(5.50)))
	assert.True(t, resp.Active)
	assert.False(t, resp.LowStock)

	assert.Len(t, itemRepo.items, 1)
}

func TestItemControllerCreateInactive(t *testing.T) {
	_, router := newItemFixture(t)

	inactive := false
	req := dto.ItemRequest{Name: "Café", Price: decimal.NewFromFloat(5.50), Active: &inactive}

	w := serve(t, router, http.MethodPost, "/items", req)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ItemResponse
	decodeBody(t, w, &resp)
	assert.False(t, resp.Active)
}

func TestItemControllerCreateNegativePrice(t *testing.T) {
	itemRepo, router := newItemFixture(t)

	req := dto.ItemRequest{Name: "Café", Price: decimal.NewFromFloat(-1)}

	w := serve(t, router, http.MethodPost, "/items", req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, itemRepo.items)
}

func TestItemControllerGetNotFound(t *testing.T) {
	_, router := newItemFixture(t)

	w := serve(t, router, http.MethodGet, "/items/nao-existe", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestItemControllerLowStock(t *testing.T) {
	itemRepo, router := newItemFixture(t)
	seedItem(t, itemRepo, "Café", 10, 5)
	low := seedItem(t, itemRepo, "Pão de queijo", 3, 5)

	w := serve(t, router, http.MethodGet, "/items/low_stock", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ItemResponse
	decodeBody(t, w, &resp)
	require.Len(t, resp, 1)
	assert.Equal(t, low.ID, resp[0].ID)
	assert.True(t, resp[0].LowStock)
}

func TestItemControllerUpdate(t *testing.T) {
	itemRepo, router := newItemFixture(t)
	i := seedItem(t, itemRepo, "Café", 10, 5)

	req := dto.ItemRequest{Name: "Café Especial", Price: decimal.NewFromFloat(7.00), Stock: 8, ReorderThreshold: 5}

	w := serve(t, router, http.MethodPut, "/items/"+i.ID, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.ItemResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "Café Especial", resp.Name)
	assert.True(t, resp.Price.Equal(decimal.NewFromFloat(7.00)))
	assert.Equal(t, 8, resp.Stock)
}

func TestItemControllerDelete(t *testing.T) {
	itemRepo, router := newItemFixture(t)
	i := seedItem(t, itemRepo, "Café", 10, 5)

	w := serve(t, router, http.MethodDelete, "/items/"+i.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, itemRepo.items)
}

func TestItemControllerDeleteInUse(t *testing.T) {
	itemRepo, router := newItemFixture(t)
	i := seedItem(t, itemRepo, "Café", 10, 5)
	itemRepo.deleteErr = repository.ErrItemInUse

	w := serve(t, router, http.MethodDelete, "/items/"+i.ID, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Len(t, itemRepo.items, 1)
}

func TestItemControllerDeleteNotFound(t *testing.T) {
	_, router := newItemFixture(t)

	w := serve(t, router, http.MethodDelete, "/items/nao-existe", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
