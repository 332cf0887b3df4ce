package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/smart-canteen/internal/adapter/api/dto"
	"github.com/hugohenrick/smart-canteen/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomerRouter(c *CustomerController) *gin.Engine {
	router := gin.New()

	customers := router.Group("/customers")
	customers.POST("", c.Create)
	customers.GET("", c.List)
	customers.GET("/:id", c.Get)
	customers.PUT("/:id", c.Update)
	customers.DELETE("/:id", c.Delete)

	return router
}

func newCustomerFixture(t *testing.T) (*fakeCustomerRepo, *fakeStatsRepo, *gin.Engine) {
	t.Helper()

	customerRepo := newFakeCustomerRepo()
	statsRepo := &fakeStatsRepo{}

	controller := NewCustomerController(customerRepo, statsRepo, logger.NewLogger())
	return customerRepo, statsRepo, newCustomerRouter(controller)
}

func TestCustomerControllerCreate(t *testing.T) {
	customerRepo, statsRepo, router := newCustomerFixture(t)

	req := dto.CustomerRequest{
		Name:    "Maria Souza",
		Email:   "maria@example.com",
		Company: "Cantina Central",
	}

	w := serve(t, router, http.MethodPost, "/customers", req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp dto.CustomerResponse
	decodeBody(t, w, &resp)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Maria Souza", resp.Name)
	assert.Equal(t, "maria@example.com", resp.Email)

	assert.Len(t, customerRepo.customers, 1)
	assert.Equal(t, 1, statsRepo.refreshCalls)
}

func TestCustomerControllerCreateRequiresName(t *testing.T) {
	customerRepo, statsRepo, router := newCustomerFixture(t)

	w := serve(t, router, http.MethodPost, "/customers", dto.CustomerRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, customerRepo.customers)
	assert.Zero(t, statsRepo.refreshCalls)
}

func TestCustomerControllerGetNotFound(t *testing.T) {
	_, _, router := newCustomerFixture(t)

	w := serve(t, router, http.MethodGet, "/customers/nao-existe", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomerControllerUpdate(t *testing.T) {
	customerRepo, statsRepo, router := newCustomerFixture(t)
	c := seedCustomer(t, customerRepo, "Maria Souza")

	req := dto.CustomerRequest{Name: "Maria S. Lima", Phone: "11 99999-0000"}

	w := serve(t, router, http.MethodPut, "/customers/"+c.ID, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.CustomerResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "Maria S. Lima", resp.Name)
	assert.Equal(t, "11 99999-0000", resp.Phone)

	// Atualizar um cliente não altera a contagem do painel
	assert.Zero(t, statsRepo.refreshCalls)
}

func TestCustomerControllerDelete(t *testing.T) {
	customerRepo, statsRepo, router := newCustomerFixture(t)
	c := seedCustomer(t, customerRepo, "Maria Souza")

	w := serve(t, router, http.MethodDelete, "/customers/"+c.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, customerRepo.customers)
	assert.Equal(t, 1, statsRepo.refreshCalls)
}

func TestCustomerControllerDeleteNotFound(t *testing.T) {
	_, statsRepo, router := newCustomerFixture(t)

	w := serve(t, router, http.MethodDelete, "/customers/nao-existe", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, statsRepo.refreshCalls)
}

func TestCustomerControllerList(t *testing.T) {
	customerRepo, _, router := newCustomerFixture(t)
	seedCustomer(t, customerRepo, "Maria Souza")
	seedCustomer(t, customerRepo, "João Pereira")

	w := serve(t, router, http.MethodGet, "/customers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CustomerListResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 1, resp.TotalPages)
}
