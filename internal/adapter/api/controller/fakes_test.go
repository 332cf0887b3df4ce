package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hugohenrick/smart-canteen/internal/adapter/repository"
	"github.com/hugohenrick/smart-canteen/internal/domain/customer"
	"github.com/hugohenrick/smart-canteen/internal/domain/item"
	"github.com/hugohenrick/smart-canteen/internal/domain/sale"
	"github.com/hugohenrick/smart-canteen/internal/domain/stats"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// serve executa uma requisição contra o router e retorna a resposta gravada
func serve(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// fakeCustomerRepo mantém os clientes em memória
type fakeCustomerRepo struct {
	customers map[string]*customer.Customer
	err       error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*customer.Customer)}
}

func (r *fakeCustomerRepo) Create(ctx context.Context, c *customer.Customer) error {
	if r.err != nil {
		return r.err
	}
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.customers[id]
	if !ok {
		return nil, repository.ErrCustomerNotFound
	}
	return c, nil
}

func (r *fakeCustomerRepo) List(ctx context.Context, limit, offset int) ([]*customer.Customer, error) {
	if r.err != nil {
		return nil, r.err
	}
	customers := make([]*customer.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		customers = append(customers, c)
	}
	return customers, nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, c *customer.Customer) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.customers[c.ID]; !ok {
		return repository.ErrCustomerNotFound
	}
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) Delete(ctx context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.customers[id]; !ok {
		return repository.ErrCustomerNotFound
	}
	delete(r.customers, id)
	return nil
}

func (r *fakeCustomerRepo) Count(ctx context.Context) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	return len(r.customers), nil
}

func (r *fakeCustomerRepo) Exists(ctx context.Context, id string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.customers[id]
	return ok, nil
}

// fakeItemRepo mantém os itens em memória
type fakeItemRepo struct {
	items     map[string]*item.Item
	deleteErr error
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[string]*item.Item)}
}

func (r *fakeItemRepo) Create(ctx context.Context, i *item.Item) error {
	r.items[i.ID] = i
	return nil
}

func (r *fakeItemRepo) FindByID(ctx context.Context, id string) (*item.Item, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, repository.ErrItemNotFound
	}
	return i, nil
}

func (r *fakeItemRepo) List(ctx context.Context, limit, offset int) ([]*item.Item, error) {
	items := make([]*item.Item, 0, len(r.items))
	for _, i := range r.items {
		items = append(items, i)
	}
	return items, nil
}

func (r *fakeItemRepo) FindLowStock(ctx context.Context) ([]*item.Item, error) {
	var items []*item.Item
	for _, i := range r.items {
		if i.IsLowStock() {
			items = append(items, i)
		}
	}
	return items, nil
}

func (r *fakeItemRepo) Update(ctx context.Context, i *item.Item) error {
	if _, ok := r.items[i.ID]; !ok {
		return repository.ErrItemNotFound
	}
	r.items[i.ID] = i
	return nil
}

func (r *fakeItemRepo) Delete(ctx context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.items[id]; !ok {
		return repository.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepo) Count(ctx context.Context) (int, error) {
	return len(r.items), nil
}

// fakeSaleRepo mantém as vendas em memória. Create preenche as linhas e o total
// como o repositório real faria, usando um preço fixo quando a linha não informa
// o preço unitário.
type fakeSaleRepo struct {
	sales     map[string]*sale.Sale
	createErr error
	monthly   []sale.MonthlyTotal
	top       []sale.TopItem
	lastLimit int
}

var fakeItemPrice = decimal.NewFromFloat(10.00)

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[string]*sale.Sale)}
}

func (r *fakeSaleRepo) Create(ctx context.Context, s *sale.Sale, lines []sale.Line) error {
	for i := range lines {
		if err := lines[i].Validate(); err != nil {
			return err
		}
	}

	if r.createErr != nil {
		return r.createErr
	}

	total := decimal.Zero
	for _, l := range lines {
		unitPrice := fakeItemPrice
		if l.UnitPrice != nil && !l.UnitPrice.IsZero() {
			unitPrice = *l.UnitPrice
		}

		s.Items = append(s.Items, sale.SaleItem{
			ID:        uuid.New().String(),
			SaleID:    s.ID,
			ItemID:    l.ItemID,
			Quantity:  l.Quantity,
			UnitPrice: unitPrice,
		})
		total = total.Add(unitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	s.TotalAmount = total
	r.sales[s.ID] = s
	return nil
}

func (r *fakeSaleRepo) FindByID(ctx context.Context, id string) (*sale.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, repository.ErrSaleNotFound
	}
	return s, nil
}

func (r *fakeSaleRepo) List(ctx context.Context, limit, offset int) ([]*sale.Sale, error) {
	sales := make([]*sale.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		sales = append(sales, s)
	}
	return sales, nil
}

func (r *fakeSaleRepo) Update(ctx context.Context, s *sale.Sale) error {
	if _, ok := r.sales[s.ID]; !ok {
		return repository.ErrSaleNotFound
	}
	r.sales[s.ID] = s
	return nil
}

func (r *fakeSaleRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.sales[id]; !ok {
		return repository.ErrSaleNotFound
	}
	delete(r.sales, id)
	return nil
}

func (r *fakeSaleRepo) Count(ctx context.Context) (int, error) {
	return len(r.sales), nil
}

func (r *fakeSaleRepo) MonthlySummary(ctx context.Context) ([]sale.MonthlyTotal, error) {
	return r.monthly, nil
}

func (r *fakeSaleRepo) TopItems(ctx context.Context, limit int) ([]sale.TopItem, error) {
	r.lastLimit = limit
	return r.top, nil
}

// fakeStatsRepo registra cada chamada a Refresh para que os testes verifiquem
// quais escritas recalculam o resumo do painel
type fakeStatsRepo struct {
	stats        *stats.DashboardStats
	findErr      error
	refreshErr   error
	refreshCalls int
}

func (r *fakeStatsRepo) Find(ctx context.Context) (*stats.DashboardStats, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if r.stats == nil {
		return nil, repository.ErrStatsNotFound
	}
	return r.stats, nil
}

func (r *fakeStatsRepo) Refresh(ctx context.Context) (*stats.DashboardStats, error) {
	r.refreshCalls++
	if r.refreshErr != nil {
		return nil, r.refreshErr
	}
	r.stats = stats.Compute(1, decimal.NewFromFloat(30.00), 1, 3)
	return r.stats, nil
}
