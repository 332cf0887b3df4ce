package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/smart-canteen/internal/adapter/api/dto"
	"github.com/hugohenrick/smart-canteen/internal/adapter/repository"
	customerdomain "github.com/hugohenrick/smart-canteen/internal/domain/customer"
	statsdomain "github.com/hugohenrick/smart-canteen/internal/domain/stats"
	"github.com/hugohenrick/smart-canteen/pkg/logger"
)

// CustomerController gerencia as requisições relacionadas a clientes
type CustomerController struct {
	customerRepo customerdomain.Repository
	statsRepo    statsdomain.Repository
	logger       logger.Logger
}

// NewCustomerController cria uma nova instância de CustomerController
func NewCustomerController(customerRepo customerdomain.Repository, statsRepo statsdomain.Repository, logger logger.Logger) *CustomerController {
	return &CustomerController{
		customerRepo: customerRepo,
		statsRepo:    statsRepo,
		logger:       logger,
	}
}

// Create cria um novo cliente
// @Summary Criar cliente
// @Description Cria um novo cliente no sistema
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CustomerRequest true "Dados do cliente"
// @Success 201 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [post]
func (c *CustomerController) Create(ctx *gin.Context) {
	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	customer, err := customerdomain.NewCustomer(req.Name)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar cliente", err.Error()))
		return
	}

	if err := customer.Update(req.Name, req.ContactPerson, req.Phone, req.Email, req.Company, req.Address, req.Notes); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar cliente", err.Error()))
		return
	}

	if err := c.customerRepo.Create(ctx, customer); err != nil {
		c.logger.Error("erro ao criar cliente no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar cliente", err.Error()))
		return
	}

	c.refreshStats(ctx)

	ctx.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// Get retorna um cliente pelo ID
// @Summary Buscar cliente
// @Description Retorna os dados de um cliente pelo ID
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [get]
func (c *CustomerController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	customer, err := c.customerRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrCustomerNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// List retorna a lista de clientes
// @Summary Listar clientes
// @Description Retorna a lista de clientes ordenada por nome, paginada
// @Tags customers
// @Accept json
// @Produce json
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.CustomerListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers [get]
func (c *CustomerController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	pagination := dto.GetPagination(page, size)

	customers, err := c.customerRepo.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar clientes", err.Error()))
		return
	}

	total, err := c.customerRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar clientes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerListResponse(customers, total, pagination.Page, pagination.PageSize))
}

// Update atualiza um cliente
// @Summary Atualizar cliente
// @Description Atualiza os dados de um cliente
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "ID do cliente"
// @Param customer body dto.CustomerRequest true "Dados do cliente"
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [put]
func (c *CustomerController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	customer, err := c.customerRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrCustomerNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
		return
	}

	if err := customer.Update(req.Name, req.ContactPerson, req.Phone, req.Email, req.Company, req.Address, req.Notes); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar cliente", err.Error()))
		return
	}

	if err := c.customerRepo.Update(ctx, customer); err != nil {
		c.logger.Error("erro ao atualizar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// Delete remove um cliente
// @Summary Excluir cliente
// @Description Remove um cliente; as vendas associadas sobrevivem com referência nula
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "ID do cliente"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /customers/{id} [delete]
func (c *CustomerController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.customerRepo.Delete(ctx, id); err != nil {
		if err == repository.ErrCustomerNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir cliente", err.Error()))
		return
	}

	c.refreshStats(ctx)

	ctx.Status(http.StatusNoContent)
}

// refreshStats recalcula o resumo do painel após uma escrita. Falhas são
// registradas e nunca propagadas: o cliente já foi persistido ou removido.
func (c *CustomerController) refreshStats(ctx *gin.Context) {
	if _, err := c.statsRepo.Refresh(ctx); err != nil {
		c.logger.Error("erro ao atualizar resumo do painel", "error", err)
	}
}
