package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/smart-canteen/internal/adapter/api/dto"
	"github.com/hugohenrick/smart-canteen/internal/adapter/repository"
	customerdomain "github.com/hugohenrick/smart-canteen/internal/domain/customer"
	saledomain "github.com/hugohenrick/smart-canteen/internal/domain/sale"
	statsdomain "github.com/hugohenrick/smart-canteen/internal/domain/stats"
	"github.com/hugohenrick/smart-canteen/pkg/logger"
)

// topItemsLimit é o tamanho do ranking de itens mais vendidos
const topItemsLimit = 10

// SaleController gerencia as requisições relacionadas a vendas e relatórios
type SaleController struct {
	saleRepo     saledomain.Repository
	customerRepo customerdomain.Repository
	statsRepo    statsdomain.Repository
	logger       logger.Logger
}

// NewSaleController cria uma nova instância de SaleController
func NewSaleController(saleRepo saledomain.Repository, customerRepo customerdomain.Repository, statsRepo statsdomain.Repository, logger logger.Logger) *SaleController {
	return &SaleController{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
		statsRepo:    statsRepo,
		logger:       logger,
	}
}

// Create cria uma nova venda
// @Summary Criar venda
// @Description Cria uma venda com suas linhas em uma única transação: valida e baixa o estoque, congela o preço unitário e calcula o total
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.SaleRequest true "Dados da venda"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [post]
func (c *SaleController) Create(ctx *gin.Context) {
	var req dto.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if req.Customer != nil {
		exists, err := c.customerRepo.Exists(ctx, *req.Customer)
		if err != nil {
			c.logger.Error("erro ao verificar cliente da venda", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao verificar cliente", err.Error()))
			return
		}
		if !exists {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", ""))
			return
		}
	}

	sale := saledomain.NewSale(req.Customer, req.PaymentMethod, req.PaymentStatus, req.TaxAmount, req.DiscountAmount, req.Notes)

	if err := c.saleRepo.Create(ctx, sale, req.ToLines()); err != nil {
		var stockErr *saledomain.InsufficientStockError

		switch {
		case errors.As(err, &stockErr):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, stockErr.Error(), ""))
		case errors.Is(err, saledomain.ErrInvalidQuantity), errors.Is(err, saledomain.ErrEmptyItemID):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		case errors.Is(err, repository.ErrSaleItemNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "item não encontrado", err.Error()))
		default:
			c.logger.Error("erro ao criar venda", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao criar venda", err.Error()))
		}
		return
	}

	// O resumo é atualizado fora da transação: a venda já está confirmada
	c.refreshStats(ctx)

	full, err := c.saleRepo.FindByID(ctx, sale.ID)
	if err != nil {
		// A venda foi persistida; responder sem os detalhes expandidos
		c.logger.Error("erro ao carregar venda criada", "error", err)
		ctx.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSaleResponse(full))
}

// Get retorna uma venda pelo ID
// @Summary Buscar venda
// @Description Retorna uma venda com cliente e itens expandidos
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [get]
func (c *SaleController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	sale, err := c.saleRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrSaleNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// Invoice retorna a fatura completa de uma venda
// @Summary Buscar fatura
// @Description Retorna a venda completa com linhas e detalhe do cliente
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "ID da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id}/invoice [get]
func (c *SaleController) Invoice(ctx *gin.Context) {
	c.Get(ctx)
}

// List retorna a lista de vendas
// @Summary Listar vendas
// @Description Retorna a lista de vendas, mais recentes primeiro, paginada
// @Tags sales
// @Accept json
// @Produce json
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.SaleListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales [get]
func (c *SaleController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	pagination := dto.GetPagination(page, size)

	sales, err := c.saleRepo.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar vendas", err.Error()))
		return
	}

	total, err := c.saleRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar vendas", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar vendas", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleListResponse(sales, total, pagination.Page, pagination.PageSize))
}

// Update atualiza o cabeçalho de uma venda
// @Summary Atualizar venda
// @Description Atualiza os campos de cabeçalho da venda; o total e as linhas são imutáveis
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "ID da venda"
// @Param sale body dto.SaleUpdateRequest true "Dados da venda"
// @Success 200 {object} dto.SaleResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [put]
func (c *SaleController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.SaleUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	sale, err := c.saleRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrSaleNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar venda", err.Error()))
		return
	}

	if req.Customer != nil {
		exists, err := c.customerRepo.Exists(ctx, *req.Customer)
		if err != nil {
			c.logger.Error("erro ao verificar cliente da venda", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao verificar cliente", err.Error()))
			return
		}
		if !exists {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", ""))
			return
		}
	}

	sale.Update(req.Customer, req.PaymentMethod, req.PaymentStatus, req.TaxAmount, req.DiscountAmount, req.Notes)

	if err := c.saleRepo.Update(ctx, sale); err != nil {
		c.logger.Error("erro ao atualizar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// Delete remove uma venda
// @Summary Excluir venda
// @Description Remove uma venda e, em cascata, suas linhas; o estoque não é devolvido
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "ID da venda"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/{id} [delete]
func (c *SaleController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.saleRepo.Delete(ctx, id); err != nil {
		if err == repository.ErrSaleNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "venda não encontrada", err.Error()))
			return
		}
		c.logger.Error("erro ao excluir venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir venda", err.Error()))
		return
	}

	c.refreshStats(ctx)

	ctx.Status(http.StatusNoContent)
}

// MonthlySummary retorna o total vendido por mês calendário
// @Summary Resumo mensal
// @Description Agrupa as vendas por mês calendário, em ordem cronológica crescente
// @Tags sales
// @Accept json
// @Produce json
// @Success 200 {array} dto.MonthlyTotalResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/monthly_summary [get]
func (c *SaleController) MonthlySummary(ctx *gin.Context) {
	summary, err := c.saleRepo.MonthlySummary(ctx)
	if err != nil {
		c.logger.Error("erro ao consultar resumo mensal", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao consultar resumo mensal", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyTotalResponses(summary))
}

// TopItems retorna os dez itens mais vendidos por quantidade
// @Summary Itens mais vendidos
// @Description Retorna os dez itens mais vendidos por quantidade, em ordem decrescente
// @Tags sales
// @Accept json
// @Produce json
// @Success 200 {array} dto.TopItemResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/top_items [get]
func (c *SaleController) TopItems(ctx *gin.Context) {
	top, err := c.saleRepo.TopItems(ctx, topItemsLimit)
	if err != nil {
		c.logger.Error("erro ao consultar itens mais vendidos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao consultar itens mais vendidos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTopItemResponses(top))
}

// DashboardStats retorna o resumo do painel
// @Summary Resumo do painel
// @Description Retorna o resumo desnormalizado; calcula de forma síncrona quando ainda não existe
// @Tags sales
// @Accept json
// @Produce json
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /sales/dashboard_stats [get]
func (c *SaleController) DashboardStats(ctx *gin.Context) {
	ds, err := c.statsRepo.Find(ctx)
	if err != nil {
		if err != repository.ErrStatsNotFound {
			c.logger.Error("erro ao buscar resumo do painel", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar resumo do painel", err.Error()))
			return
		}

		// Primeira leitura: calcular o resumo de forma síncrona
		ds, err = c.statsRepo.Refresh(ctx)
		if err != nil {
			c.logger.Error("erro ao calcular resumo do painel", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao calcular resumo do painel", err.Error()))
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardStatsResponse(ds))
}

// refreshStats recalcula o resumo do painel após uma escrita. Falhas são
// registradas e nunca propagadas: a venda já foi confirmada.
func (c *SaleController) refreshStats(ctx *gin.Context) {
	if _, err := c.statsRepo.Refresh(ctx); err != nil {
		c.logger.Error("erro ao atualizar resumo do painel", "error", err)
	}
}
