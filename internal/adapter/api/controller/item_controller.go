package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/smart-canteen/internal/adapter/api/dto"
	"github.com/hugohenrick/smart-canteen/internal/adapter/repository"
	itemdomain "github.com/hugohenrick/smart-canteen/internal/domain/item"
	"github.com/hugohenrick/smart-canteen/pkg/logger"
)

// ItemController gerencia as requisições relacionadas a itens de estoque
type ItemController struct {
	itemRepo itemdomain.Repository
	logger   logger.Logger
}

// NewItemController cria uma nova instância de ItemController
func NewItemController(itemRepo itemdomain.Repository, logger logger.Logger) *ItemController {
	return &ItemController{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

// Create cria um novo item
// @Summary Criar item
// @Description Cria um novo item de estoque
// @Tags items
// @Accept json
// @Produce json
// @Param item body dto.ItemRequest true "Dados do item"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /items [post]
func (c *ItemController) Create(ctx *gin.Context) {
	var req dto.ItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	item, err := itemdomain.NewItem(req.Name, req.SKU, req.Price, req.Stock, req.ReorderThreshold)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar item", err.Error()))
		return
	}

	if req.Active != nil {
		item.Active = *req.Active
	}

	if err := c.itemRepo.Create(ctx, item); err != nil {
		c.logger.Error("erro ao criar item no banco de dados", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar item", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToItemResponse(item))
}

// Get retorna um item pelo ID
// @Summary Buscar item
// @Description Retorna os dados de um item pelo ID
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "ID do item"
// @Success 200 {object} dto.ItemResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /items/{id} [get]
func (c *ItemController) Get(ctx *gin.Context) {
	id := ctx.Param("id")

	item, err := c.itemRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrItemNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "item não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar item", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar item", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// List retorna a lista de itens
// @Summary Listar itens
// @Description Retorna a lista de itens ordenada por nome, paginada
// @Tags items
// @Accept json
// @Produce json
// @Param page query int false "Número da página"
// @Param size query int false "Tamanho da página"
// @Success 200 {object} dto.ItemListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /items [get]
func (c *ItemController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(ctx.DefaultQuery("size", "10"))

	pagination := dto.GetPagination(page, size)

	items, err := c.itemRepo.List(ctx, pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("erro ao listar itens", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar itens", err.Error()))
		return
	}

	total, err := c.itemRepo.Count(ctx)
	if err != nil {
		c.logger.Error("erro ao contar itens", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao contar itens", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemListResponse(items, total, pagination.Page, pagination.PageSize))
}

// LowStock retorna os itens com estoque igual ou abaixo do limite de reposição
// @Summary Listar itens com estoque baixo
// @Description Retorna os itens cujo estoque atingiu o limite de reposição, ordenados por nome
// @Tags items
// @Accept json
// @Produce json
// @Success 200 {array} dto.ItemResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /items/low_stock [get]
func (c *ItemController) LowStock(ctx *gin.Context) {
	items, err := c.itemRepo.FindLowStock(ctx)
	if err != nil {
		c.logger.Error("erro ao listar itens com estoque baixo", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar itens com estoque baixo", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemResponses(items))
}

// Update atualiza um item
// @Summary Atualizar item
// @Description Atualiza os dados de um item de estoque
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "ID do item"
// @Param item body dto.ItemRequest true "Dados do item"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /items/{id} [put]
func (c *ItemController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.ItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	item, err := c.itemRepo.FindByID(ctx, id)
	if err != nil {
		if err == repository.ErrItemNotFound {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "item não encontrado", err.Error()))
			return
		}
		c.logger.Error("erro ao buscar item", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar item", err.Error()))
		return
	}

	active := item.Active
	if req.Active != nil {
		active = *req.Active
	}

	if err := item.Update(req.Name, req.SKU, req.Price, req.Stock, req.ReorderThreshold, active); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao atualizar item", err.Error()))
		return
	}

	if err := c.itemRepo.Update(ctx, item); err != nil {
		c.logger.Error("erro ao atualizar item", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar item", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// Delete remove um item
// @Summary Excluir item
// @Description Remove um item; itens referenciados por vendas não podem ser excluídos
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "ID do item"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /items/{id} [delete]
func (c *ItemController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.itemRepo.Delete(ctx, id); err != nil {
		switch err {
		case repository.ErrItemNotFound:
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "item não encontrado", err.Error()))
		case repository.ErrItemInUse:
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "item referenciado por vendas", err.Error()))
		default:
			c.logger.Error("erro ao excluir item", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao excluir item", err.Error()))
		}
		return
	}

	ctx.Status(http.StatusNoContent)
}
