package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/smart-canteen/internal/adapter/api/controller"
)

// SetupItemRoutes configura as rotas para itens de estoque
func SetupItemRoutes(router *gin.RouterGroup, itemController *controller.ItemController) {
	itemsRoutes := router.Group("/items")
	{
		itemsRoutes.POST("", itemController.Create)
		itemsRoutes.GET("", itemController.List)
		itemsRoutes.GET("/low_stock", itemController.LowStock)
		itemsRoutes.GET("/:id", itemController.Get)
		itemsRoutes.PUT("/:id", itemController.Update)
		itemsRoutes.PATCH("/:id", itemController.Update)
		itemsRoutes.DELETE("/:id", itemController.Delete)
	}
}
