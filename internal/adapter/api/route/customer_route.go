package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/smart-canteen/internal/adapter/api/controller"
)

// SetupCustomerRoutes configura as rotas para clientes
func SetupCustomerRoutes(router *gin.RouterGroup, customerController *controller.CustomerController) {
	customersRoutes := router.Group("/customers")
	{
		customersRoutes.POST("", customerController.Create)
		customersRoutes.GET("", customerController.List)
		customersRoutes.GET("/:id", customerController.Get)
		customersRoutes.PUT("/:id", customerController.Update)
		customersRoutes.PATCH("/:id", customerController.Update)
		customersRoutes.DELETE("/:id", customerController.Delete)
	}
}
