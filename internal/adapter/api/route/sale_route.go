package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/smart-canteen/internal/adapter/api/controller"
)

// SetupSaleRoutes configura as rotas para vendas e relatórios
func SetupSaleRoutes(router *gin.RouterGroup, saleController *controller.SaleController) {
	salesRoutes := router.Group("/sales")
	{
		salesRoutes.POST("", saleController.Create)
		salesRoutes.GET("", saleController.List)
		salesRoutes.GET("/monthly_summary", saleController.MonthlySummary)
		salesRoutes.GET("/top_items", saleController.TopItems)
		salesRoutes.GET("/dashboard_stats", saleController.DashboardStats)
		salesRoutes.GET("/:id", saleController.Get)
		salesRoutes.GET("/:id/invoice", saleController.Invoice)
		salesRoutes.PUT("/:id", saleController.Update)
		salesRoutes.PATCH("/:id", saleController.Update)
		salesRoutes.DELETE("/:id", saleController.Delete)
	}
}
