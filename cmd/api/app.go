package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/smart-canteen/internal/adapter/api/controller"
	"github.com/hugohenrick/smart-canteen/internal/adapter/api/route"
	"github.com/hugohenrick/smart-canteen/internal/adapter/repository"
	"github.com/hugohenrick/smart-canteen/internal/infrastructure/database"
	"github.com/hugohenrick/smart-canteen/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hugohenrick/smart-canteen/docs"
)

// App representa a aplicação e suas dependências
type App struct {
	router             *gin.Engine
	db                 *pgxpool.Pool
	customerController *controller.CustomerController
	itemController     *controller.ItemController
	saleController     *controller.SaleController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	// Configurar banco de dados
	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	log := logger.NewLogger()

	// Criar repositórios
	customerRepo := repository.NewCustomerRepository(db)
	itemRepo := repository.NewItemRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Criar controllers
	customerController := controller.NewCustomerController(customerRepo, statsRepo, log)
	itemController := controller.NewItemController(itemRepo, log)
	saleController := controller.NewSaleController(saleRepo, customerRepo, statsRepo, log)

	// Configurar router e middlewares globais
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	app := &App{
		router:             router,
		db:                 db,
		customerController: customerController,
		itemController:     itemController,
		saleController:     saleController,
	}

	app.setupRoutes()

	return app, nil
}

// setupRoutes configura as rotas da aplicação
func (a *App) setupRoutes() {
	// Health check
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Documentação da API
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := a.router.Group("")

	route.SetupCustomerRoutes(api, a.customerController)
	route.SetupItemRoutes(api, a.itemController)
	route.SetupSaleRoutes(api, a.saleController)
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return a.router.Run(":" + port)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
