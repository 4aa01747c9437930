package router

import (
	"time"

	"orionpos/internal/config"
	"orionpos/internal/handler"
	"orionpos/internal/middleware"
	"orionpos/internal/model"
	"orionpos/internal/repository"
	"orionpos/internal/service"
	"orionpos/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	movementRepo := repository.NewMovementRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	clientRepo := repository.NewClientRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	configRepo := repository.NewConfigRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	stockSvc := service.NewStockService(movementRepo, productRepo)
	productSvc := service.NewProductService(productRepo, movementRepo, stockSvc, rdb)
	saleSvc := service.NewSaleService(saleRepo, productRepo, clientRepo, configRepo, stockSvc, dispatcher, cfg.PDFStoragePath)
	clientSvc := service.NewClientService(clientRepo, saleRepo)
	treasurySvc := service.NewTreasuryService(expenseRepo, goalRepo)
	configSvc := service.NewConfigService(configRepo)
	dashboardSvc := service.NewDashboardService(saleRepo, productRepo, expenseRepo)
	exportSvc := service.NewExportService(productRepo, movementRepo, saleRepo, clientRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	movementsH := handler.NewMovementsHandler(stockSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	clientsH := handler.NewClientsHandler(clientSvc)
	treasuryH := handler.NewTreasuryHandler(treasurySvc)
	companyH := handler.NewCompanyHandler(configSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	exportsH := handler.NewExportsHandler(exportSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Price check — no auth, read-only, served from cache when possible
	r.GET("/v1/price/:barcode", productsH.PriceCheck)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	anyRole := middleware.RequireRole(model.RoleAdmin, model.RoleCashier)
	adminOnly := middleware.RequireRole(model.RoleAdmin)

	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/auth/me", anyRole, authH.Me)

		// Catalog — both roles read and restock; other writes are admin-only
		v1.GET("/products", anyRole, productsH.List)
		v1.GET("/products/:id", anyRole, productsH.Get)
		v1.GET("/categories", anyRole, productsH.Categories)
		v1.POST("/products/:id/add-stock", anyRole, movementsH.AddStock)
		products := v1.Group("/products", adminOnly)
		{
			products.POST("", productsH.Create)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
		}

		// Sales — cashiers sell; deleting (reversing) a sale is admin-only
		v1.POST("/sales", anyRole, salesH.Create)
		v1.GET("/sales", anyRole, salesH.List)
		v1.GET("/sales/:id", anyRole, salesH.Get)
		v1.GET("/sales/:id/receipt", anyRole, salesH.Receipt)
		v1.DELETE("/sales/:id", adminOnly, salesH.Delete)

		// Stock ledger — reading is open to both roles, writing is admin-only
		v1.GET("/stock-movements", anyRole, movementsH.List)
		v1.POST("/stock-movements", adminOnly, movementsH.Create)
		v1.DELETE("/stock-movements/:id", adminOnly, movementsH.Delete)

		// Company profile — any role reads it (receipts need it), only admins edit
		v1.GET("/company", anyRole, companyH.Get)

		// Clients
		v1.POST("/clients", anyRole, clientsH.Create)
		v1.GET("/clients", anyRole, clientsH.List)
		v1.GET("/clients/:id", anyRole, clientsH.Get)
		v1.PUT("/clients/:id", anyRole, clientsH.Update)
		v1.DELETE("/clients/:id", adminOnly, clientsH.Delete)

		// Back office — admin-only
		admin := v1.Group("", adminOnly)
		{
			admin.POST("/users", usersH.Create)
			admin.GET("/users", usersH.List)
			admin.PUT("/users/:id", usersH.Update)
			admin.DELETE("/users/:id", usersH.Delete)

			admin.GET("/dashboard/stats", dashboardH.Stats)
			admin.GET("/dashboard/chart", dashboardH.Chart)
			admin.GET("/dashboard/top-products", dashboardH.TopProducts)

			admin.POST("/expenses", treasuryH.CreateExpense)
			admin.GET("/expenses", treasuryH.ListExpenses)
			admin.PUT("/expenses/:id", treasuryH.UpdateExpense)
			admin.DELETE("/expenses/:id", treasuryH.DeleteExpense)

			admin.POST("/goals", treasuryH.CreateGoal)
			admin.GET("/goals", treasuryH.ListGoals)
			admin.PUT("/goals/:id", treasuryH.UpdateGoal)
			admin.DELETE("/goals/:id", treasuryH.DeleteGoal)

			admin.PUT("/company", companyH.Update)

			admin.GET("/exports/products", exportsH.Products)
			admin.GET("/exports/stock-movements", exportsH.Movements)
			admin.GET("/exports/sales", exportsH.Sales)
			admin.GET("/exports/clients", exportsH.Clients)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
