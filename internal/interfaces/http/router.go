package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Misa55555/stockpro-api/internal/application/analytics"
	"github.com/Misa55555/stockpro-api/internal/application/auth"
	"github.com/Misa55555/stockpro-api/internal/application/catalog"
	"github.com/Misa55555/stockpro-api/internal/application/finance"
	appregister "github.com/Misa55555/stockpro-api/internal/application/register"
	"github.com/Misa55555/stockpro-api/internal/application/sales"
	"github.com/Misa55555/stockpro-api/internal/domain/entity"
	"github.com/Misa55555/stockpro-api/internal/infrastructure/excel"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CatalogUC   *catalog.UseCase
	RecordSale  *sales.RecordSaleUseCase
	CustomerUC  *sales.CustomerUseCase
	RegisterUC  *appregister.UseCase
	FinanceUC   *finance.UseCase
	DashboardUC *analytics.DashboardUseCase
	Exporter    *excel.StockExporter
	JWTSecret   string
}

// Router registra las rutas de la API. La autorización corre en dos capas:
// RequireRole corta en el borde y los casos de uso vuelven a validar con la
// tabla de permisos del dominio.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token). El rol cliente queda afuera
	// de todo el núcleo operativo.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	staff := RequireRole(entity.RoleAdmin, entity.RoleVendedor)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Products (staff; escritura la filtra el caso de uso)
	products := protected.Group("/products", staff)
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/barcode/:code", productHandler.GetByBarcode)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id/toggle", productHandler.Toggle)
	products.Delete("/:id", productHandler.Delete)

	// Batches (staff)
	batchHandler := NewBatchHandler(deps.CatalogUC)
	products.Get("/:product_id/batches", batchHandler.ListByProduct)
	batches := protected.Group("/batches", staff)
	batches.Post("/", batchHandler.Create)
	batches.Get("/expiring", batchHandler.ExpiringSoon)
	batches.Put("/:id", batchHandler.Update)
	batches.Delete("/:id", batchHandler.Delete)

	// Catálogo auxiliar (staff)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	categories := protected.Group("/categories", staff)
	categories.Post("/", catalogHandler.CreateCategory)
	categories.Get("/", catalogHandler.ListCategories)
	categories.Patch("/:id/toggle", catalogHandler.ToggleCategory)
	brands := protected.Group("/brands", staff)
	brands.Post("/", catalogHandler.CreateBrand)
	brands.Get("/", catalogHandler.ListBrands)
	brands.Patch("/:id/toggle", catalogHandler.ToggleBrand)
	brands.Post("/:id/prices", adminOnly, catalogHandler.UpdateBrandPrices)
	methods := protected.Group("/payment-methods", staff)
	methods.Post("/", catalogHandler.CreatePaymentMethod)
	methods.Get("/", catalogHandler.ListPaymentMethods)
	methods.Patch("/:id/toggle", catalogHandler.TogglePaymentMethod)

	// Ventas (staff)
	salesGroup := protected.Group("/sales", staff)
	saleHandler := NewSaleHandler(deps.RecordSale)
	salesGroup.Post("/", saleHandler.Record)

	// Clientes (staff; alta rápida y autocompletado del mostrador)
	customers := protected.Group("/customers", staff)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.Search)

	// Caja (staff)
	registerGroup := protected.Group("/register", staff)
	registerHandler := NewRegisterHandler(deps.RegisterUC)
	registerGroup.Post("/open", registerHandler.Open)
	registerGroup.Post("/movements", registerHandler.PostMovement)
	registerGroup.Post("/close", registerHandler.Close)
	registerGroup.Get("/current", registerHandler.Current)
	registerGroup.Get("/sessions", registerHandler.History)
	registerGroup.Get("/sessions/:id/movements", registerHandler.Movements)

	// Gastos (solo admin)
	expenseHandler := NewExpenseHandler(deps.FinanceUC)
	expenseCategories := protected.Group("/expense-categories", adminOnly)
	expenseCategories.Post("/", expenseHandler.CreateCategory)
	expenseCategories.Get("/", expenseHandler.ListCategories)
	expenses := protected.Group("/expenses", adminOnly)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Get("/summary", expenseHandler.MonthlySummary)

	// Dashboard (staff)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", staff, dashboardHandler.Get)

	// Exportación (solo admin)
	exportHandler := NewExportHandler(deps.CatalogUC, deps.Exporter)
	protected.Get("/stock/export", adminOnly, exportHandler.StockExcel)
}
