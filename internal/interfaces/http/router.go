// Package http contiene los handlers Fiber, el middleware de auth y el
// registro de rutas de la API.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/coffee-urbantech/pos-api/internal/application/analytics"
	"github.com/coffee-urbantech/pos-api/internal/application/auth"
	"github.com/coffee-urbantech/pos-api/internal/application/inventory"
	"github.com/coffee-urbantech/pos-api/internal/application/purchases"
	"github.com/coffee-urbantech/pos-api/internal/application/reports"
	"github.com/coffee-urbantech/pos-api/internal/application/sales"
	"github.com/coffee-urbantech/pos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *inventory.ProductUseCase
	SaleUC      *sales.SaleUseCase
	PurchaseUC  *purchases.PurchaseUseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *reports.ReportUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Sales: carrito + commit + historial (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Get("/cart", saleHandler.GetCart)
	salesGroup.Delete("/cart", saleHandler.ClearCart)
	salesGroup.Post("/cart/items", saleHandler.AddCartItem)
	salesGroup.Patch("/cart/items/:productId", saleHandler.ChangeCartQuantity)
	salesGroup.Delete("/cart/items/:productId", saleHandler.RemoveCartItem)
	salesGroup.Post("/", saleHandler.Commit)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Delete("/:id", adminOnly, saleHandler.Delete)

	// Purchases (protegido)
	purchasesGroup := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchasesGroup.Post("/", purchaseHandler.Register)
	purchasesGroup.Get("/", purchaseHandler.List)
	purchasesGroup.Delete("/:id", adminOnly, purchaseHandler.Delete)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	// Reports (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports", reportHandler.Get)
	protected.Get("/reports/pdf", reportHandler.DownloadPDF)
}
