package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Dotacion-api/internal/application/auth"
	appcoll "github.com/jhoicas/Dotacion-api/internal/application/collection"
	appdist "github.com/jhoicas/Dotacion-api/internal/application/distribution"
	appent "github.com/jhoicas/Dotacion-api/internal/application/entitlement"
	"github.com/jhoicas/Dotacion-api/internal/application/stock"
	"github.com/jhoicas/Dotacion-api/internal/application/usecase"
	"github.com/jhoicas/Dotacion-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ItemUC        *usecase.ItemUseCase
	CategoryUC    *usecase.CategoryUseCase
	SupplierUC    *usecase.SupplierUseCase
	SchoolUC      *usecase.SchoolUseCase
	StockUC       *stock.SummaryUseCase
	DistUC        *appdist.UseCase
	ActaUC        *appdist.ActaUseCase
	CollectionUC  *appcoll.UseCase
	EntitlementUC *appent.UseCase
	JWTSecret     string
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

	// El depósito lo mutan admin y almacenista; el docente solo consulta.
	deposito := RequireRole(entity.RoleAdmin, entity.RoleAlmacenista)

	// Items (protegido)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", deposito, itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", deposito, itemHandler.Update)
	items.Delete("/:id", deposito, itemHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", deposito, categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", deposito, categoryHandler.Update)
	categories.Delete("/:id", deposito, categoryHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", deposito, supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", deposito, supplierHandler.Update)
	suppliers.Delete("/:id", deposito, supplierHandler.Delete)

	// Cursos, estudiantes y periodos (protegido)
	schoolHandler := NewSchoolHandler(deps.SchoolUC)
	classes := protected.Group("/classes")
	classes.Post("/", deposito, schoolHandler.CreateClass)
	classes.Get("/", schoolHandler.ListClasses)
	classes.Get("/:id", schoolHandler.GetClass)
	classes.Put("/:id", deposito, schoolHandler.UpdateClass)

	students := protected.Group("/students")
	students.Post("/", deposito, schoolHandler.CreateStudent)
	students.Get("/", schoolHandler.ListStudents)
	students.Get("/:id", schoolHandler.GetStudent)
	students.Put("/:id", deposito, schoolHandler.UpdateStudent)

	terms := protected.Group("/terms")
	terms.Post("/", deposito, schoolHandler.CreateTerm)
	terms.Get("/", schoolHandler.ListTerms)
	terms.Get("/:id", schoolHandler.GetTerm)

	// Stock y libro de asientos (protegido)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Get("/low", stockHandler.GetLowStock)
	stockGroup.Post("/summaries", stockHandler.GetBulkSummaries)
	stockGroup.Post("/entries", deposito, stockHandler.RegisterEntry)
	stockGroup.Get("/items/:id/summary", stockHandler.GetSummary)
	stockGroup.Get("/items/:id/entries", stockHandler.ListEntries)

	// Entregas a cursos (protegido)
	distributions := protected.Group("/distributions")
	distHandler := NewDistributionHandler(deps.DistUC, deps.ActaUC)
	distributions.Post("/", deposito, distHandler.Create)
	distributions.Get("/", distHandler.List)
	distributions.Get("/:id", distHandler.GetByID)
	distributions.Put("/:id", deposito, distHandler.Update)
	distributions.Post("/:id/cancel", deposito, distHandler.Cancel)
	distributions.Get("/:id/acta", distHandler.Acta)

	// Retiros de estudiantes y conciliación (protegido)
	collections := protected.Group("/collections")
	collectionHandler := NewCollectionHandler(deps.CollectionUC)
	collections.Put("/", collectionHandler.Record)
	collections.Get("/summary", collectionHandler.Summary)

	// Cupos planificados (protegido)
	entitlements := protected.Group("/entitlements")
	entitlementHandler := NewEntitlementHandler(deps.EntitlementUC)
	entitlements.Put("/", deposito, entitlementHandler.Upsert)
	entitlements.Post("/bulk", deposito, entitlementHandler.BulkUpsert)
	entitlements.Get("/", entitlementHandler.List)
}
