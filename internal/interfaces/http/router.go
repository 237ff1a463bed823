package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sclconsulting/inventario-api/internal/application/auth"
	"github.com/sclconsulting/inventario-api/internal/application/inventory"
	"github.com/sclconsulting/inventario-api/internal/application/usecase"
	"github.com/sclconsulting/inventario-api/pkg/jwt"
	"github.com/sclconsulting/inventario-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CategoryUC *usecase.CategoryUseCase
	SupplierUC *usecase.SupplierUseCase
	ProductUC  *usecase.ProductUseCase
	MovementUC *inventory.MovementUseCase
	KardexUC   *inventory.KardexUseCase
	JWTOpts    jwt.Options
	Log        *logger.Logger
}

// Router registra las rutas de la API bajo /api/v1. Las lecturas del catálogo
// son públicas; todo lo que muta datos (salvo el alta de categorías) y el
// kardex exigen Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")
	protect := AuthMiddleware(deps.JWTOpts, deps.AuthUC, deps.Log)

	// Auth (registro y login públicos; el toggle de actividad exige token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/token", authHandler.Login)
	authGroup.Put("/users/:id/active", protect, authHandler.SetActive)

	// Categories (lecturas y alta públicas, mutaciones protegidas)
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Log)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", protect, categoryHandler.Update)
	categories.Delete("/:id", protect, categoryHandler.Delete)

	// Products (lecturas públicas, mutaciones protegidas)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", protect, productHandler.Create)
	products.Put("/:id", protect, productHandler.Update)
	products.Delete("/:id", protect, productHandler.Delete)

	// Proveedores (lecturas públicas, mutaciones protegidas)
	suppliers := api.Group("/proveedores")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.Log)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", protect, supplierHandler.Create)
	suppliers.Put("/:id", protect, supplierHandler.Update)
	suppliers.Delete("/:id", protect, supplierHandler.Delete)

	// Movimientos de inventario
	movements := api.Group("/movimientos")
	movementHandler := NewMovementHandler(deps.MovementUC, deps.KardexUC, deps.Log)
	movements.Post("/", protect, movementHandler.Register)
	movements.Get("/producto/:productoId", movementHandler.History)
	movements.Get("/producto/:productoId/kardex", protect, movementHandler.Kardex)
}
