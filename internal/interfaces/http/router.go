package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stampout-pos-api/internal/application/auth"
	"github.com/jhoicas/stampout-pos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC               *auth.UseCase
	CompanyUC            *usecase.CompanyUseCase
	StoreUC              *usecase.StoreUseCase
	IdentificationTypeUC *usecase.IdentificationTypeUseCase
	RoleUC               *usecase.RoleUseCase
	PersonUC             *usecase.PersonUseCase
	UserUC               *usecase.UserUseCase
	CategoryUC           *usecase.CategoryUseCase
	SubcategoryUC        *usecase.SubcategoryUseCase
	ProductUC            *usecase.ProductUseCase
	TaxUC                *usecase.TaxUseCase
	JWTSecret            string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth (login público, el resto requiere token)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.AuthUC))

	authProtected := protected.Group("/auth")
	authProtected.Post("/logout", authHandler.Logout)
	authProtected.Get("/profile", authHandler.Profile)
	authProtected.Get("/validate", authHandler.Validate)

	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Patch("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Remove)

	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Post("/", storeHandler.Create)
	stores.Get("/", storeHandler.List)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Patch("/:id", storeHandler.Update)
	stores.Delete("/:id", storeHandler.Remove)

	idTypes := protected.Group("/identification-types")
	idTypeHandler := NewIdentificationTypeHandler(deps.IdentificationTypeUC)
	idTypes.Post("/", idTypeHandler.Create)
	idTypes.Get("/", idTypeHandler.List)
	idTypes.Get("/:id", idTypeHandler.GetByID)
	idTypes.Patch("/:id", idTypeHandler.Update)
	idTypes.Delete("/:id", idTypeHandler.Remove)

	roles := protected.Group("/roles")
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Post("/", roleHandler.Create)
	roles.Get("/", roleHandler.List)
	roles.Get("/:id", roleHandler.GetByID)
	roles.Patch("/:id", roleHandler.Update)
	roles.Delete("/:id", roleHandler.Remove)

	persons := protected.Group("/persons")
	personHandler := NewPersonHandler(deps.PersonUC)
	persons.Post("/", personHandler.Create)
	persons.Get("/", personHandler.List)
	persons.Get("/:id", personHandler.GetByID)
	persons.Patch("/:id", personHandler.Update)
	persons.Delete("/:id", personHandler.Remove)

	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Patch("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Remove)

	// Catálogo de productos. Las rutas estáticas (categories, subcategories)
	// van antes que /products/:id para que fiber no las capture como id.
	products := protected.Group("/products")

	categories := products.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Patch("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Remove)

	subcategories := products.Group("/subcategories")
	subcategoryHandler := NewSubcategoryHandler(deps.SubcategoryUC)
	subcategories.Post("/", subcategoryHandler.Create)
	subcategories.Get("/", subcategoryHandler.List)
	subcategories.Get("/:id", subcategoryHandler.GetByID)
	subcategories.Patch("/:id", subcategoryHandler.Update)
	subcategories.Delete("/:id", subcategoryHandler.Remove)

	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Remove)

	taxes := protected.Group("/taxes")
	taxHandler := NewTaxHandler(deps.TaxUC)
	taxes.Post("/", taxHandler.Create)
	taxes.Get("/", taxHandler.List)
	taxes.Get("/:id", taxHandler.GetByID)
	taxes.Patch("/:id", taxHandler.Update)
	taxes.Delete("/:id", taxHandler.Remove)
}
