package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/stampout-pos-api/internal/application/auth"
	"github.com/jhoicas/stampout-pos-api/internal/application/usecase"
	"github.com/jhoicas/stampout-pos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stampout-pos-api/internal/interfaces/http"
	"github.com/jhoicas/stampout-pos-api/pkg/config"
	"github.com/jhoicas/stampout-pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	idTypeRepo := postgres.NewIdentificationTypeRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	personRepo := postgres.NewPersonRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	subcategoryRepo := postgres.NewSubcategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	taxRepo := postgres.NewTaxRepository(pool)

	authUC := auth.NewUseCase(userRepo, sessionRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	storeUC := usecase.NewStoreUseCase(storeRepo, companyRepo)
	idTypeUC := usecase.NewIdentificationTypeUseCase(idTypeRepo)
	roleUC := usecase.NewRoleUseCase(roleRepo)
	personUC := usecase.NewPersonUseCase(personRepo, idTypeRepo)
	userUC := usecase.NewUserUseCase(userRepo, personRepo, companyRepo, roleRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	subcategoryUC := usecase.NewSubcategoryUseCase(subcategoryRepo, categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, subcategoryRepo)
	taxUC := usecase.NewTaxUseCase(taxRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.Origin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:               authUC,
		CompanyUC:            companyUC,
		StoreUC:              storeUC,
		IdentificationTypeUC: idTypeUC,
		RoleUC:               roleUC,
		PersonUC:             personUC,
		UserUC:               userUC,
		CategoryUC:           categoryUC,
		SubcategoryUC:        subcategoryUC,
		ProductUC:            productUC,
		TaxUC:                taxUC,
		JWTSecret:            cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
