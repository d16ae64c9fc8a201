package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/vetcare/petclinic-pro/internal/application/auth"
	"github.com/vetcare/petclinic-pro/internal/application/usecase"
	"github.com/vetcare/petclinic-pro/internal/domain/authz"
	infrapdf "github.com/vetcare/petclinic-pro/internal/infrastructure/pdf"
	"github.com/vetcare/petclinic-pro/internal/infrastructure/postgres"
	"github.com/vetcare/petclinic-pro/internal/infrastructure/webhook"
	httpRouter "github.com/vetcare/petclinic-pro/internal/interfaces/http"
	"github.com/vetcare/petclinic-pro/pkg/config"
	"github.com/vetcare/petclinic-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	petRepo := postgres.NewPetRepository(pool)
	scheduleRepo := postgres.NewScheduleRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	permRepo := postgres.NewPermissionRepository(pool)

	resolver := authz.NewOwnerResolver(petRepo, scheduleRepo)
	dispatcher := webhook.NewDispatcher(cfg.Webhook.URL, time.Duration(cfg.Webhook.TimeoutSeconds)*time.Second, log)

	auditUC := usecase.NewAuditUseCase(auditRepo)
	petUC := usecase.NewPetUseCase(petRepo, resolver)
	scheduleUC := usecase.NewScheduleUseCase(scheduleRepo, resolver, auditUC, dispatcher)
	userUC := usecase.NewUserUseCase(userRepo)
	voucherGen := infrapdf.NewMarotoVoucherGenerator(cfg.App.Name)
	voucherUC := usecase.NewVoucherUseCase(scheduleRepo, petRepo, userRepo, resolver, voucherGen)
	authUC := auth.NewAuthUseCase(userRepo, permRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PetClinic API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		PetUC:      petUC,
		ScheduleUC: scheduleUC,
		VoucherUC:  voucherUC,
		AuditUC:    auditUC,
		JWTSecret:  cfg.JWT.Secret,
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
