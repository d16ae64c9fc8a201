package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vetcare/petclinic-pro/internal/application/auth"
	"github.com/vetcare/petclinic-pro/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	PetUC      *usecase.PetUseCase
	ScheduleUC *usecase.ScheduleUseCase
	VoucherUC  *usecase.VoucherUseCase
	AuditUC    *usecase.AuditUseCase
	JWTSecret  string
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

	// Users (protegido; el listado exige ADMIN + user_read en el use case)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.GetMe)
	users.Get("/", userHandler.List)

	// Pets (protegido)
	pets := protected.Group("/pets")
	petHandler := NewPetHandler(deps.PetUC)
	pets.Post("/", petHandler.Create)
	pets.Get("/", petHandler.List)
	pets.Get("/:id", petHandler.GetByID)
	pets.Patch("/:id", petHandler.Update)
	pets.Delete("/:id", petHandler.Delete)

	// Schedules (protegido)
	schedules := protected.Group("/schedules")
	scheduleHandler := NewScheduleHandler(deps.ScheduleUC, deps.VoucherUC)
	schedules.Post("/", scheduleHandler.Create)
	schedules.Get("/", scheduleHandler.List)
	schedules.Get("/:id", scheduleHandler.GetByID)
	schedules.Get("/:id/voucher", scheduleHandler.Voucher)
	schedules.Patch("/:id", scheduleHandler.Update)
	schedules.Delete("/:id", scheduleHandler.Delete)

	// Audit (protegido; ADMIN + audit_read en el use case)
	audit := protected.Group("/audit")
	auditHandler := NewAuditHandler(deps.AuditUC)
	audit.Get("/", auditHandler.List)
}
