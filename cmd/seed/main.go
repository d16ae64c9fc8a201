// seed carga datos de demostración: un admin con el set completo de
// permisos, un usuario con el set básico, dos mascotas y dos agendamientos.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/vetcare/petclinic-pro/internal/domain/entity"
	"github.com/vetcare/petclinic-pro/internal/infrastructure/postgres"
	"github.com/vetcare/petclinic-pro/pkg/config"
	"github.com/vetcare/petclinic-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	log.Info().Msg("iniciando seed...")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	petRepo := postgres.NewPetRepository(pool)
	scheduleRepo := postgres.NewScheduleRepository(pool)
	permRepo := postgres.NewPermissionRepository(pool)

	now := time.Now()

	admin := seedUser(userRepo, log, &entity.User{
		ID:        uuid.New().String(),
		Email:     "admin@petclinic.local",
		Name:      "Administrador",
		Role:      entity.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}, "admin123")
	if err := permRepo.Grant(admin.ID, entity.AllPermissions()); err != nil {
		log.Fatal().Err(err).Msg("otorgar permisos al admin")
	}
	log.Info().Str("email", admin.Email).Msg("admin creado")

	user := seedUser(userRepo, log, &entity.User{
		ID:        uuid.New().String(),
		Email:     "usuario@example.com",
		Name:      "João Silva",
		Role:      entity.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}, "senha123")
	if err := permRepo.Grant(user.ID, entity.DefaultUserPermissions()); err != nil {
		log.Fatal().Err(err).Msg("otorgar permisos al usuario")
	}
	log.Info().Str("email", user.Email).Msg("usuario creado")

	pet1 := &entity.Pet{
		ID:           uuid.New().String(),
		OwnerID:      user.ID,
		Name:         "Rex",
		Species:      "Dog",
		Age:          3,
		Weight:       decimal.NewFromFloat(15.5),
		Observations: "Pet muy juguetón",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	pet2 := &entity.Pet{
		ID:           uuid.New().String(),
		OwnerID:      user.ID,
		Name:         "Mimi",
		Species:      "Cat",
		Age:          2,
		Weight:       decimal.NewFromFloat(4.2),
		Observations: "Gata muy cariñosa",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, p := range []*entity.Pet{pet1, pet2} {
		if err := petRepo.Create(p); err != nil {
			log.Fatal().Err(err).Str("pet", p.Name).Msg("crear pet")
		}
	}
	log.Info().Str("pets", pet1.Name+", "+pet2.Name).Msg("pets creados")

	schedules := []*entity.Schedule{
		{
			ID:           uuid.New().String(),
			PetID:        pet1.ID,
			Date:         time.Date(now.Year(), now.Month(), now.Day(), 10, 0, 0, 0, time.UTC).AddDate(0, 0, 7),
			Service:      "Consulta",
			Status:       entity.StatusPending,
			Observations: "Primera consulta del pet",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           uuid.New().String(),
			PetID:        pet2.ID,
			Date:         time.Date(now.Year(), now.Month(), now.Day(), 14, 0, 0, 0, time.UTC).AddDate(0, 0, 12),
			Service:      "Vacunación",
			Status:       entity.StatusConfirmed,
			Observations: "Vacunación anual",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
	for _, s := range schedules {
		if err := scheduleRepo.Create(s); err != nil {
			log.Fatal().Err(err).Str("schedule", s.ID).Msg("crear agendamiento")
		}
	}
	log.Info().Int("count", len(schedules)).Msg("agendamientos creados")
	log.Info().Msg("seed concluido")
}

// seedUser crea el usuario si no existe; si ya existe lo reutiliza.
func seedUser(repo *postgres.UserRepo, log *logger.Logger, u *entity.User, password string) *entity.User {
	existing, err := repo.GetByEmail(u.Email)
	if err != nil {
		log.Fatal().Err(err).Str("email", u.Email).Msg("buscar usuario")
	}
	if existing != nil {
		return existing
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}
	u.PasswordHash = string(hash)
	if err := repo.Create(u); err != nil {
		log.Fatal().Err(err).Str("email", u.Email).Msg("crear usuario")
	}
	return u
}
