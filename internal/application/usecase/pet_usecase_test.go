package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetcare/petclinic-pro/internal/application/dto"
	"github.com/vetcare/petclinic-pro/internal/application/usecase"
	"github.com/vetcare/petclinic-pro/internal/domain"
	"github.com/vetcare/petclinic-pro/internal/domain/authz"
	"github.com/vetcare/petclinic-pro/internal/domain/entity"
)

func newPetUseCase(t *testing.T) (*usecase.PetUseCase, *memPetRepo) {
	t.Helper()
	pets := newMemPetRepo()
	resolver := authz.NewOwnerResolver(pets, newMemScheduleRepo())
	return usecase.NewPetUseCase(pets, resolver), pets
}

func TestPetCreate_AsignaDuenioDesdeElActor(t *testing.T) {
	uc, repo := newPetUseCase(t)

	out, err := uc.Create(actorDuenio("u1"), dto.CreatePetRequest{
		Name:    "Rex",
		Species: "Dog",
		Age:     3,
		Weight:  decimal.NewFromFloat(18.5),
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", out.OwnerID, "el dueño sale del actor, nunca del body")
	assert.True(t, out.Weight.Equal(decimal.NewFromFloat(18.5)))
	require.Contains(t, repo.pets, out.ID)
}

func TestPetCreate_SinPermiso_Forbidden(t *testing.T) {
	uc, repo := newPetUseCase(t)

	actor := authz.Actor{UserID: "u1", Role: entity.RoleUser, Permissions: []string{entity.PermPetRead}}
	_, err := uc.Create(actor, dto.CreatePetRequest{Name: "Rex", Species: "Dog"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, repo.pets)
}

// El pet existe pero es de otro: Forbidden, nunca NotFound. Ocultarlo como
// 404 filtraría existencia de forma inconsistente con el orden de chequeos.
func TestPetGetByID_DeOtroUsuario_ForbiddenNoNotFound(t *testing.T) {
	uc, repo := newPetUseCase(t)
	repo.pets["p1"] = &entity.Pet{ID: "p1", OwnerID: "u1", Name: "Rex"}

	_, err := uc.GetByID(actorDuenio("u2"), "p1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestPetGetByID_Inexistente_NotFound(t *testing.T) {
	uc, _ := newPetUseCase(t)

	_, err := uc.GetByID(actorDuenio("u1"), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ADMIN sin permisos explícitos no tiene acceso implícito a nada.
func TestPetGetByID_AdminSinPermisos_Forbidden(t *testing.T) {
	uc, repo := newPetUseCase(t)
	repo.pets["p1"] = &entity.Pet{ID: "p1", OwnerID: "u1", Name: "Rex"}

	admin := authz.Actor{UserID: "adm", Role: entity.RoleAdmin, Permissions: nil}
	_, err := uc.GetByID(admin, "p1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPetList_SoloLosDelActor(t *testing.T) {
	uc, repo := newPetUseCase(t)
	repo.pets["p1"] = &entity.Pet{ID: "p1", OwnerID: "u1", Name: "Rex"}
	repo.pets["p2"] = &entity.Pet{ID: "p2", OwnerID: "u2", Name: "Mimi"}
	repo.pets["p3"] = &entity.Pet{ID: "p3", OwnerID: "u1", Name: "Toby"}

	out, err := uc.List(actorDuenio("u1"), dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	for _, item := range out.Items {
		assert.Equal(t, "u1", item.OwnerID)
	}
}

func TestPetUpdate_Parcial_CamposAusentesIntactos(t *testing.T) {
	uc, repo := newPetUseCase(t)
	repo.pets["p1"] = &entity.Pet{
		ID: "p1", OwnerID: "u1", Name: "Rex", Species: "Dog",
		Age: 3, Weight: decimal.NewFromFloat(18.5),
	}

	nuevoNombre := "Max"
	out, err := uc.Update(actorDuenio("u1"), "p1", dto.UpdatePetRequest{Name: &nuevoNombre})
	require.NoError(t, err)

	assert.Equal(t, "Max", out.Name)
	assert.Equal(t, "Dog", out.Species, "species no tocado debe conservarse")
	assert.Equal(t, 3, out.Age)
	assert.True(t, out.Weight.Equal(decimal.NewFromFloat(18.5)))
	assert.Equal(t, "u1", out.OwnerID, "el dueño nunca cambia vía update")
}

func TestPetUpdate_DeOtroUsuario_Forbidden(t *testing.T) {
	uc, repo := newPetUseCase(t)
	repo.pets["p1"] = &entity.Pet{ID: "p1", OwnerID: "u1", Name: "Rex"}

	otro := "Max"
	_, err := uc.Update(actorDuenio("u2"), "p1", dto.UpdatePetRequest{Name: &otro})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, "Rex", repo.pets["p1"].Name, "el pet ajeno debe quedar intacto")
}

func TestPetDelete_Propio_Elimina(t *testing.T) {
	uc, repo := newPetUseCase(t)
	repo.pets["p1"] = &entity.Pet{ID: "p1", OwnerID: "u1", Name: "Rex"}

	require.NoError(t, uc.Delete(actorDuenio("u1"), "p1"))
	assert.Empty(t, repo.pets)
}

func TestPetDelete_DeOtroUsuario_Forbidden(t *testing.T) {
	uc, repo := newPetUseCase(t)
	repo.pets["p1"] = &entity.Pet{ID: "p1", OwnerID: "u1", Name: "Rex"}

	err := uc.Delete(actorDuenio("u2"), "p1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Len(t, repo.pets, 1)
}
