package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetcare/petclinic-pro/internal/domain"
	"github.com/vetcare/petclinic-pro/internal/domain/authz"
	"github.com/vetcare/petclinic-pro/internal/domain/entity"
	"github.com/vetcare/petclinic-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakePetRepo struct {
	pets map[string]*entity.Pet
}

func (f *fakePetRepo) Create(p *entity.Pet) error          { f.pets[p.ID] = p; return nil }
func (f *fakePetRepo) GetByID(id string) (*entity.Pet, error) { return f.pets[id], nil }
func (f *fakePetRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Pet, error) {
	var out []*entity.Pet
	for _, p := range f.pets {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakePetRepo) Update(p *entity.Pet) error { f.pets[p.ID] = p; return nil }
func (f *fakePetRepo) Delete(id string) error     { delete(f.pets, id); return nil }

type fakeScheduleRepo struct {
	schedules map[string]*entity.Schedule
}

func (f *fakeScheduleRepo) Create(s *entity.Schedule) error          { f.schedules[s.ID] = s; return nil }
func (f *fakeScheduleRepo) GetByID(id string) (*entity.Schedule, error) { return f.schedules[id], nil }
func (f *fakeScheduleRepo) ListByOwner(string, repository.ScheduleFilters, int, int) ([]*entity.Schedule, error) {
	return nil, nil
}
func (f *fakeScheduleRepo) Update(s *entity.Schedule) error { f.schedules[s.ID] = s; return nil }
func (f *fakeScheduleRepo) Delete(id string) error          { delete(f.schedules, id); return nil }

func newResolver(t *testing.T) (*authz.OwnerResolver, *fakePetRepo, *fakeScheduleRepo) {
	t.Helper()
	pets := &fakePetRepo{pets: map[string]*entity.Pet{}}
	schedules := &fakeScheduleRepo{schedules: map[string]*entity.Schedule{}}
	return authz.NewOwnerResolver(pets, schedules), pets, schedules
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ResolveOwner / AssertOwnership
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveOwner_PetDirecto(t *testing.T) {
	resolver, pets, _ := newResolver(t)
	pets.pets["p1"] = &entity.Pet{ID: "p1", OwnerID: "dueño-1"}

	owner, err := resolver.ResolveOwner(authz.KindPet, "p1")
	require.NoError(t, err)
	assert.Equal(t, "dueño-1", owner)
}

// El dueño de un schedule es el dueño de su pet: el resolver debe cargar el
// recurso padre, no leer un campo propio.
func TestResolveOwner_ScheduleTransitivo(t *testing.T) {
	resolver, pets, schedules := newResolver(t)
	pets.pets["p1"] = &entity.Pet{ID: "p1", OwnerID: "dueño-1"}
	schedules.schedules["s1"] = &entity.Schedule{ID: "s1", PetID: "p1"}

	owner, err := resolver.ResolveOwner(authz.KindSchedule, "s1")
	require.NoError(t, err)
	assert.Equal(t, "dueño-1", owner)
}

// Recurso inexistente: NotFound, nunca Forbidden. El corte ocurre antes de
// cualquier comparación de dueños.
func TestResolveOwner_NoExiste_RetornaNotFound(t *testing.T) {
	resolver, _, _ := newResolver(t)

	_, err := resolver.ResolveOwner(authz.KindPet, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = resolver.ResolveOwner(authz.KindSchedule, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestResolveOwner_ScheduleConPetHuerfano_RetornaNotFound(t *testing.T) {
	resolver, _, schedules := newResolver(t)
	schedules.schedules["s1"] = &entity.Schedule{ID: "s1", PetID: "pet-borrado"}

	_, err := resolver.ResolveOwner(authz.KindSchedule, "s1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAssertOwnership_Dueño_Permite(t *testing.T) {
	resolver, pets, _ := newResolver(t)
	pets.pets["p1"] = &entity.Pet{ID: "p1", OwnerID: "dueño-1"}

	assert.NoError(t, resolver.AssertOwnership(authz.KindPet, "p1", "dueño-1"))
}

// Existe pero es de otro: Forbidden, no NotFound.
func TestAssertOwnership_Ajeno_RetornaForbidden(t *testing.T) {
	resolver, pets, _ := newResolver(t)
	pets.pets["p1"] = &entity.Pet{ID: "p1", OwnerID: "dueño-1"}

	err := resolver.AssertOwnership(authz.KindPet, "p1", "otro-usuario")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestAssertOwnership_NoExiste_RetornaNotFound(t *testing.T) {
	resolver, _, _ := newResolver(t)

	err := resolver.AssertOwnership(authz.KindSchedule, "no-existe", "dueño-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NotErrorIs(t, err, domain.ErrForbidden)
}

func TestResolveOwner_KindDesconocido_RetornaError(t *testing.T) {
	resolver, _, _ := newResolver(t)

	_, err := resolver.ResolveOwner(authz.ResourceKind("user"), "u1")
	assert.Error(t, err)
}
