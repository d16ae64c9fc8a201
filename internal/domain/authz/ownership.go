package authz

import (
	"fmt"

	"github.com/vetcare/petclinic-pro/internal/domain"
	"github.com/vetcare/petclinic-pro/internal/domain/repository"
)

// ResourceKind identifica el tipo de recurso con dueño. Variante cerrada:
// agregar un nuevo tipo es agregar un caso en ResolveOwner.
type ResourceKind string

const (
	KindPet      ResourceKind = "pet"
	KindSchedule ResourceKind = "schedule"
)

// OwnerResolver resuelve el dueño de un recurso por id. Para Pet es una
// lectura directa; para Schedule sigue la arista schedule→pet (propiedad
// transitiva: hay que cargar el recurso padre para responder).
type OwnerResolver struct {
	pets      repository.PetRepository
	schedules repository.ScheduleRepository
}

// NewOwnerResolver construye el resolver.
func NewOwnerResolver(pets repository.PetRepository, schedules repository.ScheduleRepository) *OwnerResolver {
	return &OwnerResolver{pets: pets, schedules: schedules}
}

// ResolveOwner devuelve el userID dueño del recurso, o domain.ErrNotFound
// si el id no existe. El corte por no-encontrado ocurre antes de cualquier
// comparación de dueños.
func (r *OwnerResolver) ResolveOwner(kind ResourceKind, resourceID string) (string, error) {
	switch kind {
	case KindPet:
		pet, err := r.pets.GetByID(resourceID)
		if err != nil {
			return "", err
		}
		if pet == nil {
			return "", domain.ErrNotFound
		}
		return pet.OwnerID, nil
	case KindSchedule:
		schedule, err := r.schedules.GetByID(resourceID)
		if err != nil {
			return "", err
		}
		if schedule == nil {
			return "", domain.ErrNotFound
		}
		pet, err := r.pets.GetByID(schedule.PetID)
		if err != nil {
			return "", err
		}
		if pet == nil {
			return "", domain.ErrNotFound
		}
		return pet.OwnerID, nil
	default:
		return "", fmt.Errorf("tipo de recurso desconocido: %s", kind)
	}
}

// AssertOwnership verifica que actorID sea el dueño del recurso.
// Devuelve domain.ErrNotFound si el recurso no existe y domain.ErrForbidden
// si existe pero pertenece a otro usuario. Debe ejecutarse en cada lectura,
// actualización y borrado de un recurso individual; los listados se acotan
// por dueño en la query y no pasan por aquí.
func (r *OwnerResolver) AssertOwnership(kind ResourceKind, resourceID, actorID string) error {
	ownerID, err := r.ResolveOwner(kind, resourceID)
	if err != nil {
		return err
	}
	if ownerID != actorID {
		return fmt.Errorf("%w: el %s no pertenece al usuario", domain.ErrForbidden, kind)
	}
	return nil
}
