package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/vetcare/petclinic-pro/internal/application/dto"
	"github.com/vetcare/petclinic-pro/internal/domain"
	"github.com/vetcare/petclinic-pro/internal/domain/authz"
	"github.com/vetcare/petclinic-pro/internal/domain/entity"
	"github.com/vetcare/petclinic-pro/internal/domain/repository"
)

// PetUseCase casos de uso CRUD para mascotas. Cada operación declara sus
// permisos en el sitio de llamada y verifica propiedad por instancia antes
// de tocar storage. Las mutaciones de Pet no generan auditoría.
type PetUseCase struct {
	repo     repository.PetRepository
	resolver *authz.OwnerResolver
}

// NewPetUseCase construye el caso de uso.
func NewPetUseCase(repo repository.PetRepository, resolver *authz.OwnerResolver) *PetUseCase {
	return &PetUseCase{repo: repo, resolver: resolver}
}

// Create crea una mascota cuyo dueño es el actor.
func (uc *PetUseCase) Create(actor authz.Actor, in dto.CreatePetRequest) (*dto.PetResponse, error) {
	if err := authz.Authorize(actor, authz.Requirement{Permissions: []string{entity.PermPetCreate}}); err != nil {
		return nil, err
	}
	now := time.Now()
	pet := &entity.Pet{
		ID:           uuid.New().String(),
		OwnerID:      actor.UserID,
		Name:         in.Name,
		Species:      in.Species,
		Age:          in.Age,
		Weight:       in.Weight,
		Observations: in.Observations,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(pet); err != nil {
		return nil, err
	}
	return toPetResponse(pet), nil
}

// List lista las mascotas del actor. La query se acota por dueño, sin
// chequeo por fila.
func (uc *PetUseCase) List(actor authz.Actor, page dto.PageRequest) (*dto.PetListResponse, error) {
	if err := authz.Authorize(actor, authz.Requirement{Permissions: []string{entity.PermPetRead}}); err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, err := uc.repo.ListByOwner(actor.UserID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PetResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPetResponse(p))
	}
	return &dto.PetListResponse{Items: items}, nil
}

// GetByID obtiene una mascota. Orden obligatorio: existencia → propiedad →
// lectura; invertirlo filtraría existencia de forma inconsistente.
func (uc *PetUseCase) GetByID(actor authz.Actor, id string) (*dto.PetResponse, error) {
	if err := authz.Authorize(actor, authz.Requirement{Permissions: []string{entity.PermPetRead}}); err != nil {
		return nil, err
	}
	if err := uc.resolver.AssertOwnership(authz.KindPet, id, actor.UserID); err != nil {
		return nil, err
	}
	pet, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, domain.ErrNotFound
	}
	return toPetResponse(pet), nil
}

// Update aplica una actualización parcial: solo los campos presentes.
// OwnerID nunca cambia.
func (uc *PetUseCase) Update(actor authz.Actor, id string, in dto.UpdatePetRequest) (*dto.PetResponse, error) {
	if err := authz.Authorize(actor, authz.Requirement{Permissions: []string{entity.PermPetUpdate}}); err != nil {
		return nil, err
	}
	if err := uc.resolver.AssertOwnership(authz.KindPet, id, actor.UserID); err != nil {
		return nil, err
	}
	pet, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if pet == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		pet.Name = *in.Name
	}
	if in.Species != nil {
		pet.Species = *in.Species
	}
	if in.Age != nil {
		pet.Age = *in.Age
	}
	if in.Weight != nil {
		pet.Weight = *in.Weight
	}
	if in.Observations != nil {
		pet.Observations = *in.Observations
	}
	pet.UpdatedAt = time.Now()
	if err := uc.repo.Update(pet); err != nil {
		return nil, err
	}
	return toPetResponse(pet), nil
}

// Delete elimina una mascota del actor.
func (uc *PetUseCase) Delete(actor authz.Actor, id string) error {
	if err := authz.Authorize(actor, authz.Requirement{Permissions: []string{entity.PermPetDelete}}); err != nil {
		return err
	}
	if err := uc.resolver.AssertOwnership(authz.KindPet, id, actor.UserID); err != nil {
		return err
	}
	return uc.repo.Delete(id)
}

func toPetResponse(p *entity.Pet) *dto.PetResponse {
	if p == nil {
		return nil
	}
	return &dto.PetResponse{
		ID:           p.ID,
		OwnerID:      p.OwnerID,
		Name:         p.Name,
		Species:      p.Species,
		Age:          p.Age,
		Weight:       p.Weight,
		Observations: p.Observations,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
