package repository

import "github.com/vetcare/petclinic-pro/internal/domain/entity"

// PetRepository define el puerto de persistencia para Pet.
type PetRepository interface {
	Create(pet *entity.Pet) error
	GetByID(id string) (*entity.Pet, error)
	// ListByOwner acota la query al dueño: la propia consulta garantiza que
	// un listado nunca expone mascotas ajenas.
	ListByOwner(ownerID string, limit, offset int) ([]*entity.Pet, error)
	Update(pet *entity.Pet) error
	Delete(id string) error
}
