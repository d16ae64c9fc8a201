package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vetcare/petclinic-pro/internal/domain/entity"
	"github.com/vetcare/petclinic-pro/internal/domain/repository"
)

var _ repository.PetRepository = (*PetRepo)(nil)

// PetRepo implementación del puerto PetRepository sobre PostgreSQL.
type PetRepo struct {
	pool *pgxpool.Pool
}

// NewPetRepository construye el adaptador de persistencia para mascotas.
func NewPetRepository(pool *pgxpool.Pool) *PetRepo {
	return &PetRepo{pool: pool}
}

// Create persiste una nueva mascota.
func (r *PetRepo) Create(pet *entity.Pet) error {
	query := `
		INSERT INTO pets (id, owner_id, name, species, age, weight, observations, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		pet.ID, pet.OwnerID, pet.Name, pet.Species, pet.Age, pet.Weight, pet.Observations,
		pet.CreatedAt, pet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pet: %w", err)
	}
	return nil
}

// GetByID obtiene una mascota por ID.
func (r *PetRepo) GetByID(id string) (*entity.Pet, error) {
	query := `
		SELECT id, owner_id, name, species, age, weight, observations, created_at, updated_at
		FROM pets WHERE id = $1`
	var p entity.Pet
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.Species, &p.Age, &p.Weight, &p.Observations,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pet by id: %w", err)
	}
	return &p, nil
}

// ListByOwner lista las mascotas de un dueño con paginación. El WHERE por
// owner_id es lo que garantiza que un listado nunca expone mascotas ajenas.
func (r *PetRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Pet, error) {
	query := `
		SELECT id, owner_id, name, species, age, weight, observations, created_at, updated_at
		FROM pets WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pet
	for rows.Next() {
		var p entity.Pet
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Species, &p.Age, &p.Weight, &p.Observations, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pet: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza una mascota. owner_id no se toca: el dueño es inmutable.
func (r *PetRepo) Update(pet *entity.Pet) error {
	query := `
		UPDATE pets SET name = $2, species = $3, age = $4, weight = $5, observations = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		pet.ID, pet.Name, pet.Species, pet.Age, pet.Weight, pet.Observations, pet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update pet: %w", err)
	}
	return nil
}

// Delete elimina una mascota por ID.
func (r *PetRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pet: %w", err)
	}
	return nil
}
