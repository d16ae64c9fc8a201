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

var _ repository.ScheduleRepository = (*ScheduleRepo)(nil)

// ScheduleRepo implementación del puerto ScheduleRepository sobre PostgreSQL.
type ScheduleRepo struct {
	pool *pgxpool.Pool
}

// NewScheduleRepository construye el adaptador de persistencia para agendamientos.
func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepo {
	return &ScheduleRepo{pool: pool}
}

// Create persiste un nuevo agendamiento.
func (r *ScheduleRepo) Create(schedule *entity.Schedule) error {
	query := `
		INSERT INTO schedules (id, pet_id, date, service, status, observations, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		schedule.ID, schedule.PetID, schedule.Date, schedule.Service, schedule.Status,
		schedule.Observations, schedule.CreatedAt, schedule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert schedule: %w", err)
	}
	return nil
}

// GetByID obtiene un agendamiento por ID.
func (r *ScheduleRepo) GetByID(id string) (*entity.Schedule, error) {
	query := `
		SELECT id, pet_id, date, service, status, observations, created_at, updated_at
		FROM schedules WHERE id = $1`
	var s entity.Schedule
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.PetID, &s.Date, &s.Service, &s.Status, &s.Observations,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get schedule by id: %w", err)
	}
	return &s, nil
}

// ListByOwner lista los agendamientos cuyos pets pertenecen al dueño, con
// filtros opcionales por día y servicio. El acotamiento por dueño es el
// JOIN con pets, no un chequeo por fila posterior.
func (r *ScheduleRepo) ListByOwner(ownerID string, filters repository.ScheduleFilters, limit, offset int) ([]*entity.Schedule, error) {
	query := `
		SELECT s.id, s.pet_id, s.date, s.service, s.status, s.observations, s.created_at, s.updated_at
		FROM schedules s
		JOIN pets p ON p.id = s.pet_id
		WHERE p.owner_id = $1`
	args := []any{ownerID}

	if filters.Date != nil {
		// Date llega a medianoche del día a filtrar; el rango es [día, día+1).
		startOfDay := *filters.Date
		endOfDay := startOfDay.AddDate(0, 0, 1)
		args = append(args, startOfDay, endOfDay)
		query += fmt.Sprintf(" AND s.date >= $%d AND s.date < $%d", len(args)-1, len(args))
	}
	if filters.Service != "" {
		args = append(args, filters.Service)
		query += fmt.Sprintf(" AND s.service = $%d", len(args))
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY s.date ASC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer rows.Close()
	var list []*entity.Schedule
	for rows.Next() {
		var s entity.Schedule
		if err := rows.Scan(&s.ID, &s.PetID, &s.Date, &s.Service, &s.Status, &s.Observations, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un agendamiento. pet_id no cambia.
func (r *ScheduleRepo) Update(schedule *entity.Schedule) error {
	query := `
		UPDATE schedules SET date = $2, service = $3, status = $4, observations = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		schedule.ID, schedule.Date, schedule.Service, schedule.Status, schedule.Observations, schedule.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update schedule: %w", err)
	}
	return nil
}

// Delete elimina un agendamiento por ID.
func (r *ScheduleRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	return nil
}
