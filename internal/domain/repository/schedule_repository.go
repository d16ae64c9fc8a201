package repository

import (
	"time"

	"github.com/vetcare/petclinic-pro/internal/domain/entity"
)

// ScheduleFilters filtros opcionales del listado de agendamientos.
// Date filtra por día completo (00:00 a 23:59:59 del día indicado).
type ScheduleFilters struct {
	Date    *time.Time
	Service string
}

// ScheduleRepository define el puerto de persistencia para Schedule.
type ScheduleRepository interface {
	Create(schedule *entity.Schedule) error
	GetByID(id string) (*entity.Schedule, error)
	// ListByOwner acota la query al dueño del pet (JOIN schedules→pets).
	ListByOwner(ownerID string, filters ScheduleFilters, limit, offset int) ([]*entity.Schedule, error)
	Update(schedule *entity.Schedule) error
	Delete(id string) error
}
