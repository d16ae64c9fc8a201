package dto

import "time"

// CreateScheduleRequest entrada para crear un agendamiento.
// Status es opcional; por defecto PENDING.
type CreateScheduleRequest struct {
	PetID        string    `json:"pet_id" validate:"required,uuid"`
	Date         time.Time `json:"date" validate:"required"`
	Service      string    `json:"service" validate:"required,min=1,max=100"`
	Status       string    `json:"status" validate:"omitempty,oneof=PENDING CONFIRMED COMPLETED CANCELED"`
	Observations string    `json:"observations" validate:"omitempty,max=500"`
}

// UpdateScheduleRequest actualización parcial de un agendamiento.
type UpdateScheduleRequest struct {
	Date         *time.Time `json:"date"`
	Service      *string    `json:"service"`
	Status       *string    `json:"status" validate:"omitempty,oneof=PENDING CONFIRMED COMPLETED CANCELED"`
	Observations *string    `json:"observations"`
}

// ListSchedulesRequest filtros del listado (siempre acotado al dueño).
type ListSchedulesRequest struct {
	Date    string `query:"date"`    // YYYY-MM-DD, día completo
	Service string `query:"service"` // match exacto
	PageRequest
}

// ScheduleResponse salida de un agendamiento.
type ScheduleResponse struct {
	ID           string    `json:"id"`
	PetID        string    `json:"pet_id"`
	Date         time.Time `json:"date"`
	Service      string    `json:"service"`
	Status       string    `json:"status"`
	Observations string    `json:"observations,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ScheduleListResponse listado de agendamientos.
type ScheduleListResponse struct {
	Items []ScheduleResponse `json:"items"`
}
