package entity

import "time"

// Estados válidos de un Schedule. No hay grafo de transiciones: cualquier
// estado puede pasar a cualquier otro, sin estados terminales.
const (
	StatusPending   = "PENDING"
	StatusConfirmed = "CONFIRMED"
	StatusCompleted = "COMPLETED"
	StatusCanceled  = "CANCELED"
)

// IsValidStatus verifica que s sea uno de los estados conocidos.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// Schedule representa un agendamiento de servicio sobre un Pet.
// El dueño de un schedule es el dueño de su pet (propiedad transitiva).
type Schedule struct {
	ID           string
	PetID        string
	Date         time.Time
	Service      string
	Status       string // PENDING, CONFIRMED, COMPLETED, CANCELED
	Observations string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
