package entity

import "time"

// Acciones auditadas. Solo las mutaciones de Schedule generan auditoría;
// las de Pet no (asimetría heredada del diseño: el volumen auditado se
// acota al dominio de servicios regulados).
const (
	ActionCreateSchedule = "CREATE_SCHEDULE"
	ActionUpdateSchedule = "UPDATE_SCHEDULE"
	ActionDeleteSchedule = "DELETE_SCHEDULE"
)

// AuditLog es un registro inmutable de una acción que mutó estado.
// Append-only: nunca se actualiza ni se borra.
type AuditLog struct {
	ID        string
	Action    string
	Details   map[string]any // payload estructurado, JSONB en DB
	UserID    string
	Timestamp time.Time
}
