package dto

import "time"

// AuditLogResponse salida de un registro de auditoría.
type AuditLogResponse struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	Details   map[string]any `json:"details"`
	UserID    string         `json:"user_id"`
	Timestamp time.Time      `json:"timestamp"`
}

// AuditListResponse listado de auditoría, más reciente primero.
type AuditListResponse struct {
	Items []AuditLogResponse `json:"items"`
}
