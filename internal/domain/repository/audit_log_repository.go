package repository

import "github.com/vetcare/petclinic-pro/internal/domain/entity"

// AuditLogRepository define el puerto de persistencia para AuditLog.
// Append-only: no hay Update ni Delete.
type AuditLogRepository interface {
	Create(log *entity.AuditLog) error
	// List devuelve registros ordenados por timestamp descendente.
	// userID vacío lista todos; no vacío filtra por actor.
	List(userID string, limit, offset int) ([]*entity.AuditLog, error)
}
