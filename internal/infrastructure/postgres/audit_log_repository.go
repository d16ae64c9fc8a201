package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vetcare/petclinic-pro/internal/domain/entity"
	"github.com/vetcare/petclinic-pro/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implementación del puerto AuditLogRepository sobre PostgreSQL.
// Solo INSERT y SELECT: la tabla es append-only.
type AuditLogRepo struct {
	pool *pgxpool.Pool
}

// NewAuditLogRepository construye el adaptador de persistencia para auditoría.
func NewAuditLogRepository(pool *pgxpool.Pool) *AuditLogRepo {
	return &AuditLogRepo{pool: pool}
}

// Create persiste un registro de auditoría. Details se serializa a JSONB.
func (r *AuditLogRepo) Create(log *entity.AuditLog) error {
	details, err := json.Marshal(log.Details)
	if err != nil {
		return fmt.Errorf("marshal audit details: %w", err)
	}
	query := `
		INSERT INTO audit_logs (id, action, details, user_id, timestamp)
		VALUES ($1, $2, $3, $4, $5)`
	_, err = r.pool.Exec(context.Background(), query,
		log.ID, log.Action, details, log.UserID, log.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// List devuelve registros ordenados por timestamp descendente, con filtro
// opcional por usuario y paginación.
func (r *AuditLogRepo) List(userID string, limit, offset int) ([]*entity.AuditLog, error) {
	query := `
		SELECT id, action, details, user_id, timestamp
		FROM audit_logs`
	args := []any{}
	if userID != "" {
		args = append(args, userID)
		query += " WHERE user_id = $1"
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY timestamp DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		var details []byte
		if err := rows.Scan(&l.ID, &l.Action, &details, &l.UserID, &l.Timestamp); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &l.Details); err != nil {
				return nil, fmt.Errorf("unmarshal audit details: %w", err)
			}
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
