package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vetcare/petclinic-pro/internal/domain/repository"
)

var _ repository.PermissionRepository = (*PermissionRepo)(nil)

// PermissionRepo implementación del puerto PermissionRepository sobre PostgreSQL.
type PermissionRepo struct {
	pool *pgxpool.Pool
}

// NewPermissionRepository construye el adaptador de persistencia para permisos.
func NewPermissionRepository(pool *pgxpool.Pool) *PermissionRepo {
	return &PermissionRepo{pool: pool}
}

// Grant otorga los slugs al usuario. Idempotente: los ya otorgados se ignoran.
func (r *PermissionRepo) Grant(userID string, slugs []string) error {
	query := `
		INSERT INTO user_permissions (user_id, slug)
		VALUES ($1, $2)
		ON CONFLICT (user_id, slug) DO NOTHING`
	for _, slug := range slugs {
		if _, err := r.pool.Exec(context.Background(), query, userID, slug); err != nil {
			return fmt.Errorf("grant permission %s: %w", slug, err)
		}
	}
	return nil
}

// ListByUser devuelve los slugs otorgados a un usuario.
func (r *PermissionRepo) ListByUser(userID string) ([]string, error) {
	query := `SELECT slug FROM user_permissions WHERE user_id = $1 ORDER BY slug`
	rows, err := r.pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	defer rows.Close()
	var slugs []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		slugs = append(slugs, s)
	}
	return slugs, rows.Err()
}
