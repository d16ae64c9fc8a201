package entity

import "time"

// Roles válidos para User. El rol es un gate grueso; los permisos finos
// viven en la tabla user_permissions y viajan en el token JWT.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User representa un usuario de la clínica (dueño de sus pets).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // USER, ADMIN
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
