package entity

// Slugs de permiso conocidos. Son datos explícitos por usuario: el rol ADMIN
// no implica ningún permiso por sí mismo.
const (
	PermPetRead        = "pet_read"
	PermPetCreate      = "pet_create"
	PermPetUpdate      = "pet_update"
	PermPetDelete      = "pet_delete"
	PermScheduleRead   = "schedule_read"
	PermScheduleCreate = "schedule_create"
	PermScheduleUpdate = "schedule_update"
	PermScheduleDelete = "schedule_delete"
	PermUserRead       = "user_read"
	PermAuditRead      = "audit_read"
)

// DefaultUserPermissions set básico que recibe un usuario al registrarse.
func DefaultUserPermissions() []string {
	return []string{
		PermPetRead, PermPetCreate, PermPetUpdate, PermPetDelete,
		PermScheduleRead, PermScheduleCreate, PermScheduleUpdate, PermScheduleDelete,
	}
}

// AllPermissions set completo, convencionalmente asignado al admin en el seed.
func AllPermissions() []string {
	return append(DefaultUserPermissions(), PermUserRead, PermAuditRead)
}
