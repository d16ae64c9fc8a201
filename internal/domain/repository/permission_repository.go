package repository

// PermissionRepository define el puerto de persistencia para los permisos
// por usuario. Los slugs otorgados se leen en el login y viajan en el JWT.
type PermissionRepository interface {
	Grant(userID string, slugs []string) error
	ListByUser(userID string) ([]string, error)
}
