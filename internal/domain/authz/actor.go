// Package authz implementa el control de acceso del núcleo: el chequeo
// grueso por rol y permisos (Authorize) y el chequeo fino por instancia
// (OwnerResolver). Son independientes y ambos obligatorios: pasar uno
// nunca sustituye al otro.
package authz

// Actor es la identidad resuelta de un request: quién es, su rol y sus
// permisos explícitos. Se construye desde los claims del JWT.
type Actor struct {
	UserID      string
	Role        string
	Permissions []string
}

// HasPermission verifica si el actor tiene el slug indicado.
func (a Actor) HasPermission(slug string) bool {
	for _, p := range a.Permissions {
		if p == slug {
			return true
		}
	}
	return false
}

// Requirement declara lo que una operación exige: todos los slugs listados
// (conjunción) y, opcionalmente, un rol exacto.
type Requirement struct {
	Permissions []string
	Role        string // vacío = cualquier rol
}
