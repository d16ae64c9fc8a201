package authz

import (
	"fmt"
	"strings"

	"github.com/vetcare/petclinic-pro/internal/domain"
)

// Authorize evalúa si el actor puede ejecutar una operación con los
// requisitos declarados. Función pura: sin efectos, sin acceso a storage.
//
//   - Sin permisos requeridos y sin rol → permitido.
//   - Rol requerido distinto al del actor → domain.ErrForbidden.
//   - Falta cualquiera de los slugs requeridos → domain.ErrForbidden
//     nombrando los permisos exigidos. La conjunción es estricta: un set
//     parcial no autoriza.
//
// ADMIN no recibe trato especial: los permisos son datos explícitos por
// usuario, no una consecuencia del rol.
func Authorize(actor Actor, req Requirement) error {
	if req.Role != "" && actor.Role != req.Role {
		return fmt.Errorf("%w: requiere rol %s", domain.ErrForbidden, req.Role)
	}
	for _, slug := range req.Permissions {
		if !actor.HasPermission(slug) {
			return fmt.Errorf("%w: requiere permisos [%s]",
				domain.ErrForbidden, strings.Join(req.Permissions, ", "))
		}
	}
	return nil
}
