package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vetcare/petclinic-pro/internal/application/dto"
	"github.com/vetcare/petclinic-pro/internal/application/usecase"
)

// AuditHandler maneja la consulta de auditoría (solo ADMIN + audit_read;
// el gate vive en el use case).
type AuditHandler struct {
	uc *usecase.AuditUseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *usecase.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      Listar logs de auditoría (más reciente primero)
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        user_id  query  string  false  "Filtrar por usuario"
// @Param        limit    query  int     false  "Límite"  default(20)
// @Param        offset   query  int     false  "Offset"  default(0)
// @Success      200      {object}  dto.AuditListResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Router       /api/audit [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(GetActor(c), c.Query("user_id"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
