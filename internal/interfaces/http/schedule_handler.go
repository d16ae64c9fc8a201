package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vetcare/petclinic-pro/internal/application/dto"
	"github.com/vetcare/petclinic-pro/internal/application/usecase"
)

// ScheduleHandler maneja las peticiones HTTP para Schedule (protegido).
type ScheduleHandler struct {
	uc        *usecase.ScheduleUseCase
	voucherUC *usecase.VoucherUseCase
}

// NewScheduleHandler construye el handler.
func NewScheduleHandler(uc *usecase.ScheduleUseCase, voucherUC *usecase.VoucherUseCase) *ScheduleHandler {
	return &ScheduleHandler{uc: uc, voucherUC: voucherUC}
}

// Create godoc
// @Summary      Crear agendamiento
// @Tags         schedules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateScheduleRequest  true  "Datos del agendamiento"
// @Success      201   {object}  dto.ScheduleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/schedules [post]
func (h *ScheduleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateScheduleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.PetID == "" || in.Service == "" || in.Date.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "pet_id, date y service son requeridos"})
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar agendamientos del usuario autenticado
// @Tags         schedules
// @Security     Bearer
// @Produce      json
// @Param        date     query  string  false  "Filtrar por día (YYYY-MM-DD)"
// @Param        service  query  string  false  "Filtrar por servicio"
// @Param        limit    query  int     false  "Límite"  default(20)
// @Param        offset   query  int     false  "Offset"  default(0)
// @Success      200      {object}  dto.ScheduleListResponse
// @Failure      403      {object}  dto.ErrorResponse
// @Router       /api/schedules [get]
func (h *ScheduleHandler) List(c *fiber.Ctx) error {
	in := dto.ListSchedulesRequest{
		Date:    c.Query("date"),
		Service: c.Query("service"),
		PageRequest: dto.PageRequest{
			Limit:  c.QueryInt("limit", 20),
			Offset: c.QueryInt("offset", 0),
		},
	}
	out, err := h.uc.List(GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener agendamiento por ID
// @Tags         schedules
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del agendamiento"
// @Success      200  {object}  dto.ScheduleResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/schedules/{id} [get]
func (h *ScheduleHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(GetActor(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar agendamiento (parcial)
// @Description  Un cambio de status dispara auditoría y webhook; la auditoría
// @Description  es obligatoria, el webhook es best-effort.
// @Tags         schedules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del agendamiento"
// @Param        body  body  dto.UpdateScheduleRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ScheduleResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/schedules/{id} [patch]
func (h *ScheduleHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateScheduleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetActor(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar agendamiento
// @Tags         schedules
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del agendamiento"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/schedules/{id} [delete]
func (h *ScheduleHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(GetActor(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "agendamiento eliminado"})
}

// Voucher godoc
// @Summary      Descargar comprobante PDF del agendamiento
// @Tags         schedules
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del agendamiento"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/schedules/{id}/voucher [get]
func (h *ScheduleHandler) Voucher(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	pdfBytes, err := h.voucherUC.Generate(GetActor(c), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="comprobante-`+id+`.pdf"`)
	return c.Send(pdfBytes)
}
