package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vetcare/petclinic-pro/internal/application/dto"
	"github.com/vetcare/petclinic-pro/internal/application/usecase"
)

// PetHandler maneja las peticiones HTTP para Pet (protegido).
type PetHandler struct {
	uc *usecase.PetUseCase
}

// NewPetHandler construye el handler.
func NewPetHandler(uc *usecase.PetUseCase) *PetHandler {
	return &PetHandler{uc: uc}
}

// Create godoc
// @Summary      Crear mascota
// @Tags         pets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePetRequest  true  "Datos de la mascota"
// @Success      201   {object}  dto.PetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/pets [post]
func (h *PetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Species == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y species son requeridos"})
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar mascotas del usuario autenticado
// @Tags         pets
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.PetListResponse
// @Failure      403     {object}  dto.ErrorResponse
// @Router       /api/pets [get]
func (h *PetHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	out, err := h.uc.List(GetActor(c), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener mascota por ID
// @Tags         pets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la mascota"
// @Success      200  {object}  dto.PetResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pets/{id} [get]
func (h *PetHandler) GetByID(c *fiber.Ctx) error {
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
// @Summary      Actualizar mascota (parcial)
// @Tags         pets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la mascota"
// @Param        body  body  dto.UpdatePetRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.PetResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/pets/{id} [patch]
func (h *PetHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdatePetRequest
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
// @Summary      Eliminar mascota
// @Tags         pets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la mascota"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pets/{id} [delete]
func (h *PetHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(GetActor(c), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "mascota eliminada"})
}
