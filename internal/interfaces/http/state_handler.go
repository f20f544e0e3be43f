package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/geocatalog-api/internal/application/catalog"
	"github.com/jhoicas/geocatalog-api/internal/application/dto"
)

// StateHandler maneja las peticiones HTTP de estados.
type StateHandler struct {
	uc *catalog.StateUseCase
}

// NewStateHandler construye el handler.
func NewStateHandler(uc *catalog.StateUseCase) *StateHandler {
	return &StateHandler{uc: uc}
}

// Create godoc
// @Summary      Crear estado
// @Tags         states
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStateRequest  true  "Nombre del estado"
// @Success      201   {object}  dto.StateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/states [post]
func (h *StateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStateRequest
	if !bindBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar estados
// @Tags         states
// @Produce      json
// @Success      200  {array}  dto.StateResponse
// @Router       /api/states [get]
func (h *StateHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener estado con sus municipios
// @Tags         states
// @Produce      json
// @Param        id   path  int  true  "ID del estado"
// @Success      200  {object}  dto.StateDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/states/{id} [get]
func (h *StateHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar estado
// @Tags         states
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID del estado"
// @Param        body  body  dto.UpdateStateRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.StateResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/states/{id} [put]
func (h *StateHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.UpdateStateRequest
	if !bindBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar estado
// @Tags         states
// @Produce      json
// @Param        id   path  int  true  "ID del estado"
// @Success      200  {object}  dto.StateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/states/{id} [delete]
func (h *StateHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.Remove(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
