package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/geocatalog-api/internal/application/catalog"
	"github.com/jhoicas/geocatalog-api/internal/application/dto"
)

// MunicipalityHandler maneja las peticiones HTTP de municipios.
type MunicipalityHandler struct {
	uc *catalog.MunicipalityUseCase
}

// NewMunicipalityHandler construye el handler.
func NewMunicipalityHandler(uc *catalog.MunicipalityUseCase) *MunicipalityHandler {
	return &MunicipalityHandler{uc: uc}
}

// Create godoc
// @Summary      Crear municipio
// @Tags         municipalities
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMunicipalityRequest  true  "Municipio y estado"
// @Success      201   {object}  dto.MunicipalityResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/municipalities [post]
func (h *MunicipalityHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMunicipalityRequest
	if !bindBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/municipalities
func (h *MunicipalityHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener municipio con sus localidades
// @Tags         municipalities
// @Produce      json
// @Param        id   path  int  true  "ID del municipio"
// @Success      200  {object}  dto.MunicipalityDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/municipalities/{id} [get]
func (h *MunicipalityHandler) GetByID(c *fiber.Ctx) error {
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

// Update PUT /api/municipalities/:id
func (h *MunicipalityHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.UpdateMunicipalityRequest
	if !bindBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/municipalities/:id
func (h *MunicipalityHandler) Delete(c *fiber.Ctx) error {
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
