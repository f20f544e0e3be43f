package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/geocatalog-api/internal/application/catalog"
	"github.com/jhoicas/geocatalog-api/internal/application/dto"
)

// AddressHandler maneja las peticiones HTTP de direcciones.
// Las respuestas de lectura incluyen la cadena Localidad → Municipio → Estado.
type AddressHandler struct {
	uc *catalog.AddressUseCase
}

// NewAddressHandler construye el handler.
func NewAddressHandler(uc *catalog.AddressUseCase) *AddressHandler {
	return &AddressHandler{uc: uc}
}

// Create godoc
// @Summary      Crear dirección
// @Tags         address
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAddressRequest  true  "Datos de la dirección"
// @Success      201   {object}  dto.AddressView
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/address [post]
func (h *AddressHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAddressRequest
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
// @Summary      Listar direcciones proyectadas
// @Tags         address
// @Produce      json
// @Success      200  {array}  dto.AddressView
// @Router       /api/address [get]
func (h *AddressHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener dirección proyectada
// @Tags         address
// @Produce      json
// @Param        id   path  int  true  "ID de la dirección"
// @Success      200  {object}  dto.AddressView
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/address/{id} [get]
func (h *AddressHandler) GetByID(c *fiber.Ctx) error {
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

// Update PUT /api/address/:id
func (h *AddressHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.UpdateAddressRequest
	if !bindBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/address/:id
func (h *AddressHandler) Delete(c *fiber.Ctx) error {
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
