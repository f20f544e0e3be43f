package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/geocatalog-api/internal/application/catalog"
	"github.com/jhoicas/geocatalog-api/internal/application/dto"
)

// LocalityHandler maneja las peticiones HTTP de localidades.
type LocalityHandler struct {
	uc *catalog.LocalityUseCase
}

func NewLocalityHandler(uc *catalog.LocalityUseCase) *LocalityHandler {
	return &LocalityHandler{uc: uc}
}

// Create POST /api/localities
func (h *LocalityHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLocalityRequest
	if !bindBody(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/localities
func (h *LocalityHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/localities/:id
func (h *LocalityHandler) GetByID(c *fiber.Ctx) error {
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

// Update PUT /api/localities/:id
func (h *LocalityHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.UpdateLocalityRequest
	if !bindBody(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/localities/:id
func (h *LocalityHandler) Delete(c *fiber.Ctx) error {
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
