package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stampout-pos-api/internal/application/dto"
	"github.com/jhoicas/stampout-pos-api/internal/application/usecase"
)

// IdentificationTypeHandler maneja las peticiones HTTP del catálogo de
// tipos de identificación.
type IdentificationTypeHandler struct {
	uc *usecase.IdentificationTypeUseCase
}

// NewIdentificationTypeHandler construye el handler inyectando el caso de uso.
func NewIdentificationTypeHandler(uc *usecase.IdentificationTypeUseCase) *IdentificationTypeHandler {
	return &IdentificationTypeHandler{uc: uc}
}

// Create registra un nuevo tipo de identificación.
func (h *IdentificationTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIdentificationTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if ok, resp := checkBody(c, in); !ok {
		return resp
	}
	out, err := h.uc.Create(c.UserContext(), GetActor(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID devuelve un tipo de identificación por su identificador.
func (h *IdentificationTypeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List devuelve tipos de identificación paginados.
func (h *IdentificationTypeHandler) List(c *fiber.Ctx) error {
	var q dto.ListIdentificationTypesQuery
	if err := c.QueryParser(&q); err != nil {
		return badQuery(c)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update aplica una actualización parcial a un tipo de identificación.
func (h *IdentificationTypeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateIdentificationTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if ok, resp := checkBody(c, in); !ok {
		return resp
	}
	out, err := h.uc.Update(c.UserContext(), GetActor(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Remove desactiva un tipo de identificación.
func (h *IdentificationTypeHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
