package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stampout-pos-api/internal/application/dto"
	"github.com/jhoicas/stampout-pos-api/internal/application/usecase"
)

// TaxHandler maneja las peticiones HTTP de impuestos.
type TaxHandler struct {
	uc *usecase.TaxUseCase
}

// NewTaxHandler construye el handler inyectando el caso de uso.
func NewTaxHandler(uc *usecase.TaxUseCase) *TaxHandler {
	return &TaxHandler{uc: uc}
}

// Create registra un nuevo impuesto en la compañía del actor.
func (h *TaxHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaxRequest
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

// GetByID devuelve un impuesto por su identificador.
func (h *TaxHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List devuelve impuestos paginados de la compañía del actor.
func (h *TaxHandler) List(c *fiber.Ctx) error {
	var q dto.ListTaxesQuery
	if err := c.QueryParser(&q); err != nil {
		return badQuery(c)
	}
	out, err := h.uc.List(c.UserContext(), GetActor(c), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update aplica una actualización parcial a un impuesto.
func (h *TaxHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTaxRequest
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

// Remove elimina un impuesto de forma permanente.
func (h *TaxHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
