package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stampout-pos-api/internal/application/dto"
	"github.com/jhoicas/stampout-pos-api/internal/application/usecase"
)

// PersonHandler maneja las peticiones HTTP de personas.
type PersonHandler struct {
	uc *usecase.PersonUseCase
}

// NewPersonHandler construye el handler inyectando el caso de uso.
func NewPersonHandler(uc *usecase.PersonUseCase) *PersonHandler {
	return &PersonHandler{uc: uc}
}

// Create registra una nueva persona.
func (h *PersonHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePersonRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if ok, resp := checkBody(c, in); !ok {
		return resp
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID devuelve una persona por su identificador.
func (h *PersonHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List devuelve personas paginadas con filtros opcionales.
func (h *PersonHandler) List(c *fiber.Ctx) error {
	var q dto.ListPersonsQuery
	if err := c.QueryParser(&q); err != nil {
		return badQuery(c)
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update aplica una actualización parcial a una persona.
func (h *PersonHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePersonRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if ok, resp := checkBody(c, in); !ok {
		return resp
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Remove desactiva una persona.
func (h *PersonHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
