package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stampout-pos-api/internal/application/dto"
	"github.com/jhoicas/stampout-pos-api/internal/application/usecase"
)

// SubcategoryHandler maneja las peticiones HTTP de subcategorías de producto.
type SubcategoryHandler struct {
	uc *usecase.SubcategoryUseCase
}

// NewSubcategoryHandler construye el handler inyectando el caso de uso.
func NewSubcategoryHandler(uc *usecase.SubcategoryUseCase) *SubcategoryHandler {
	return &SubcategoryHandler{uc: uc}
}

// Create registra una nueva subcategoría en la compañía del actor.
func (h *SubcategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSubcategoryRequest
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

// GetByID devuelve una subcategoría por su identificador.
func (h *SubcategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List devuelve subcategorías paginadas de la compañía del actor.
func (h *SubcategoryHandler) List(c *fiber.Ctx) error {
	var q dto.ListSubcategoriesQuery
	if err := c.QueryParser(&q); err != nil {
		return badQuery(c)
	}
	out, err := h.uc.List(c.UserContext(), GetActor(c), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update aplica una actualización parcial a una subcategoría.
func (h *SubcategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSubcategoryRequest
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

// Remove desactiva una subcategoría.
func (h *SubcategoryHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
