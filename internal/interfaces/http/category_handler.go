package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stampout-pos-api/internal/application/dto"
	"github.com/jhoicas/stampout-pos-api/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP de categorías de producto.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler inyectando el caso de uso.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create registra una nueva categoría en la compañía del actor.
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
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

// GetByID devuelve una categoría por su identificador.
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetActor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List devuelve categorías paginadas de la compañía del actor.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	var q dto.ListCategoriesQuery
	if err := c.QueryParser(&q); err != nil {
		return badQuery(c)
	}
	out, err := h.uc.List(c.UserContext(), GetActor(c), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update aplica una actualización parcial a una categoría.
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
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

// Remove desactiva una categoría.
func (h *CategoryHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
