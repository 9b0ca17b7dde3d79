package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stampout-pos-api/internal/application/dto"
	"github.com/jhoicas/stampout-pos-api/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP de compañías.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Create registra una nueva compañía.
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
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

// GetByID devuelve una compañía por su identificador.
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetActor(c), c.Params("id"), c.QueryBool("includeStats"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List devuelve compañías paginadas con filtros opcionales.
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	var q dto.ListCompaniesQuery
	if err := c.QueryParser(&q); err != nil {
		return badQuery(c)
	}
	out, err := h.uc.List(c.UserContext(), GetActor(c), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update aplica una actualización parcial a una compañía.
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
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

// Remove desactiva una compañía.
func (h *CompanyHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.UserContext(), GetActor(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
