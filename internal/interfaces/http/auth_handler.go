package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stampout-pos-api/internal/application/auth"
	"github.com/jhoicas/stampout-pos-api/internal/application/dto"
)

// AuthHandler maneja las peticiones HTTP de autenticación.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler inyectando el caso de uso.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login verifica credenciales y devuelve token + perfil.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if ok, resp := checkBody(c, in); !ok {
		return resp
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Profile devuelve el perfil del actor autenticado.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	actor := GetActor(c)
	return c.JSON(dto.NewAuthUserResponse(actor))
}

// Validate confirma que el token sigue siendo válido. El middleware ya hizo
// el trabajo; llegar aquí es la confirmación.
func (h *AuthHandler) Validate(c *fiber.Ctx) error {
	actor := GetActor(c)
	return c.JSON(fiber.Map{
		"valid": true,
		"user":  dto.NewAuthUserResponse(actor),
	})
}

// Logout desactiva la sesión del token presentado.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	actor := GetActor(c)
	if err := h.uc.Logout(c.UserContext(), actor.ID, GetToken(c)); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "sesión cerrada"})
}
