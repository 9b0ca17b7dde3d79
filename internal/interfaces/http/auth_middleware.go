package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stampout-pos-api/internal/application/dto"
	"github.com/jhoicas/stampout-pos-api/internal/domain/entity"
	"github.com/jhoicas/stampout-pos-api/pkg/jwt"
)

// Locals keys del actor autenticado y el token presentado.
const (
	LocalActor = "actor"
	LocalToken = "token"
)

// ProfileResolver re-resuelve el perfil del usuario contra la base. Un perfil
// nil (cuenta inexistente o desactivada) corta con 401.
type ProfileResolver interface {
	Validate(ctx context.Context, userID string) (*entity.AuthUser, error)
}

// AuthMiddleware valida el Bearer token, revalida la cuenta contra la base y
// deja el actor en c.Locals.
func AuthMiddleware(jwtSecret string, resolver ProfileResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		payload, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		actor, err := resolver.Validate(c.UserContext(), payload.UserID)
		if err != nil {
			return writeError(c, err)
		}
		if actor == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "cuenta inexistente o desactivada"})
		}
		c.Locals(LocalActor, actor)
		c.Locals(LocalToken, tokenString)
		return c.Next()
	}
}

// GetActor devuelve el actor autenticado (después del middleware de auth).
func GetActor(c *fiber.Ctx) *entity.AuthUser {
	v := c.Locals(LocalActor)
	if v == nil {
		return nil
	}
	actor, _ := v.(*entity.AuthUser)
	return actor
}

// GetToken devuelve el token crudo presentado en la request.
func GetToken(c *fiber.Ctx) string {
	v := c.Locals(LocalToken)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
