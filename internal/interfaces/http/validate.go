package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stampout-pos-api/internal/application/dto"
)

// validate instancia compartida del validador de structs.
var validate = validator.New()

// checkBody ejecuta las reglas `validate` del DTO y responde 400 con los
// campos rechazados cuando alguna falla. Devuelve true si el cuerpo es válido.
func checkBody(c *fiber.Ctx, in any) (bool, error) {
	err := validate.Struct(in)
	if err == nil {
		return true, nil
	}
	msg := "validación fallida"
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		msg = "validación fallida: " + strings.Join(fields, ", ")
	}
	return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
}
