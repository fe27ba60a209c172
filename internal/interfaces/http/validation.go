package http

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/club-deportivo-api/internal/application/dto"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Reporta el nombre JSON del campo, que es el que ve el cliente.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// parseAndValidate parsea el body JSON en dst y aplica los tags validate.
// Si falla, ya respondió 400 y devuelve ok=false.
func parseAndValidate(c *fiber.Ctx, dst any) (ok bool, err error) {
	if err := c.BodyParser(dst); err != nil {
		return false, badBody(c)
	}
	if fields := validateStruct(dst); len(fields) > 0 {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: fields[0].Message,
			Fields:  fields,
		})
	}
	return true, nil
}

func validateStruct(s any) []dto.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []dto.FieldError{{Message: err.Error()}}
	}
	out := make([]dto.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, dto.FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: mensajeValidacion(fe),
		})
	}
	return out
}

func mensajeValidacion(fe validator.FieldError) string {
	f := fe.Field()
	switch fe.Tag() {
	case "required":
		return f + " es requerido"
	case "min":
		return f + " debe tener al menos " + fe.Param() + " caracteres"
	case "max":
		return f + " debe tener como máximo " + fe.Param() + " caracteres"
	case "gt":
		return f + " debe ser mayor que " + fe.Param()
	case "gte":
		return f + " debe ser mayor o igual que " + fe.Param()
	case "oneof":
		return f + " debe ser uno de: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "datetime":
		return f + " debe tener formato AAAA-MM-DD"
	default:
		return f + " es inválido"
	}
}

// paramID lee un id numérico positivo de la ruta.
func paramID(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
}
