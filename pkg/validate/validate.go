package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validador único para toda la aplicación; los DTOs declaran sus reglas con tags `validate:`.
var v = validator.New(validator.WithRequiredStructEnabled())

// Struct valida un DTO. Devuelve nil si pasa todas las reglas.
func Struct(s interface{}) error {
	return v.Struct(s)
}

// FieldErrors convierte las violaciones en mensajes por campo para la respuesta 400.
// Si el error no proviene del validador devuelve un único mensaje genérico.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["_"] = "entrada inválida"
		return out
	}
	for _, fe := range verrs {
		out[strings.ToLower(fe.Field())] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "min":
		return fmt.Sprintf("debe ser como mínimo %s", fe.Param())
	case "max":
		return fmt.Sprintf("debe ser como máximo %s", fe.Param())
	case "email":
		return "debe ser un email válido"
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", fe.Param())
	case "gt":
		return fmt.Sprintf("debe ser mayor que %s", fe.Param())
	case "gte":
		return fmt.Sprintf("debe ser mayor o igual a %s", fe.Param())
	default:
		return fmt.Sprintf("no cumple la regla %s", fe.Tag())
	}
}
