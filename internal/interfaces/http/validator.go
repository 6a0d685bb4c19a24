package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator valida la forma de los bodies y queries antes de llegar a los casos de uso.
type RequestValidator struct {
	v *validator.Validate
}

// NewRequestValidator crea el validador; los errores usan el nombre del tag json o query.
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		return name
	})
	return &RequestValidator{v: v}
}

// Validate devuelve un mensaje legible con el primer campo inválido, o "" si todo está bien.
func (rv *RequestValidator) Validate(s any) string {
	err := rv.v.Struct(s)
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "datos inválidos"
	}
	e := verrs[0]
	return fmt.Sprintf("%s: %s", e.Namespace()[strings.Index(e.Namespace(), ".")+1:], validationMessage(e))
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "campo requerido"
	case "min":
		if e.Kind() == reflect.String {
			return "mínimo " + e.Param() + " caracteres"
		}
		if e.Kind() == reflect.Slice {
			return "mínimo " + e.Param() + " elementos"
		}
		return "debe ser al menos " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "máximo " + e.Param() + " caracteres"
		}
		return "debe ser como máximo " + e.Param()
	case "gt":
		return "debe ser mayor que " + e.Param()
	case "alphanum":
		return "solo letras y números"
	case "datetime":
		return "formato de fecha " + e.Param()
	case "nefield":
		return "debe ser distinto de " + e.Param()
	default:
		return "valor inválido"
	}
}
