package handler

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator adapts go-playground/validator to echo's Validator interface.
// Field names in error details come from json tags so clients see the
// names they sent.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds the request validator used by all handlers.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// validationDetails flattens validator errors into the structured list
// returned alongside 400 responses on schema violations.
func validationDetails(err error) []echo.Map {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []echo.Map{{"message": err.Error()}}
	}
	out := make([]echo.Map, 0, len(verrs))
	for _, fe := range verrs {
		detail := echo.Map{"field": fe.Field(), "rule": fe.Tag()}
		if fe.Param() != "" {
			detail["param"] = fe.Param()
		}
		out = append(out, detail)
	}
	return out
}
