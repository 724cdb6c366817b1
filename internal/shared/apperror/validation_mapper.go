package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.Spanish)
	return caser.String(s)
}

// MapValidationError turns binding errors into an AppError whose message
// describes the first failing field and whose details carry every field.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		fields := make(map[string][]string, len(errs))
		for _, fe := range errs {
			fields[fe.Field()] = append(fields[fe.Field()], fieldMessage(fe))
		}

		e := errs[0]
		humanReadableField := formatFieldName(e.Field())

		var appErr *AppError
		switch e.Tag() {
		case "required":
			appErr = RequiredField(humanReadableField)
		default:
			appErr = InvalidField(humanReadableField)
		}
		return appErr.WithDetails(map[string]any{"fields": fields})
	}

	return New(
		CodeInvalidInput,
		"Input inválido",
		http.StatusBadRequest,
	)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo es obligatorio"
	case "codigo":
		return "Use mayúsculas, números o guion bajo, iniciando con letra"
	case "dias_semana":
		return "Debe tener 7 caracteres entre 0 y 1"
	case "hhmm":
		return "Formato de hora HH:MM"
	case "email":
		return "Correo electrónico inválido"
	case "oneof":
		return "Valor no permitido: " + fe.Param()
	case "max":
		return "Máximo " + fe.Param()
	case "min":
		return "Mínimo " + fe.Param()
	default:
		return "Valor inválido"
	}
}
