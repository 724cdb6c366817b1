package auditerrors

import (
	"net/http"

	"cortesec-admin/internal/shared/apperror"
)

var (
	ErrInvalidEventType = apperror.New(
		apperror.CodeValidation,
		"Tipo de evento no reconocido",
		http.StatusBadRequest,
	)

	ErrTooManyEvents = apperror.New(
		apperror.CodeValidation,
		"Demasiados eventos en una sola solicitud",
		http.StatusRequestEntityTooLarge,
	)
)
