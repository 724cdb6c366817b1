package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"cortesec-admin/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestAppError_IsSurvivesWithDetails(t *testing.T) {
	sentinel := apperror.New(apperror.CodeConflict, "Ya existe", http.StatusConflict)
	withDetails := sentinel.WithDetails(map[string]any{"codigo": "X"})

	assert.True(t, errors.Is(withDetails, sentinel))
	assert.True(t, errors.Is(fmt.Errorf("create: %w", withDetails), sentinel))
	assert.Nil(t, sentinel.Details)
}

func TestWrap(t *testing.T) {
	assert.Nil(t, apperror.Wrap(nil, apperror.CodeInternalError, "x", 500))

	cause := errors.New("dial tcp: refused")
	err := apperror.Wrap(cause, apperror.CodeServiceUnavailable, "Sin conexión", http.StatusServiceUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Sin conexión: dial tcp: refused", err.Error())
	assert.True(t, apperror.HasCode(err, apperror.CodeServiceUnavailable))
}

func TestToHTTP(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.ErrSystemProtected.WithDetails("x"))
		assert.Equal(t, http.StatusConflict, got.Status)
		assert.Equal(t, apperror.CodeSystemProtected, got.Code)
		assert.Equal(t, "x", got.Details)
	})

	t.Run("unknown error", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
	})
}

type roleForm struct {
	Codigo string `json:"codigo" validate:"required,codigo"`
	Nombre string `json:"nombre_rol" validate:"required"`
	Dias   string `json:"dias" validate:"dias_semana"`
}

func TestMapValidationError(t *testing.T) {
	v := validator.New()
	apperror.Register(v)

	err := apperror.MapValidationError(v.Struct(roleForm{Codigo: "admin", Dias: "1234567"}))

	var appErr *apperror.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, apperror.CodeValidation, appErr.Code)
		assert.Equal(t, "Codigo no es válido", appErr.Message)
		fields := appErr.Details.(map[string]any)["fields"].(map[string][]string)
		assert.Equal(t, []string{"Este campo es obligatorio"}, fields["nombre_rol"])
		assert.Equal(t, []string{"Debe tener 7 caracteres entre 0 y 1"}, fields["dias"])
	}

	t.Run("non validation error", func(t *testing.T) {
		err := apperror.MapValidationError(errors.New("invalid character"))
		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidInput))
	})
}

func TestValidCodigo(t *testing.T) {
	assert.True(t, apperror.ValidCodigo("ADMIN_RRHH"))
	assert.False(t, apperror.ValidCodigo("admin"))
	assert.False(t, apperror.ValidCodigo("A"))
}
