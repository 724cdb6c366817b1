package parameter_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cortesec-admin/internal/parameter"
	parametererrors "cortesec-admin/internal/parameter/errors"
	parameterMock "cortesec-admin/internal/parameter/mock"
	"cortesec-admin/internal/shared/apperror"
	"cortesec-admin/internal/shared/cache"
	"cortesec-admin/internal/shared/listing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupServiceTest(t *testing.T) (*parameterMock.MockRepository, parameter.Service) {
	ctrl := gomock.NewController(t)
	repo := parameterMock.NewMockRepository(ctrl)
	loader := cache.NewLoader(cache.NewMemory(time.Minute), time.Minute)
	return repo, parameter.NewService(repo, loader)
}

func sampleParameters() []parameter.Parameter {
	return []parameter.Parameter{
		{ID: "1", Codigo: "SMTP_HOST", Nombre: "Servidor SMTP", Categoria: "EMAIL", TipoDato: parameter.TypeString, Valor: "smtp.local", Activo: true},
		{ID: "2", Codigo: "SMTP_PUERTO", Nombre: "Puerto SMTP", Categoria: "EMAIL", TipoDato: parameter.TypeInteger, Valor: "25", Activo: true},
		{ID: "3", Codigo: "MAX_INTENTOS", Nombre: "Intentos de login", Categoria: "SEGURIDAD", TipoDato: parameter.TypeInteger, Valor: "5", EsSistema: true, Activo: true},
		{ID: "4", Codigo: "MFA", Nombre: "Doble factor", Categoria: "SEGURIDAD", TipoDato: parameter.TypeBoolean, Valor: "false", Activo: false},
	}
}

func TestParameterService_List(t *testing.T) {
	repo, svc := setupServiceTest(t)
	repo.EXPECT().FindAll(gomock.Any()).Return(sampleParameters(), nil).Times(1)

	items, meta, err := svc.List(context.Background(), parameter.Filter{
		Query:     listing.Query{Page: 1, PageSize: 15},
		Categoria: "email",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), meta.Total)
	assert.Equal(t, int64(25), items[1].ValorTipado)
}

func TestParameterService_Settings_GroupsActive(t *testing.T) {
	repo, svc := setupServiceTest(t)
	repo.EXPECT().FindAll(gomock.Any()).Return(sampleParameters(), nil)

	groups, err := svc.Settings(context.Background(), "")

	assert.NoError(t, err)
	assert.Len(t, groups, 2)
	assert.Equal(t, "EMAIL", groups[0].Categoria)
	assert.Equal(t, "SMTP_HOST", groups[0].Parametros[0].Codigo)
	assert.Equal(t, "SEGURIDAD", groups[1].Categoria)
	assert.Len(t, groups[1].Parametros, 1)
}

func TestParameterService_SaveSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid value blocks every write", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindAll(gomock.Any()).Return(sampleParameters(), nil)
		repo.EXPECT().SetValue(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.SaveSettings(ctx, "email", parameter.SettingsRequest{Valores: map[string]string{
			"SMTP_HOST":   "smtp.empresa.com",
			"SMTP_PUERTO": "veinticinco",
		}})

		assert.ErrorIs(t, err, parametererrors.ErrInvalidValue)
		details := apperror.ToHTTP(err).Details.(map[string]any)
		assert.Contains(t, details["fields"], "SMTP_PUERTO")
	})

	t.Run("unknown code", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindAll(gomock.Any()).Return(sampleParameters(), nil)

		_, err := svc.SaveSettings(ctx, "EMAIL", parameter.SettingsRequest{Valores: map[string]string{"MAX_INTENTOS": "3"}})

		assert.ErrorIs(t, err, parametererrors.ErrUnknownParameter)
	})

	t.Run("only changed values are patched", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindAll(gomock.Any()).Return(sampleParameters(), nil)
		repo.EXPECT().SetValue(gomock.Any(), "2", "587").Return(parameter.Parameter{ID: "2", Codigo: "SMTP_PUERTO", TipoDato: parameter.TypeInteger, Valor: "587"}, nil)

		res, err := svc.SaveSettings(ctx, "EMAIL", parameter.SettingsRequest{Valores: map[string]string{
			"SMTP_HOST":   "smtp.local",
			"smtp_puerto": " 587 ",
		}})

		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "SMTP_HOST", res[0].Codigo)
		assert.Equal(t, int64(587), res[1].ValorTipado)
	})

	t.Run("backend failure", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindAll(gomock.Any()).Return(sampleParameters(), nil)
		repo.EXPECT().SetValue(gomock.Any(), "2", "26").Return(parameter.Parameter{}, errors.New("backend down"))

		_, err := svc.SaveSettings(ctx, "EMAIL", parameter.SettingsRequest{Valores: map[string]string{"SMTP_PUERTO": "26"}})

		assert.Error(t, err)
	})
}

func TestParameterService_SystemProtection(t *testing.T) {
	ctx := context.Background()
	system := sampleParameters()[2]

	t.Run("delete blocked", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindByID(ctx, "3").Return(system, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		err := svc.Delete(ctx, "3")

		assert.ErrorIs(t, err, parametererrors.ErrSystemParameterDelete)
		assert.Equal(t, apperror.CodeSystemProtected, apperror.ToHTTP(err).Code)
	})

	t.Run("type change blocked", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindByID(ctx, "3").Return(system, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Update(ctx, "3", parameter.ParameterRequest{
			Codigo: "MAX_INTENTOS", Nombre: "Intentos", Categoria: "SEGURIDAD", TipoDato: parameter.TypeDecimal, Valor: "5",
		})

		assert.ErrorIs(t, err, parametererrors.ErrSystemParameterImmutable)
	})

	t.Run("value change allowed", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindByID(ctx, "3").Return(system, nil)
		repo.EXPECT().Update(ctx, "3", gomock.Any()).Return(parameter.Parameter{ID: "3", Codigo: "MAX_INTENTOS", TipoDato: parameter.TypeInteger, Valor: "3"}, nil)

		res, err := svc.Update(ctx, "3", parameter.ParameterRequest{
			Codigo: "MAX_INTENTOS", Nombre: "Intentos", Categoria: "seguridad", TipoDato: parameter.TypeInteger, Valor: "3",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(3), res.ValorTipado)
	})

	t.Run("toggle off blocked", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindByID(ctx, "3").Return(system, nil)
		repo.EXPECT().SetActive(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.ToggleActive(ctx, "3")

		assert.ErrorIs(t, err, parametererrors.ErrSystemParameterDeactivate)
		assert.Equal(t, apperror.CodeSystemProtected, apperror.ToHTTP(err).Code)
	})

	t.Run("inactive system record can be switched back on", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		inactive := system
		inactive.Activo = false
		repo.EXPECT().FindByID(ctx, "3").Return(inactive, nil)
		repo.EXPECT().SetActive(ctx, "3", true).Return(system, nil)

		res, err := svc.ToggleActive(ctx, "3")

		assert.NoError(t, err)
		assert.True(t, res.Activo)
	})

	t.Run("update with activo false blocked", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		off := false
		repo.EXPECT().FindByID(ctx, "3").Return(system, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Update(ctx, "3", parameter.ParameterRequest{
			Codigo: "MAX_INTENTOS", Nombre: "Intentos", Categoria: "SEGURIDAD", TipoDato: parameter.TypeInteger, Valor: "5", Activo: &off,
		})

		assert.ErrorIs(t, err, parametererrors.ErrSystemParameterDeactivate)
	})
}

func TestParameterService_Update_KeepsStoredActivo(t *testing.T) {
	ctx := context.Background()
	repo, svc := setupServiceTest(t)
	mfa := sampleParameters()[3]

	repo.EXPECT().FindByID(ctx, "4").Return(mfa, nil)
	repo.EXPECT().
		Update(ctx, "4", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req parameter.ParameterRequest) (parameter.Parameter, error) {
			if assert.NotNil(t, req.Activo) {
				assert.False(t, *req.Activo)
			}
			return mfa, nil
		})

	res, err := svc.Update(ctx, "4", parameter.ParameterRequest{
		Codigo: "MFA", Nombre: "Doble factor obligatorio", Categoria: "SEGURIDAD", TipoDato: parameter.TypeBoolean, Valor: "false",
	})

	assert.NoError(t, err)
	assert.False(t, res.Activo)
}

func TestParameterService_Create_RejectsMistypedValue(t *testing.T) {
	repo, svc := setupServiceTest(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Create(context.Background(), parameter.ParameterRequest{
		Codigo: "FECHA_CORTE", Nombre: "Fecha de corte", Categoria: "GENERAL", TipoDato: parameter.TypeDate, Valor: "mañana",
	})

	assert.ErrorIs(t, err, parametererrors.ErrInvalidValue)
}
