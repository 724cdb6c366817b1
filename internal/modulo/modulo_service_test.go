package modulo_test

import (
	"context"
	"testing"
	"time"

	"cortesec-admin/internal/modulo"
	moduloerrors "cortesec-admin/internal/modulo/errors"
	moduloMock "cortesec-admin/internal/modulo/mock"
	"cortesec-admin/internal/shared/apperror"
	"cortesec-admin/internal/shared/cache"
	"cortesec-admin/internal/shared/listing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupServiceTest(t *testing.T) (*moduloMock.MockRepository, modulo.Service) {
	ctrl := gomock.NewController(t)
	repo := moduloMock.NewMockRepository(ctrl)
	loader := cache.NewLoader(cache.NewMemory(time.Minute), time.Minute)
	return repo, modulo.NewService(repo, loader)
}

func TestModuleService_OrderAndMenu(t *testing.T) {
	repo, svc := setupServiceTest(t)
	ctx := context.Background()

	repo.EXPECT().FindAll(gomock.Any()).Return([]modulo.Module{
		{ID: "3", Codigo: "NOMINA", Nombre: "Nómina", Orden: 3, Activo: true},
		{ID: "1", Codigo: "SEGURIDAD", Nombre: "Seguridad", Orden: 1, Activo: true},
		{ID: "2", Codigo: "CONFIG", Nombre: "Configuración", Orden: 1, Activo: false},
	}, nil).Times(1)

	items, meta, err := svc.GetAll(ctx, listing.Query{Page: 1, PageSize: 15})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), meta.Total)
	assert.Equal(t, []string{"CONFIG", "SEGURIDAD", "NOMINA"}, []string{items[0].Codigo, items[1].Codigo, items[2].Codigo})

	menu, err := svc.Menu(ctx)
	assert.NoError(t, err)
	assert.Len(t, menu, 2)
	assert.Equal(t, "SEGURIDAD", menu[0].Codigo)
}

func TestModuleService_ToggleActive(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindByID(ctx, "1").Return(modulo.Module{ID: "1", Activo: false}, nil)
		repo.EXPECT().SetActive(ctx, "1", true).Return(modulo.Module{ID: "1", Activo: true}, nil)

		m, err := svc.ToggleActive(ctx, "1")

		assert.NoError(t, err)
		assert.True(t, m.Activo)
	})

	t.Run("not found", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindByID(ctx, "7").Return(modulo.Module{}, apperror.ErrNotFound)

		_, err := svc.ToggleActive(ctx, "7")

		assert.ErrorIs(t, err, moduloerrors.ErrModuleNotFound)
	})
}

func TestModuleService_Create_Normalizes(t *testing.T) {
	repo, svc := setupServiceTest(t)

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req modulo.ModuleRequest) (modulo.Module, error) {
			assert.Equal(t, "REPORTES", req.Codigo)
			assert.Equal(t, "chart", req.Icono)
			return modulo.Module{ID: "9", Codigo: req.Codigo}, nil
		})

	_, err := svc.Create(context.Background(), modulo.ModuleRequest{Codigo: "reportes ", Nombre: "Reportes", Icono: " chart "})
	assert.NoError(t, err)
}

func TestModuleService_Update_KeepsStoredActivo(t *testing.T) {
	ctx := context.Background()

	t.Run("omitted activo reads the stored value", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindByID(ctx, "2").Return(modulo.Module{ID: "2", Codigo: "CONFIG", Activo: false}, nil)
		repo.EXPECT().
			Update(ctx, "2", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req modulo.ModuleRequest) (modulo.Module, error) {
				if assert.NotNil(t, req.Activo) {
					assert.False(t, *req.Activo)
				}
				return modulo.Module{ID: "2", Codigo: "CONFIG", Nombre: "Configuración general"}, nil
			})

		m, err := svc.Update(ctx, "2", modulo.ModuleRequest{Codigo: "config", Nombre: "Configuración general"})

		assert.NoError(t, err)
		assert.False(t, m.Activo)
	})

	t.Run("missing record", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindByID(ctx, "9").Return(modulo.Module{}, apperror.ErrNotFound)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Update(ctx, "9", modulo.ModuleRequest{Codigo: "X", Nombre: "X"})

		assert.ErrorIs(t, err, moduloerrors.ErrModuleNotFound)
	})
}
