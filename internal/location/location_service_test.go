package location_test

import (
	"context"
	"io"
	"testing"
	"time"

	"cortesec-admin/internal/location"
	locationerrors "cortesec-admin/internal/location/errors"
	locationMock "cortesec-admin/internal/location/mock"
	"cortesec-admin/internal/shared/apperror"
	"cortesec-admin/internal/shared/cache"
	"cortesec-admin/internal/shared/listing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupService(t *testing.T) (*locationMock.MockRepository, location.Service, location.BulkService) {
	ctrl := gomock.NewController(t)
	repo := locationMock.NewMockRepository(ctrl)
	loader := cache.NewLoader(cache.NewMemory(time.Minute), time.Minute)
	return repo, location.NewService(repo, loader), location.NewBulkService(repo, loader)
}

func sampleMunicipalities() []location.Municipality {
	return []location.Municipality{
		{ID: "10", Codigo: "05001", Nombre: "Medellín", Departamento: "1", DepartamentoNombre: "Antioquia", Activo: true},
		{ID: "11", Codigo: "05088", Nombre: "Bello", Departamento: "1", DepartamentoNombre: "Antioquia", Activo: false},
		{ID: "20", Codigo: "08001", Nombre: "Barranquilla", Departamento: "2", DepartamentoNombre: "Atlántico", Activo: true},
	}
}

func TestLocationService_ListMunicipalities_ByDepartment(t *testing.T) {
	repo, svc, _ := setupService(t)
	ctx := context.Background()

	repo.EXPECT().FindMunicipalities(gomock.Any()).Return(sampleMunicipalities(), nil).Times(1)

	items, meta, err := svc.ListMunicipalities(ctx, location.MunicipalityQuery{
		Query:        listing.Query{Page: 1, PageSize: 15},
		Departamento: "1",
	})
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(2), meta.Total)

	active := true
	items, _, err = svc.ListMunicipalities(ctx, location.MunicipalityQuery{
		Query: listing.Query{Page: 1, PageSize: 15, Search: "ATLÁN", Active: &active},
	})
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Barranquilla", items[0].Nombre)
}

func TestLocationService_DeleteDepartment(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked while municipalities reference it", func(t *testing.T) {
		repo, svc, _ := setupService(t)
		repo.EXPECT().FindMunicipalities(gomock.Any()).Return(sampleMunicipalities(), nil)
		repo.EXPECT().DeleteDepartment(gomock.Any(), gomock.Any()).Times(0)

		err := svc.DeleteDepartment(ctx, "2")

		assert.ErrorIs(t, err, locationerrors.ErrDepartmentInUse)
	})

	t.Run("deleted when unused", func(t *testing.T) {
		repo, svc, _ := setupService(t)
		repo.EXPECT().FindMunicipalities(gomock.Any()).Return(sampleMunicipalities(), nil)
		repo.EXPECT().DeleteDepartment(ctx, "3").Return(nil)

		assert.NoError(t, svc.DeleteDepartment(ctx, "3"))
	})

	t.Run("backend not found", func(t *testing.T) {
		repo, svc, _ := setupService(t)
		repo.EXPECT().FindMunicipalities(gomock.Any()).Return(nil, nil)
		repo.EXPECT().DeleteDepartment(ctx, "9").Return(apperror.ErrNotFound)

		assert.ErrorIs(t, svc.DeleteDepartment(ctx, "9"), locationerrors.ErrDepartmentNotFound)
	})
}

func TestLocationService_CreateMunicipality(t *testing.T) {
	ctx := context.Background()

	t.Run("inactive department rejected", func(t *testing.T) {
		repo, svc, _ := setupService(t)
		repo.EXPECT().FindDepartmentByID(ctx, "4").Return(location.Department{ID: "4", Activo: false}, nil)
		repo.EXPECT().CreateMunicipality(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.CreateMunicipality(ctx, location.MunicipalityRequest{Codigo: "44001", Nombre: "Riohacha", Departamento: "4"})

		assert.ErrorIs(t, err, locationerrors.ErrDepartmentInactive)
	})

	t.Run("success", func(t *testing.T) {
		repo, svc, _ := setupService(t)
		repo.EXPECT().FindDepartmentByID(ctx, "1").Return(location.Department{ID: "1", Activo: true}, nil)
		repo.EXPECT().
			CreateMunicipality(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, req location.MunicipalityRequest) (location.Municipality, error) {
				assert.Equal(t, "05266", req.Codigo)
				assert.True(t, *req.Activo)
				return location.Municipality{ID: "12", Codigo: req.Codigo, Nombre: req.Nombre, Departamento: "1", Activo: true}, nil
			})

		m, err := svc.CreateMunicipality(ctx, location.MunicipalityRequest{Codigo: " 05266 ", Nombre: "Envigado", Departamento: "1"})

		assert.NoError(t, err)
		assert.Equal(t, "Envigado", m.Nombre)
	})
}

func TestLocationService_ToggleDepartment(t *testing.T) {
	repo, svc, _ := setupService(t)
	ctx := context.Background()

	repo.EXPECT().FindDepartmentByID(ctx, "1").Return(location.Department{ID: "1", Activo: true}, nil)
	repo.EXPECT().SetDepartmentActive(ctx, "1", false).Return(location.Department{ID: "1", Activo: false}, nil)

	d, err := svc.ToggleDepartment(ctx, "1")

	assert.NoError(t, err)
	assert.False(t, d.Activo)
}

func TestBulkService_Import(t *testing.T) {
	ctx := context.Background()
	known := []location.Department{{ID: "1", Codigo: "05", Nombre: "Antioquia", Activo: true}}

	t.Run("invalid workbook never reaches the backend", func(t *testing.T) {
		repo, _, bulk := setupService(t)
		repo.EXPECT().FindDepartments(gomock.Any()).Return(known, nil)
		repo.EXPECT().Import(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		content := workbook(t, nil, [][]string{{"99001", "Huérfano", "99"}})
		_, err := bulk.Import(ctx, "carga.xlsx", content)

		assert.ErrorIs(t, err, locationerrors.ErrInvalidWorkbook)
		report := apperror.ToHTTP(err).Details.(location.ValidationReport)
		assert.Len(t, report.Errores, 1)
	})

	t.Run("valid workbook is forwarded", func(t *testing.T) {
		repo, _, bulk := setupService(t)
		repo.EXPECT().FindDepartments(gomock.Any()).Return(known, nil)
		repo.EXPECT().
			Import(ctx, "carga.xlsx", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, r io.Reader) (location.ImportResult, error) {
				data, err := io.ReadAll(r)
				assert.NoError(t, err)
				assert.NotEmpty(t, data)
				return location.ImportResult{Creados: 1}, nil
			})

		content := workbook(t, nil, [][]string{{"05001", "Medellín", "05"}})
		res, err := bulk.Import(ctx, "carga.xlsx", content)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Creados)
	})

	t.Run("unreadable upload", func(t *testing.T) {
		repo, _, bulk := setupService(t)
		repo.EXPECT().FindDepartments(gomock.Any()).Return(known, nil)

		_, err := bulk.Import(ctx, "carga.xlsx", []byte("not a zip"))

		assert.ErrorIs(t, err, locationerrors.ErrUnreadableWorkbook)
	})
}

func TestLocationService_Update_KeepsStoredActivo(t *testing.T) {
	ctx := context.Background()

	t.Run("department", func(t *testing.T) {
		repo, svc, _ := setupService(t)
		repo.EXPECT().FindDepartmentByID(ctx, "1").Return(location.Department{ID: "1", Codigo: "05", Activo: false}, nil)
		repo.EXPECT().
			UpdateDepartment(ctx, "1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req location.DepartmentRequest) (location.Department, error) {
				if assert.NotNil(t, req.Activo) {
					assert.False(t, *req.Activo)
				}
				return location.Department{ID: "1", Codigo: "05", Nombre: "Antioquia"}, nil
			})

		_, err := svc.UpdateDepartment(ctx, "1", location.DepartmentRequest{Codigo: "05", Nombre: "Antioquia"})

		assert.NoError(t, err)
	})

	t.Run("municipality", func(t *testing.T) {
		repo, svc, _ := setupService(t)
		repo.EXPECT().FindMunicipalityByID(ctx, "7").Return(location.Municipality{ID: "7", Codigo: "05001", Departamento: "1", Activo: false}, nil)
		repo.EXPECT().
			UpdateMunicipality(ctx, "7", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req location.MunicipalityRequest) (location.Municipality, error) {
				if assert.NotNil(t, req.Activo) {
					assert.False(t, *req.Activo)
				}
				return location.Municipality{ID: "7", Codigo: "05001", Nombre: "Medellín", Departamento: "1"}, nil
			})

		_, err := svc.UpdateMunicipality(ctx, "7", location.MunicipalityRequest{Codigo: "05001", Nombre: "Medellín", Departamento: "1"})

		assert.NoError(t, err)
	})
}
