package legalparam_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cortesec-admin/internal/legalparam"
	legalparamerrors "cortesec-admin/internal/legalparam/errors"
	legalparamMock "cortesec-admin/internal/legalparam/mock"
	"cortesec-admin/internal/shared/cache"
	"cortesec-admin/internal/shared/listing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupServiceTest(t *testing.T) (*legalparamMock.MockRepository, legalparam.Service) {
	ctrl := gomock.NewController(t)
	repo := legalparamMock.NewMockRepository(ctrl)
	loader := cache.NewLoader(cache.NewMemory(time.Minute), time.Minute)
	return repo, legalparam.NewService(repo, loader)
}

func strPtr(s string) *string { return &s }

func sampleLegalParameters() []legalparam.LegalParameter {
	return []legalparam.LegalParameter{
		{ID: "1", Codigo: "SALUD", Nombre: "Salud", PorcentajeEmpleado: "4.000", PorcentajeEmpleador: "8.500", PorcentajeTotal: "12.500",
			FechaInicioVigencia: "2024-01-01", FechaFinVigencia: strPtr("2024-12-31"), Activo: true},
		{ID: "2", Codigo: "PENSION", Nombre: "Pensión", PorcentajeEmpleado: "4.000", PorcentajeEmpleador: "12.000", PorcentajeTotal: "16.000",
			FechaInicioVigencia: "2023-01-01", FechaFinVigencia: strPtr("2023-12-31"), Activo: true},
	}
}

func payloadOf(t *testing.T, body any) map[string]any {
	t.Helper()
	raw, err := json.Marshal(body)
	assert.NoError(t, err)
	var m map[string]any
	assert.NoError(t, json.Unmarshal(raw, &m))
	return m
}

func TestLegalParamService_Create_ComputesTotal(t *testing.T) {
	repo, svc := setupServiceTest(t)
	ctx := context.Background()

	repo.EXPECT().FindAll(gomock.Any()).Return(sampleLegalParameters(), nil)
	repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, body any) (legalparam.LegalParameter, error) {
			m := payloadOf(t, body)
			assert.Equal(t, "12.500", m["porcentaje_total"])
			assert.Equal(t, "4.000", m["porcentaje_empleado"])
			assert.Equal(t, "8.500", m["porcentaje_empleador"])
			assert.Equal(t, "SALUD", m["codigo"])
			assert.Equal(t, true, m["activo"])
			return legalparam.LegalParameter{ID: "3", Codigo: "SALUD", PorcentajeTotal: "12.500", FechaInicioVigencia: "2025-01-01", Activo: true}, nil
		})

	res, err := svc.Create(ctx, legalparam.LegalParameterRequest{
		Codigo: "salud", Nombre: "Salud", PorcentajeEmpleado: 4, PorcentajeEmpleador: 8.5,
		FechaInicioVigencia: "2025-01-01",
	})

	assert.NoError(t, err)
	assert.Equal(t, json.Number("12.500"), res.PorcentajeTotal)
}

func TestLegalParamService_Create_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("end before start", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Create(ctx, legalparam.LegalParameterRequest{
			Codigo: "ARL", Nombre: "Riesgos", PorcentajeEmpleador: 0.522,
			FechaInicioVigencia: "2025-06-01", FechaFinVigencia: strPtr("2025-01-01"),
		})

		assert.ErrorIs(t, err, legalparamerrors.ErrInvalidDateRange)
	})

	t.Run("total above 100", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Create(ctx, legalparam.LegalParameterRequest{
			Codigo: "ARL", Nombre: "Riesgos", PorcentajeEmpleado: 60, PorcentajeEmpleador: 50,
			FechaInicioVigencia: "2025-01-01",
		})

		assert.ErrorIs(t, err, legalparamerrors.ErrTotalExceeded)
	})

	t.Run("overlapping window for same code", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		repo.EXPECT().FindAll(gomock.Any()).Return(sampleLegalParameters(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.Create(ctx, legalparam.LegalParameterRequest{
			Codigo: "SALUD", Nombre: "Salud", PorcentajeEmpleado: 4, PorcentajeEmpleador: 8.5,
			FechaInicioVigencia: "2024-07-01",
		})

		assert.ErrorIs(t, err, legalparamerrors.ErrOverlappingValidity)
	})
}

func TestLegalParamService_Update_IgnoresOwnWindow(t *testing.T) {
	repo, svc := setupServiceTest(t)
	ctx := context.Background()

	repo.EXPECT().FindByID(ctx, "1").Return(sampleLegalParameters()[0], nil)
	repo.EXPECT().FindAll(gomock.Any()).Return(sampleLegalParameters(), nil)
	repo.EXPECT().Update(ctx, "1", gomock.Any()).Return(sampleLegalParameters()[0], nil)

	_, err := svc.Update(ctx, "1", legalparam.LegalParameterRequest{
		Codigo: "SALUD", Nombre: "Salud", PorcentajeEmpleado: 4, PorcentajeEmpleador: 8.5,
		FechaInicioVigencia: "2024-01-01", FechaFinVigencia: strPtr("2024-12-31"),
	})

	assert.NoError(t, err)
}

func TestLegalParamService_List_Vigente(t *testing.T) {
	repo, svc := setupServiceTest(t)
	repo.EXPECT().FindAll(gomock.Any()).Return(sampleLegalParameters(), nil).Times(1)

	vigente := true
	items, meta, err := svc.List(context.Background(), legalparam.Filter{
		Query:   listing.Query{Page: 1, PageSize: 15},
		Vigente: &vigente,
		Fecha:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), meta.Total)
	assert.Equal(t, "SALUD", items[0].Codigo)
	assert.True(t, items[0].Vigente)

	vigente = false
	items, _, err = svc.List(context.Background(), legalparam.Filter{
		Query:   listing.Query{Page: 1, PageSize: 15},
		Vigente: &vigente,
		Fecha:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "PENSION", items[0].Codigo)
}

func TestLegalParamService_Total(t *testing.T) {
	_, svc := setupServiceTest(t)

	res := svc.Total(legalparam.TotalRequest{PorcentajeEmpleado: 4, PorcentajeEmpleador: 8.5})

	assert.Equal(t, "12.500", res.PorcentajeTotal)
}

func TestLegalParamService_Update_KeepsStoredActivo(t *testing.T) {
	repo, svc := setupServiceTest(t)
	ctx := context.Background()
	stored := sampleLegalParameters()[1]
	stored.Activo = false

	repo.EXPECT().FindByID(ctx, "2").Return(stored, nil)
	repo.EXPECT().FindAll(gomock.Any()).Times(0)
	repo.EXPECT().
		Update(ctx, "2", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, body any) (legalparam.LegalParameter, error) {
			assert.Equal(t, false, payloadOf(t, body)["activo"])
			return stored, nil
		})

	res, err := svc.Update(ctx, "2", legalparam.LegalParameterRequest{
		Codigo: "PENSION", Nombre: "Pensión obligatoria", PorcentajeEmpleado: 4, PorcentajeEmpleador: 12,
		FechaInicioVigencia: "2023-01-01", FechaFinVigencia: strPtr("2023-12-31"),
	})

	assert.NoError(t, err)
	assert.False(t, res.Activo)
}

func TestLegalParamService_ToggleActive(t *testing.T) {
	ctx := context.Background()

	t.Run("activating an overlapping window is rejected", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		dup := legalparam.LegalParameter{ID: "5", Codigo: "SALUD", Nombre: "Salud", PorcentajeTotal: "12.500",
			FechaInicioVigencia: "2024-06-01", Activo: false}
		repo.EXPECT().FindByID(ctx, "5").Return(dup, nil)
		repo.EXPECT().FindAll(gomock.Any()).Return(append(sampleLegalParameters(), dup), nil)
		repo.EXPECT().SetActive(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.ToggleActive(ctx, "5")

		assert.ErrorIs(t, err, legalparamerrors.ErrOverlappingValidity)
	})

	t.Run("activating a free window", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		next := legalparam.LegalParameter{ID: "6", Codigo: "SALUD", Nombre: "Salud", PorcentajeTotal: "12.500",
			FechaInicioVigencia: "2025-01-01", Activo: false}
		activated := next
		activated.Activo = true
		repo.EXPECT().FindByID(ctx, "6").Return(next, nil)
		repo.EXPECT().FindAll(gomock.Any()).Return(append(sampleLegalParameters(), next), nil)
		repo.EXPECT().SetActive(ctx, "6", true).Return(activated, nil)

		res, err := svc.ToggleActive(ctx, "6")

		assert.NoError(t, err)
		assert.True(t, res.Activo)
	})

	t.Run("deactivating skips the overlap check", func(t *testing.T) {
		repo, svc := setupServiceTest(t)
		salud := sampleLegalParameters()[0]
		repo.EXPECT().FindByID(ctx, "1").Return(salud, nil)
		repo.EXPECT().FindAll(gomock.Any()).Times(0)
		repo.EXPECT().SetActive(ctx, "1", false).Return(legalparam.LegalParameter{ID: "1", Activo: false}, nil)

		res, err := svc.ToggleActive(ctx, "1")

		assert.NoError(t, err)
		assert.False(t, res.Activo)
	})
}
