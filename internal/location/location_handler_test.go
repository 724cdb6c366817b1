package location_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"cortesec-admin/internal/location"
	"cortesec-admin/internal/shared/backend"
	"cortesec-admin/internal/shared/listing"
	"cortesec-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeLocationService struct {
	location.Service
	listMunicipalitiesFn func(ctx context.Context, q location.MunicipalityQuery) ([]location.Municipality, response.PaginationMeta, error)
}

func (f *fakeLocationService) ListMunicipalities(ctx context.Context, q location.MunicipalityQuery) ([]location.Municipality, response.PaginationMeta, error) {
	return f.listMunicipalitiesFn(ctx, q)
}

type fakeBulkService struct {
	validateFn func(ctx context.Context, content []byte) (location.ValidationReport, error)
	exportFn   func(ctx context.Context) (backend.File, error)
}

func (f *fakeBulkService) Template(ctx context.Context) ([]byte, error) {
	return location.BuildTemplate(nil)
}
func (f *fakeBulkService) Validate(ctx context.Context, content []byte) (location.ValidationReport, error) {
	return f.validateFn(ctx, content)
}
func (f *fakeBulkService) Import(ctx context.Context, filename string, content []byte) (location.ImportResult, error) {
	return location.ImportResult{}, nil
}
func (f *fakeBulkService) Export(ctx context.Context) (backend.File, error) {
	return f.exportFn(ctx)
}

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("archivo", filename)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/locations/validate", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestLocationHandler_ListMunicipalities(t *testing.T) {
	svc := &fakeLocationService{
		listMunicipalitiesFn: func(ctx context.Context, q location.MunicipalityQuery) ([]location.Municipality, response.PaginationMeta, error) {
			assert.Equal(t, "1", q.Departamento)
			assert.Equal(t, 2, q.Page)
			items, meta := listing.Paginate([]location.Municipality{{ID: "10"}}, 1, 15)
			return items, meta, nil
		},
	}

	h := location.NewHandler(svc, &fakeBulkService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/municipalities?departamento=1&page=2", nil)

	h.ListMunicipalities(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLocationHandler_Validate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		bulk := &fakeBulkService{
			validateFn: func(ctx context.Context, content []byte) (location.ValidationReport, error) {
				assert.Equal(t, []byte("xlsx-bytes"), content)
				return location.ValidationReport{Valido: true, Departamentos: 2}, nil
			},
		}

		h := location.NewHandler(&fakeLocationService{}, bulk)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = uploadRequest(t, "carga.xlsx", []byte("xlsx-bytes"))

		h.Validate(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var env struct {
			Ok   bool                      `json:"ok"`
			Data location.ValidationReport `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Data.Valido)
		assert.Equal(t, 2, env.Data.Departamentos)
	})

	t.Run("wrong extension", func(t *testing.T) {
		h := location.NewHandler(&fakeLocationService{}, &fakeBulkService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = uploadRequest(t, "carga.csv", []byte("a,b"))

		h.Validate(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing file", func(t *testing.T) {
		h := location.NewHandler(&fakeLocationService{}, &fakeBulkService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/locations/validate", nil)

		h.Validate(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLocationHandler_Export(t *testing.T) {
	bulk := &fakeBulkService{
		exportFn: func(ctx context.Context) (backend.File, error) {
			return backend.File{Name: "ubicaciones.xlsx", ContentType: location.XLSXContentType, Content: []byte("data")}, nil
		},
	}

	h := location.NewHandler(&fakeLocationService{}, bulk)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/locations/export", nil)

	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="ubicaciones.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "data", w.Body.String())
}
