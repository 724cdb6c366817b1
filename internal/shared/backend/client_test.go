package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cortesec-admin/internal/shared/apperror"
	"cortesec-admin/internal/shared/backend"
	"cortesec-admin/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
)

type item struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

func newClient(t *testing.T, srv *httptest.Server) *backend.Client {
	t.Helper()
	c, err := backend.NewClient(srv.URL, 2*time.Second)
	assert.NoError(t, err)
	return c
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := backend.NewClient("localhost", time.Second)
	assert.Error(t, err)
}

func TestClient_ForwardsSessionHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "tenant-9", r.Header.Get("X-Tenant-ID"))
		assert.Equal(t, "rid-1", r.Header.Get("X-Request-ID"))
		assert.Equal(t, "/api/roles/tipos-rol/7/", r.URL.Path)
		_ = json.NewEncoder(w).Encode(item{ID: 7, Nombre: "Operativo"})
	}))
	defer srv.Close()

	ctx := contextutil.WithAccessToken(context.Background(), "tok-1")
	ctx = contextutil.WithTenantID(ctx, "tenant-9")
	ctx = contextutil.WithRequestID(ctx, "rid-1")

	res := backend.NewResource[item](newClient(t, srv), "/api/roles/tipos-rol")
	got, err := res.Get(ctx, "7")

	assert.NoError(t, err)
	assert.Equal(t, "Operativo", got.Nombre)
}

func TestDecodeList(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		page, err := backend.DecodeList[item](json.RawMessage(`[{"id":1},{"id":2}]`))
		assert.NoError(t, err)
		assert.Len(t, page.Results, 2)
		assert.EqualValues(t, 2, page.Count)
		assert.True(t, page.Bare)
	})

	t.Run("paginated object", func(t *testing.T) {
		page, err := backend.DecodeList[item](json.RawMessage(`{"count":40,"next":"http://x/?page=2","previous":null,"results":[{"id":1}]}`))
		assert.NoError(t, err)
		assert.EqualValues(t, 40, page.Count)
		assert.Len(t, page.Results, 1)
		assert.NotNil(t, page.Next)
		assert.False(t, page.Bare)
	})

	t.Run("single page object is not bare", func(t *testing.T) {
		page, err := backend.DecodeList[item](json.RawMessage(`{"count":2,"next":null,"previous":null,"results":[{"id":1},{"id":2}]}`))
		assert.NoError(t, err)
		assert.False(t, page.Bare)
	})

	t.Run("empty body", func(t *testing.T) {
		page, err := backend.DecodeList[item](nil)
		assert.NoError(t, err)
		assert.Empty(t, page.Results)
	})
}

func TestResource_ListFollowsNext(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			_, _ = w.Write([]byte(`{"count":3,"next":null,"results":[{"id":3}]}`))
			return
		}
		next := srv.URL + "/api/configuracion/cargos/?page=2"
		_, _ = w.Write([]byte(`{"count":3,"next":"` + next + `","results":[{"id":1},{"id":2}]}`))
	}))
	defer srv.Close()

	res := backend.NewResource[item](newClient(t, srv), "/api/configuracion/cargos/")
	items, err := res.List(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, 3, items[2].ID)
}

func TestResource_ActionPostsToDetailPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/roles/asignaciones/12/rechazar/", r.URL.Path)

		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "duplicada", body["motivo"])
		_, _ = w.Write([]byte(`{"id":12,"nombre":"x"}`))
	}))
	defer srv.Close()

	res := backend.NewResource[item](newClient(t, srv), "/api/roles/asignaciones/")
	_, err := res.Action(context.Background(), "12", "rechazar", map[string]string{"motivo": "duplicada"})
	assert.NoError(t, err)
}

func TestClient_ErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		status     int
		body       string
		wantCode   string
		wantStatus int
		wantMsg    string
		wantFields bool
	}{
		{"detail message", http.StatusForbidden, `{"detail":"No autorizado para esta acción"}`, apperror.CodeForbidden, http.StatusForbidden, "No autorizado para esta acción", false},
		{"field errors", http.StatusBadRequest, `{"codigo":["Ya existe un rol con este código"]}`, apperror.CodeValidation, http.StatusBadRequest, "Revise los campos marcados", true},
		{"non field errors", http.StatusBadRequest, `{"non_field_errors":["Fechas inválidas"]}`, apperror.CodeValidation, http.StatusBadRequest, "Fechas inválidas", false},
		{"html body", http.StatusInternalServerError, `<html>boom</html>`, apperror.CodeBackendError, http.StatusBadGateway, backend.GenericErrorMessage, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			err := newClient(t, srv).Get(context.Background(), "/api/x/", nil, nil)

			var appErr *apperror.AppError
			assert.True(t, errors.As(err, &appErr))
			assert.Equal(t, tc.wantCode, appErr.Code)
			assert.Equal(t, tc.wantStatus, appErr.HTTPStatus)
			assert.Equal(t, tc.wantMsg, appErr.Message)
			if tc.wantFields {
				details, ok := appErr.Details.(map[string]any)
				assert.True(t, ok)
				assert.Contains(t, details["fields"], "codigo")
			}
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := newClient(t, srv)
	srv.Close()

	err := c.Get(context.Background(), "/api/x/", nil, nil)

	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeServiceUnavailable, appErr.Code)
}

func TestClient_Download(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="ubicaciones.xlsx"`)
		_, _ = w.Write([]byte("PK..."))
	}))
	defer srv.Close()

	f, err := newClient(t, srv).Download(context.Background(), "/api/configuracion/ubicaciones/exportar/", nil)

	assert.NoError(t, err)
	assert.Equal(t, "ubicaciones.xlsx", f.Name)
	assert.True(t, strings.HasPrefix(string(f.Content), "PK"))
}

func TestFieldSummary(t *testing.T) {
	got := backend.FieldSummary(map[string][]string{
		"nombre": {"requerido"},
		"codigo": {"duplicado", "muy largo"},
	})
	assert.Equal(t, "codigo: duplicado, muy largo; nombre: requerido", got)
}
