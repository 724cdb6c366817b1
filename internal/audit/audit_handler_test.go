package audit_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"cortesec-admin/internal/audit"
	"cortesec-admin/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeRecorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (f *fakeRecorder) Log(e audit.Event) {
	f.mu.Lock()
	f.events = append(f.events, e)
	f.mu.Unlock()
}

func newRouter(rec *fakeRecorder) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "7")
		c.Set(middleware.ContextTenantID, "t-1")
		c.Next()
	})
	api := r.Group("/api/v1")
	api.Use(audit.RecordMutations(rec))
	audit.RegisterRoutes(api, audit.NewHandler(rec))
	api.POST("/roles", func(c *gin.Context) { c.Status(http.StatusCreated) })
	api.PUT("/roles/:id", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	api.GET("/roles", func(c *gin.Context) { c.Status(http.StatusOK) })
	api.GET("/locations/export", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestAuditHandler_Ingest(t *testing.T) {
	t.Run("queues enriched events", func(t *testing.T) {
		rec := &fakeRecorder{}
		r := newRouter(rec)

		body := `{"events":[{"tipo_evento":"navigation","accion":"abrir roles","pagina":"/roles"},{"tipo_evento":"modal_open","accion":"nuevo rol"}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/audit/events", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", "test-agent")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusAccepted, w.Code)
		if assert.Len(t, rec.events, 2) {
			assert.Equal(t, audit.EventNavigation, rec.events[0].Tipo)
			assert.Equal(t, "7", rec.events[0].Usuario)
			assert.Equal(t, "t-1", rec.events[0].Tenant)
			assert.Equal(t, "test-agent", rec.events[1].UserAgent)
		}
	})

	t.Run("unknown type rejects the whole batch", func(t *testing.T) {
		rec := &fakeRecorder{}
		r := newRouter(rec)

		body := `{"events":[{"tipo_evento":"search","accion":"buscar"},{"tipo_evento":"scroll","accion":"x"}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/audit/events", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, rec.events)
	})

	t.Run("too many events", func(t *testing.T) {
		rec := &fakeRecorder{}
		r := newRouter(rec)

		events := make([]map[string]string, audit.MaxEventsPerRequest+1)
		for i := range events {
			events[i] = map[string]string{"tipo_evento": "custom", "accion": "x"}
		}
		payload, _ := json.Marshal(map[string]any{"events": events})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/audit/events", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Empty(t, rec.events)
	})
}

func TestRecordMutations(t *testing.T) {
	rec := &fakeRecorder{}
	r := newRouter(rec)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/v1/roles"},
		{http.MethodPut, "/api/v1/roles/3"},
		{http.MethodGet, "/api/v1/roles"},
		{http.MethodGet, "/api/v1/locations/export"},
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
	}

	if assert.Len(t, rec.events, 2) {
		assert.Equal(t, audit.EventFormSubmit, rec.events[0].Tipo)
		assert.Equal(t, "POST /api/v1/roles", rec.events[0].Accion)
		assert.Equal(t, audit.EventExport, rec.events[1].Tipo)
	}
}
