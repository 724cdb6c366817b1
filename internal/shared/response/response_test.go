package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cortesec-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	meta := response.NewPaginationMeta(37, 3, 15)

	assert.Equal(t, 3, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	empty := response.NewPaginationMeta(0, 1, 15)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
	assert.False(t, empty.HasPrev)
}

func TestEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("error", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		response.Error(c, http.StatusConflict, "SYSTEM_PROTECTED", "No se puede", gin.H{"id": "1"})

		var body map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["ok"])
		assert.Equal(t, "SYSTEM_PROTECTED", body["error"].(map[string]any)["code"])
		assert.NotContains(t, body, "data")
	})

	t.Run("attachment", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		response.Attachment(c, "ubicaciones.xlsx", "application/octet-stream", []byte("PK"))

		assert.Equal(t, `attachment; filename="ubicaciones.xlsx"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "PK", w.Body.String())
	})
}
