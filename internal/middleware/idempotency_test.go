package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cortesec-admin/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

const (
	idempKey  = "idemp:/roles:9:abc"
	idempLock = idempKey + ":lock"
)

func idempotencyRouter(t *testing.T) (*gin.Engine, redismock.ClientMock, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, mock := redismock.NewClientMock()

	calls := 0
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "9")
		c.Next()
	})
	r.Use(middleware.Idempotency(db))
	r.POST("/roles", func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"ok": true, "data": gin.H{"id": 1}})
	})
	return r, mock, &calls
}

func postRoles() *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/roles", nil)
	req.Header.Set("Idempotency-Key", "abc")
	return req
}

func TestIdempotency(t *testing.T) {
	t.Run("first request runs and stores the answer", func(t *testing.T) {
		r, mock, calls := idempotencyRouter(t)
		mock.ExpectGet(idempKey).RedisNil()
		mock.ExpectSetNX(idempLock, "locked", 30*time.Second).SetVal(true)
		mock.ExpectSet(idempKey, []byte(`{"data":{"id":1},"ok":true}`), 24*time.Hour).SetVal("OK")
		mock.ExpectDel(idempLock).SetVal(1)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, postRoles())

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replay returns the stored answer", func(t *testing.T) {
		r, mock, calls := idempotencyRouter(t)
		mock.ExpectGet(idempKey).SetVal(`{"ok":true,"data":{"id":1}}`)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, postRoles())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replay"))
		assert.JSONEq(t, `{"ok":true,"data":{"id":1}}`, w.Body.String())
		assert.Equal(t, 0, *calls)
	})

	t.Run("concurrent duplicate gets conflict", func(t *testing.T) {
		r, mock, calls := idempotencyRouter(t)
		mock.ExpectGet(idempKey).RedisNil()
		mock.ExpectSetNX(idempLock, "locked", 30*time.Second).SetVal(false)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, postRoles())

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, *calls)
	})

	t.Run("requests without key pass through", func(t *testing.T) {
		r, _, calls := idempotencyRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/roles", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, *calls)
	})
}
