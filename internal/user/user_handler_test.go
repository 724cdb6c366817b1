package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cortesec-admin/internal/middleware"
	"cortesec-admin/internal/shared/response"
	"cortesec-admin/internal/user"
	usererrors "cortesec-admin/internal/user/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeUserService struct {
	getAllFn func(ctx context.Context, q user.ListQuery) ([]user.UserResponse, response.PaginationMeta, error)
	createFn func(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)
	toggleFn func(ctx context.Context, actorID, id string) (user.UserResponse, error)
}

func (f *fakeUserService) GetAll(ctx context.Context, q user.ListQuery) ([]user.UserResponse, response.PaginationMeta, error) {
	return f.getAllFn(ctx, q)
}
func (f *fakeUserService) Options(ctx context.Context, search string) ([]user.UserOption, error) {
	return nil, nil
}
func (f *fakeUserService) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	return user.UserResponse{}, nil
}
func (f *fakeUserService) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeUserService) Update(ctx context.Context, actorID, id string, req user.UpdateUserRequest) (user.UserResponse, error) {
	return user.UserResponse{}, nil
}
func (f *fakeUserService) ToggleStatus(ctx context.Context, actorID, id string) (user.UserResponse, error) {
	return f.toggleFn(ctx, actorID, id)
}
func (f *fakeUserService) Delete(ctx context.Context, actorID, id string) error {
	return nil
}

func TestUserHandler_GetAll_Sort(t *testing.T) {
	svc := &fakeUserService{
		getAllFn: func(ctx context.Context, q user.ListQuery) ([]user.UserResponse, response.PaginationMeta, error) {
			assert.Equal(t, "email", q.SortBy)
			assert.Equal(t, "desc", q.SortDir)
			assert.Equal(t, "ana", q.Search)
			return []user.UserResponse{}, response.NewPaginationMeta(0, 1, 15), nil
		},
	}

	h := user.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/users?sort_by=Email&sort_dir=DESC&search=ana", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserHandler_Create_Validation(t *testing.T) {
	h := user.NewHandler(&fakeUserService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"username":"ana","email":"no-es-correo","first_name":"Ana","last_name":"Ruiz","password":"x"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var env map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, false, env["ok"])
}

func TestUserHandler_ToggleStatus_Self(t *testing.T) {
	svc := &fakeUserService{
		toggleFn: func(ctx context.Context, actorID, id string) (user.UserResponse, error) {
			assert.Equal(t, "3", actorID)
			return user.UserResponse{}, usererrors.ErrSelfDeactivation
		},
	}

	h := user.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPatch, "/users/3/status", nil)
	c.Params = gin.Params{{Key: "id", Value: "3"}}
	c.Set(middleware.ContextUserID, "3")

	h.ToggleStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
