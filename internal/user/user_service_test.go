package user_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"cortesec-admin/internal/shared/apperror"
	"cortesec-admin/internal/shared/backend"
	"cortesec-admin/internal/user"
	usererrors "cortesec-admin/internal/user/errors"
	mock_user "cortesec-admin/internal/user/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*mock_user.MockRepository, user.Service) {
	ctrl := gomock.NewController(t)
	mockRepo := mock_user.NewMockRepository(ctrl)
	svc := user.NewService(mockRepo)
	return mockRepo, svc
}

func TestUserService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success forwards paging and ordering", func(t *testing.T) {
		mockRepo, svc := setup(t)

		mockRepo.EXPECT().
			FindPage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q url.Values) (backend.Page[user.User], error) {
				assert.Equal(t, "3", q.Get("page"))
				assert.Equal(t, "15", q.Get("page_size"))
				assert.Equal(t, "-email", q.Get("ordering"))
				assert.Equal(t, "false", q.Get("is_active"))
				return backend.Page[user.User]{
					Count:   37,
					Results: []user.User{{ID: "31", Username: "jdoe", FirstName: "John", LastName: "Doe"}},
				}, nil
			})

		inactive := false
		res, meta, err := svc.GetAll(ctx, user.ListQuery{Page: 3, PageSize: 15, Active: &inactive, SortBy: "email", SortDir: "desc"})

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "John Doe", res[0].FullName)
		assert.Equal(t, 3, meta.TotalPages)
		assert.False(t, meta.HasNext)
	})

	t.Run("unknown sort field", func(t *testing.T) {
		mockRepo, svc := setup(t)
		mockRepo.EXPECT().FindPage(gomock.Any(), gomock.Any()).Times(0)

		_, _, err := svc.GetAll(ctx, user.ListQuery{Page: 1, PageSize: 15, SortBy: "password"})

		assert.ErrorIs(t, err, usererrors.ErrInvalidSort)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo, svc := setup(t)
		mockRepo.EXPECT().FindPage(gomock.Any(), gomock.Any()).Return(backend.Page[user.User]{}, errors.New("db down"))

		_, _, err := svc.GetAll(ctx, user.ListQuery{Page: 1, PageSize: 15})

		assert.Error(t, err)
	})
}

func TestUserService_Options(t *testing.T) {
	mockRepo, svc := setup(t)

	mockRepo.EXPECT().
		FindPage(gomock.Any(), gomock.Any()).
		Return(backend.Page[user.User]{Results: []user.User{
			{ID: "1", Username: "ana", FirstName: "Ana", IsActive: true},
			{ID: "2", Username: "old", IsActive: false},
		}}, nil)

	opts, err := svc.Options(context.Background(), " an ")

	assert.NoError(t, err)
	assert.Equal(t, []user.UserOption{{ID: "1", Username: "ana", FullName: "Ana"}}, opts)
}

func TestUserService_Create(t *testing.T) {
	mockRepo, svc := setup(t)

	mockRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req user.CreateUserRequest) (user.User, error) {
			assert.Equal(t, "ana@empresa.com", req.Email)
			assert.True(t, *req.IsActive)
			return user.User{ID: "5", Username: req.Username, Email: req.Email, IsActive: true}, nil
		})

	res, err := svc.Create(context.Background(), user.CreateUserRequest{
		Username: "ana", Email: " Ana@Empresa.com ", FirstName: "Ana", LastName: "Ruiz", Password: "secreta123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "ana@empresa.com", res.Email)
}

func TestUserService_ToggleStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo, svc := setup(t)
		mockRepo.EXPECT().FindByID(ctx, "7").Return(user.User{ID: "7", IsActive: true}, nil)
		mockRepo.EXPECT().SetActive(ctx, "7", false).Return(user.User{ID: "7", IsActive: false}, nil)

		res, err := svc.ToggleStatus(ctx, "1", "7")

		assert.NoError(t, err)
		assert.False(t, res.IsActive)
	})

	t.Run("self deactivation blocked", func(t *testing.T) {
		mockRepo, svc := setup(t)
		mockRepo.EXPECT().FindByID(ctx, "1").Return(user.User{ID: "1", IsActive: true}, nil)
		mockRepo.EXPECT().SetActive(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.ToggleStatus(ctx, "1", "1")

		assert.ErrorIs(t, err, usererrors.ErrSelfDeactivation)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo, svc := setup(t)
		mockRepo.EXPECT().FindByID(ctx, "9").Return(user.User{}, apperror.New(apperror.CodeNotFound, "No encontrado.", http.StatusNotFound))

		_, err := svc.ToggleStatus(ctx, "1", "9")

		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("self delete blocked", func(t *testing.T) {
		mockRepo, svc := setup(t)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		assert.ErrorIs(t, svc.Delete(context.Background(), "4", "4"), usererrors.ErrSelfDelete)
	})

	t.Run("success", func(t *testing.T) {
		mockRepo, svc := setup(t)
		mockRepo.EXPECT().Delete(gomock.Any(), "8").Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "4", "8"))
	})
}
