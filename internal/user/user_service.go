package user

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"cortesec-admin/internal/shared/apperror"
	"cortesec-admin/internal/shared/contextutil"
	"cortesec-admin/internal/shared/response"
	usererrors "cortesec-admin/internal/user/errors"

	"go.uber.org/zap"
)

const optionsLimit = 20

// sortFields maps console sort keys to backend ordering fields.
var sortFields = map[string]string{
	"username":    "username",
	"email":       "email",
	"nombre":      "first_name",
	"apellido":    "last_name",
	"date_joined": "date_joined",
}

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, q ListQuery) ([]UserResponse, response.PaginationMeta, error)
	Options(ctx context.Context, search string) ([]UserOption, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, actorID, id string, req UpdateUserRequest) (UserResponse, error)
	ToggleStatus(ctx context.Context, actorID, id string) (UserResponse, error)
	Delete(ctx context.Context, actorID, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context, q ListQuery) ([]UserResponse, response.PaginationMeta, error) {
	l := contextutil.GetLogger(ctx, zap.L()).Named("user.service")

	query := url.Values{}
	query.Set("page", strconv.Itoa(q.Page))
	query.Set("page_size", strconv.Itoa(q.PageSize))
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.Active != nil {
		query.Set("is_active", strconv.FormatBool(*q.Active))
	}
	if q.SortBy != "" {
		field, ok := sortFields[q.SortBy]
		if !ok {
			return nil, response.PaginationMeta{}, usererrors.ErrInvalidSort
		}
		if q.SortDir == "desc" {
			field = "-" + field
		}
		query.Set("ordering", field)
	}

	page, err := s.repo.FindPage(ctx, query)
	if err != nil {
		l.Error("failed to list users", zap.Error(err))
		return nil, response.PaginationMeta{}, err
	}

	res := make([]UserResponse, len(page.Results))
	for i, u := range page.Results {
		res[i] = mapToResponse(u)
	}
	return res, response.NewPaginationMeta(page.Count, q.Page, q.PageSize), nil
}

// Options returns at most optionsLimit active users matching search.
func (s *service) Options(ctx context.Context, search string) ([]UserOption, error) {
	query := url.Values{}
	query.Set("page", "1")
	query.Set("page_size", strconv.Itoa(optionsLimit))
	query.Set("is_active", "true")
	if search = strings.TrimSpace(search); search != "" {
		query.Set("search", search)
	}

	page, err := s.repo.FindPage(ctx, query)
	if err != nil {
		return nil, err
	}

	opts := make([]UserOption, 0, len(page.Results))
	for _, u := range page.Results {
		if !u.IsActive {
			continue
		}
		opts = append(opts, UserOption{ID: u.ID.String(), Username: u.Username, FullName: u.DisplayName()})
		if len(opts) == optionsLimit {
			break
		}
	}
	return opts, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	u, err := s.find(ctx, id)
	if err != nil {
		return UserResponse{}, err
	}
	return mapToResponse(u), nil
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, zap.L()).Named("user.service")

	l.Info("creating user", zap.String("username", req.Username))

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.IsActive == nil {
		active := true
		req.IsActive = &active
	}

	u, err := s.repo.Create(ctx, req)
	if err != nil {
		l.Error("failed to create user", zap.Error(err))
		return UserResponse{}, err
	}

	l.Info("user created successfully", zap.String("user_id", u.ID.String()))
	return mapToResponse(u), nil
}

func (s *service) Update(ctx context.Context, actorID, id string, req UpdateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, zap.L()).Named("user.service")

	if req.IsActive != nil && !*req.IsActive && actorID == id {
		return UserResponse{}, usererrors.ErrSelfDeactivation
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	u, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		l.Error("failed to update user", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, err
	}
	return mapToResponse(u), nil
}

func (s *service) ToggleStatus(ctx context.Context, actorID, id string) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, zap.L()).Named("user.service")

	u, err := s.find(ctx, id)
	if err != nil {
		l.Error("failed to find user", zap.Error(err))
		return UserResponse{}, err
	}
	if u.IsActive && actorID == id {
		return UserResponse{}, usererrors.ErrSelfDeactivation
	}

	updated, err := s.repo.SetActive(ctx, id, !u.IsActive)
	if err != nil {
		l.Error("failed to update user status", zap.Error(err))
		return UserResponse{}, err
	}
	return mapToResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return usererrors.ErrSelfDelete
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return usererrors.ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *service) find(ctx context.Context, id string) (User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return User{}, usererrors.ErrUserNotFound
		}
		return User{}, err
	}
	return u, nil
}

func mapToResponse(u User) UserResponse {
	return UserResponse{User: u, FullName: u.DisplayName()}
}
