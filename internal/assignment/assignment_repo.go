package assignment

import (
	"context"

	"cortesec-admin/internal/shared/backend"
)

const assignmentsPath = "/api/roles/asignaciones/"

//go:generate mockgen -source=assignment_repo.go -destination=mock/assignment_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Assignment, error)
	FindByID(ctx context.Context, id string) (Assignment, error)
	Create(ctx context.Context, req CreateAssignmentRequest) (Assignment, error)
	Approve(ctx context.Context, id string, req ApproveRequest) (Assignment, error)
	Reject(ctx context.Context, id, motivo string) (Assignment, error)
	Revoke(ctx context.Context, id, motivo string) (Assignment, error)
}

type repository struct {
	assignments *backend.Resource[Assignment]
}

func NewRepository(client *backend.Client) Repository {
	return &repository{assignments: backend.NewResource[Assignment](client, assignmentsPath)}
}

func (r *repository) FindAll(ctx context.Context) ([]Assignment, error) {
	return r.assignments.List(ctx, nil)
}

func (r *repository) FindByID(ctx context.Context, id string) (Assignment, error) {
	return r.assignments.Get(ctx, id)
}

func (r *repository) Create(ctx context.Context, req CreateAssignmentRequest) (Assignment, error) {
	return r.assignments.Create(ctx, req)
}

func (r *repository) Approve(ctx context.Context, id string, req ApproveRequest) (Assignment, error) {
	return r.assignments.Action(ctx, id, ActionApprove, req)
}

func (r *repository) Reject(ctx context.Context, id, motivo string) (Assignment, error) {
	return r.assignments.Action(ctx, id, ActionReject, MotiveRequest{Motivo: motivo})
}

func (r *repository) Revoke(ctx context.Context, id, motivo string) (Assignment, error) {
	return r.assignments.Action(ctx, id, ActionRevoke, MotiveRequest{Motivo: motivo})
}
