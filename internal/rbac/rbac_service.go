package rbac

import (
	"sort"
	"strings"
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	ReloadPolicy() error
	Enforce(req EnforceRequest) (bool, error)
	Permissions(userID string, roles []string) ([]PermissionResponse, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

func NewService(enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{enforcer: enforcer, logger: l}
}

func (s *service) ReloadPolicy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enforcer.LoadPolicy(); err != nil {
		s.logger.Error("rbac reload policy failed", zap.Error(err))
		return err
	}
	s.logger.Info("rbac policy reloaded")
	return nil
}

// subjects returns the user id followed by the role codes, normalized.
func subjects(userID string, roles []string) []string {
	out := make([]string, 0, len(roles)+1)
	if userID != "" {
		out = append(out, userID)
	}
	for _, r := range roles {
		r = strings.ToUpper(strings.TrimSpace(r))
		if r != "" {
			out = append(out, r)
		}
	}
	return out
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sub := range subjects(req.UserID, req.Roles) {
		allowed, err := s.enforcer.Enforce(sub, req.Resource, req.Action)
		if err != nil {
			s.logger.Error("rbac enforce failed",
				zap.String("subject", sub),
				zap.String("resource", req.Resource),
				zap.String("action", req.Action),
				zap.Error(err),
			)
			return false, err
		}
		if allowed {
			s.logger.Debug("rbac enforce allowed",
				zap.String("user_id", req.UserID),
				zap.String("subject", sub),
				zap.String("resource", req.Resource),
				zap.String("action", req.Action),
			)
			return true, nil
		}
	}

	s.logger.Debug("rbac enforce denied",
		zap.String("user_id", req.UserID),
		zap.Strings("roles", req.Roles),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
	)
	return false, nil
}

func (s *service) Permissions(userID string, roles []string) ([]PermissionResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[PermissionResponse]struct{})
	for _, sub := range subjects(userID, roles) {
		perms, err := s.enforcer.GetImplicitPermissionsForUser(sub)
		if err != nil {
			return nil, err
		}
		for _, p := range perms {
			if len(p) < 3 {
				continue
			}
			seen[PermissionResponse{Resource: p[1], Action: p[2]}] = struct{}{}
		}
	}

	out := make([]PermissionResponse, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Resource != out[j].Resource {
			return out[i].Resource < out[j].Resource
		}
		return out[i].Action < out[j].Action
	})
	return out, nil
}
