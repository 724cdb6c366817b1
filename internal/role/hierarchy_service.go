package role

import (
	"context"
	"strings"

	roleerrors "cortesec-admin/internal/role/errors"
	"cortesec-admin/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=hierarchy_service.go -destination=mock/hierarchy_service_mock.go -package=mock
type HierarchyService interface {
	View(ctx context.Context, userID string) (HierarchyView, error)
	Toggle(ctx context.Context, userID, nodeID string) (HierarchyView, error)
	ExpandAll(ctx context.Context, userID string) (HierarchyView, error)
	CollapseAll(ctx context.Context, userID string) (HierarchyView, error)
}

type hierarchyService struct {
	repo   Repository
	store  ExpansionStore
	logger *zap.Logger
}

func NewHierarchyService(repo Repository, store ExpansionStore, logger ...*zap.Logger) HierarchyService {
	l := zap.L().Named("role.hierarchy")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("role.hierarchy")
	}
	return &hierarchyService{repo: repo, store: store, logger: l}
}

func expandedKey(ctx context.Context, userID string) string {
	tenant := contextutil.GetTenantID(ctx)
	if tenant == "" {
		tenant = "default"
	}
	return "roles:hierarchy:expanded:" + tenant + ":" + userID
}

func (s *hierarchyService) View(ctx context.Context, userID string) (HierarchyView, error) {
	tree, err := s.repo.Hierarchy(ctx)
	if err != nil {
		s.logger.Error("fetch role hierarchy failed", zap.Error(err))
		return HierarchyView{}, err
	}
	return s.build(ctx, userID, tree)
}

func (s *hierarchyService) Toggle(ctx context.Context, userID, nodeID string) (HierarchyView, error) {
	nodeID = strings.TrimSpace(nodeID)
	if nodeID == "" {
		return HierarchyView{}, roleerrors.ErrNodeIDRequired
	}

	tree, err := s.repo.Hierarchy(ctx)
	if err != nil {
		s.logger.Error("fetch role hierarchy failed", zap.Error(err))
		return HierarchyView{}, err
	}
	if !containsNode(tree, nodeID) {
		return HierarchyView{}, roleerrors.ErrRoleNotFound
	}

	expanded, err := s.store.Toggle(ctx, expandedKey(ctx, userID), nodeID)
	if err != nil {
		s.logger.Error("toggle hierarchy node failed", zap.String("node_id", nodeID), zap.Error(err))
		return HierarchyView{}, err
	}
	s.logger.Debug("hierarchy node toggled",
		zap.String("user_id", userID),
		zap.String("node_id", nodeID),
		zap.Bool("expanded", expanded),
	)
	return s.build(ctx, userID, tree)
}

func (s *hierarchyService) ExpandAll(ctx context.Context, userID string) (HierarchyView, error) {
	tree, err := s.repo.Hierarchy(ctx)
	if err != nil {
		s.logger.Error("fetch role hierarchy failed", zap.Error(err))
		return HierarchyView{}, err
	}

	if err := s.store.Replace(ctx, expandedKey(ctx, userID), parentIDs(tree, nil)); err != nil {
		s.logger.Error("expand all hierarchy failed", zap.Error(err))
		return HierarchyView{}, err
	}
	return s.build(ctx, userID, tree)
}

func (s *hierarchyService) CollapseAll(ctx context.Context, userID string) (HierarchyView, error) {
	tree, err := s.repo.Hierarchy(ctx)
	if err != nil {
		s.logger.Error("fetch role hierarchy failed", zap.Error(err))
		return HierarchyView{}, err
	}

	if err := s.store.Clear(ctx, expandedKey(ctx, userID)); err != nil {
		s.logger.Error("collapse all hierarchy failed", zap.Error(err))
		return HierarchyView{}, err
	}
	return s.build(ctx, userID, tree)
}

func (s *hierarchyService) build(ctx context.Context, userID string, tree []HierarchyNode) (HierarchyView, error) {
	members, err := s.store.Members(ctx, expandedKey(ctx, userID))
	if err != nil {
		s.logger.Error("read expanded hierarchy nodes failed", zap.Error(err))
		return HierarchyView{}, err
	}
	expanded := make(map[string]bool, len(members))
	for _, id := range members {
		expanded[id] = true
	}
	return BuildView(tree, expanded), nil
}

// BuildView decorates tree with the expanded set and flattens the rows a
// user can see: every root, and children only below expanded nodes.
func BuildView(tree []HierarchyNode, expanded map[string]bool) HierarchyView {
	view := HierarchyView{
		Tree:     decorate(tree, expanded),
		Rows:     []VisibleRow{},
		Expanded: []string{},
	}
	flatten(view.Tree, 0, &view.Rows)
	view.Total = countNodes(tree)

	for _, id := range parentIDs(tree, nil) {
		if expanded[id] {
			view.Expanded = append(view.Expanded, id)
		}
	}
	return view
}

func decorate(nodes []HierarchyNode, expanded map[string]bool) []NodeView {
	out := make([]NodeView, len(nodes))
	for i, n := range nodes {
		id := n.ID.String()
		hasChildren := len(n.Hijos) > 0
		out[i] = NodeView{
			ID:              id,
			Codigo:          n.Codigo,
			Nombre:          n.Nombre,
			NivelJerarquico: n.NivelJerarquico,
			Activo:          n.Activo,
			EsSistema:       n.EsSistema,
			HasChildren:     hasChildren,
			Expanded:        hasChildren && expanded[id],
			Hijos:           decorate(n.Hijos, expanded),
		}
	}
	return out
}

func flatten(nodes []NodeView, depth int, rows *[]VisibleRow) {
	for _, n := range nodes {
		*rows = append(*rows, VisibleRow{
			ID:              n.ID,
			Codigo:          n.Codigo,
			Nombre:          n.Nombre,
			Depth:           depth,
			NivelJerarquico: n.NivelJerarquico,
			Activo:          n.Activo,
			HasChildren:     n.HasChildren,
			Expanded:        n.Expanded,
		})
		if n.Expanded {
			flatten(n.Hijos, depth+1, rows)
		}
	}
}

// parentIDs lists, depth-first, the ids of nodes that have children.
func parentIDs(nodes []HierarchyNode, acc []string) []string {
	for _, n := range nodes {
		if len(n.Hijos) > 0 {
			acc = append(acc, n.ID.String())
			acc = parentIDs(n.Hijos, acc)
		}
	}
	return acc
}

func containsNode(nodes []HierarchyNode, id string) bool {
	for _, n := range nodes {
		if n.ID.String() == id || containsNode(n.Hijos, id) {
			return true
		}
	}
	return false
}

func countNodes(nodes []HierarchyNode) int {
	total := len(nodes)
	for _, n := range nodes {
		total += countNodes(n.Hijos)
	}
	return total
}
