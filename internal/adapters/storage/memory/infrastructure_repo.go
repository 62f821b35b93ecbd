package memory

import (
	"context"
	"strings"

	"homestead-architect/internal/domain/infrastructure"
)

type infrastructureRepo struct {
	t *table[infrastructure.Project]
}

func NewInfrastructureRepo() infrastructure.Repository {
	return &infrastructureRepo{
		t: newTable(
			func(p infrastructure.Project) string { return p.ID },
			func(p infrastructure.Project) string { return p.UserID },
			infrastructure.ErrNotFound,
		),
	}
}

func (r *infrastructureRepo) Create(_ context.Context, p infrastructure.Project) error {
	return r.t.insert(p)
}

func (r *infrastructureRepo) Update(_ context.Context, p infrastructure.Project) error {
	return r.t.update(p)
}

func (r *infrastructureRepo) GetByID(_ context.Context, userID, id string) (infrastructure.Project, error) {
	return r.t.get(userID, id)
}

func (r *infrastructureRepo) ListByUser(_ context.Context, userID string, f infrastructure.ListFilter) ([]infrastructure.Project, error) {
	needle := strings.ToLower(f.Query)
	keep := func(p infrastructure.Project) bool {
		if f.Status != "" && p.Status != f.Status {
			return false
		}
		if f.Type != "" && p.Type != f.Type {
			return false
		}
		if f.PropertyID != "" && (p.PropertyID == nil || *p.PropertyID != f.PropertyID) {
			return false
		}
		if needle == "" {
			return true
		}
		return strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle)
	}
	less := func(a, b infrastructure.Project) bool { return a.CreatedAt.After(b.CreatedAt) }
	return r.t.list(userID, keep, less), nil
}

func (r *infrastructureRepo) Delete(_ context.Context, userID, id string) error {
	return r.t.delete(userID, id)
}
