package memory

import (
	"context"

	"homestead-architect/internal/domain/tasks"
)

type taskRepo struct {
	t *table[tasks.Task]
}

func NewTaskRepo() tasks.Repository {
	return &taskRepo{
		t: newTable(
			func(t tasks.Task) string { return t.ID },
			func(t tasks.Task) string { return t.UserID },
			tasks.ErrNotFound,
		),
	}
}

func (r *taskRepo) Create(_ context.Context, t tasks.Task) error {
	return r.t.insert(t)
}

func (r *taskRepo) Update(_ context.Context, t tasks.Task) error {
	return r.t.update(t)
}

func (r *taskRepo) GetByID(_ context.Context, userID, id string) (tasks.Task, error) {
	return r.t.get(userID, id)
}

func (r *taskRepo) ListByUser(_ context.Context, userID string, f tasks.ListFilter) ([]tasks.Task, error) {
	keep := func(t tasks.Task) bool {
		if f.Incomplete && t.Status == tasks.StatusCompleted {
			return false
		}
		if f.Status != "" && t.Status != f.Status {
			return false
		}
		return f.PropertyID == "" || (t.PropertyID != nil && *t.PropertyID == f.PropertyID)
	}
	// due_date asc, sin fecha al final (NULLS LAST)
	less := func(a, b tasks.Task) bool {
		switch {
		case a.DueDate != nil && b.DueDate == nil:
			return true
		case a.DueDate == nil && b.DueDate != nil:
			return false
		case a.DueDate != nil && !a.DueDate.Equal(*b.DueDate):
			return a.DueDate.Before(*b.DueDate)
		}
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return r.t.list(userID, keep, less), nil
}

func (r *taskRepo) Delete(_ context.Context, userID, id string) error {
	return r.t.delete(userID, id)
}
