package tasks

import "context"

type Repository interface {
	Create(ctx context.Context, t Task) error
	Update(ctx context.Context, t Task) error
	GetByID(ctx context.Context, userID, id string) (Task, error)
	// ListByUser ordena por due_date asc (sin fecha al final), luego created_at.
	ListByUser(ctx context.Context, userID string, filter ListFilter) ([]Task, error)
	Delete(ctx context.Context, userID, id string) error
}

// ListFilter: Incomplete excluye completed y se combina con Status.
type ListFilter struct {
	Status     Status
	PropertyID string
	Incomplete bool
}
