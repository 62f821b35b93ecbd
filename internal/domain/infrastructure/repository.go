package infrastructure

import "context"

type Repository interface {
	Create(ctx context.Context, p Project) error
	Update(ctx context.Context, p Project) error
	GetByID(ctx context.Context, userID, id string) (Project, error)
	// ListByUser ordena por created_at desc.
	ListByUser(ctx context.Context, userID string, filter ListFilter) ([]Project, error)
	Delete(ctx context.Context, userID, id string) error
}

// ListFilter: Query busca (case-insensitive) en name y description.
type ListFilter struct {
	Status     Status
	Type       ProjectType
	PropertyID string
	Query      string
}
