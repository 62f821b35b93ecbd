package animals

import "context"

type Repository interface {
	Create(ctx context.Context, a Animal) error
	Update(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, userID, id string) (Animal, error)
	ListByUser(ctx context.Context, userID string, filter ListFilter) ([]Animal, error)
	Delete(ctx context.Context, userID, id string) error
}

type ListFilter struct {
	PropertyID string
	Species    string
}
