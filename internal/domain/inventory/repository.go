package inventory

import "context"

type Repository interface {
	Create(ctx context.Context, it Item) error
	Update(ctx context.Context, it Item) error
	GetByID(ctx context.Context, userID, id string) (Item, error)
	// ListByUser ordena por nombre.
	ListByUser(ctx context.Context, userID string, filter ListFilter) ([]Item, error)
	Delete(ctx context.Context, userID, id string) error
}

type ListFilter struct {
	Category   string
	PropertyID string
	LowStock   bool
}
