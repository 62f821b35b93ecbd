package properties

import "context"

// Repository: todas las operaciones van acotadas por userID (row ownership).
type Repository interface {
	Create(ctx context.Context, p Property) error
	Update(ctx context.Context, p Property) error
	GetByID(ctx context.Context, userID, id string) (Property, error)
	ListByUser(ctx context.Context, userID string) ([]Property, error)
	Delete(ctx context.Context, userID, id string) error
}
