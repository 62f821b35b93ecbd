package breeding

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, e Event) error
	Update(ctx context.Context, e Event) error
	GetByID(ctx context.Context, userID, id string) (Event, error)
	// ListByUser devuelve todos los eventos del usuario que cumplan filter,
	// ordenados por date desc. Sin límite: el dashboard necesita el set completo.
	ListByUser(ctx context.Context, userID string, filter ListFilter) ([]Event, error)
	Delete(ctx context.Context, userID, id string) error
}

type ListFilter struct {
	AnimalID string
	Types    []EventType
	From     *time.Time // inclusive
	To       *time.Time // inclusive
}
