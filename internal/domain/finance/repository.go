package finance

import (
	"context"
	"time"
)

type CategoryRepository interface {
	Create(ctx context.Context, c Category) error
	Update(ctx context.Context, c Category) error
	GetByID(ctx context.Context, userID, id string) (Category, error)
	// ListByUser ordena por nombre.
	ListByUser(ctx context.Context, userID string, kind Kind) ([]Category, error)
	Delete(ctx context.Context, userID, id string) error
}

type TransactionRepository interface {
	Create(ctx context.Context, tx Transaction) error
	Update(ctx context.Context, tx Transaction) error
	GetByID(ctx context.Context, userID, id string) (Transaction, error)
	// ListByUser ordena por date desc.
	ListByUser(ctx context.Context, userID string, filter TransactionFilter) ([]Transaction, error)
	Delete(ctx context.Context, userID, id string) error
}

// TransactionFilter: campos vacíos no filtran. StartDate/EndDate inclusivos.
type TransactionFilter struct {
	Kind       Kind
	CategoryID string
	PropertyID string
	StartDate  *time.Time
	EndDate    *time.Time
}
