package memory

import (
	"context"

	"homestead-architect/internal/domain/properties"
)

type propertyRepo struct {
	t *table[properties.Property]
}

func NewPropertyRepo() properties.Repository {
	return &propertyRepo{
		t: newTable(
			func(p properties.Property) string { return p.ID },
			func(p properties.Property) string { return p.UserID },
			properties.ErrNotFound,
		),
	}
}

func (r *propertyRepo) Create(_ context.Context, p properties.Property) error {
	return r.t.insert(p)
}

func (r *propertyRepo) Update(_ context.Context, p properties.Property) error {
	return r.t.update(p)
}

func (r *propertyRepo) GetByID(_ context.Context, userID, id string) (properties.Property, error) {
	return r.t.get(userID, id)
}

func (r *propertyRepo) ListByUser(_ context.Context, userID string) ([]properties.Property, error) {
	return r.t.list(userID, nil, func(a, b properties.Property) bool {
		return a.CreatedAt.Before(b.CreatedAt)
	}), nil
}

func (r *propertyRepo) Delete(_ context.Context, userID, id string) error {
	return r.t.delete(userID, id)
}
