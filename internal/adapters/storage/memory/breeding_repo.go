package memory

import (
	"context"
	"slices"

	"homestead-architect/internal/domain/breeding"
)

type breedingRepo struct {
	t *table[breeding.Event]
}

func NewBreedingRepo() breeding.Repository {
	return &breedingRepo{
		t: newTable(
			func(e breeding.Event) string { return e.ID },
			func(e breeding.Event) string { return e.UserID },
			breeding.ErrNotFound,
		),
	}
}

func (r *breedingRepo) Create(_ context.Context, e breeding.Event) error {
	return r.t.insert(e)
}

func (r *breedingRepo) Update(_ context.Context, e breeding.Event) error {
	return r.t.update(e)
}

func (r *breedingRepo) GetByID(_ context.Context, userID, id string) (breeding.Event, error) {
	return r.t.get(userID, id)
}

func (r *breedingRepo) ListByUser(_ context.Context, userID string, f breeding.ListFilter) ([]breeding.Event, error) {
	keep := func(e breeding.Event) bool {
		if f.AnimalID != "" && e.AnimalID != f.AnimalID {
			return false
		}
		if len(f.Types) > 0 && !slices.Contains(f.Types, e.Type) {
			return false
		}
		if f.From != nil && e.Date.Before(*f.From) {
			return false
		}
		if f.To != nil && e.Date.After(*f.To) {
			return false
		}
		return true
	}
	// date desc, created_at desc
	less := func(a, b breeding.Event) bool {
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.CreatedAt.After(b.CreatedAt)
	}
	return r.t.list(userID, keep, less), nil
}

func (r *breedingRepo) Delete(_ context.Context, userID, id string) error {
	return r.t.delete(userID, id)
}
